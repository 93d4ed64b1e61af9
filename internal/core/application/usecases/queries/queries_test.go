package queries_test

import (
	"testing"
	"time"

	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/auditlogrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/clientrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/orderrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/pgtest"
	"github.com/kleberrossi/Procman/internal/core/domain/model/client"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// fixture writes rows through the real repositories into an in-memory
// database.
type fixture struct {
	t      *testing.T
	db     *gorm.DB
	orders *orderrepo.GormOrderRepository
	logs   *auditlogrepo.GormAuditLogRepository
	actor  kernel.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := pgtest.OpenSQLite(t)
	actor, err := kernel.NewUserActor(kernel.NewUUID())
	require.NoError(t, err)

	return &fixture{
		t:      t,
		db:     db,
		orders: orderrepo.NewGormOrderReader(db),
		logs:   auditlogrepo.NewGormAuditLogRepository(db),
		actor:  actor,
	}
}

func (f *fixture) client(name string) kernel.UUID {
	f.t.Helper()
	c, err := client.NewClient(kernel.NewUUID(), name, kernel.NewUUID().String()[:14], "")
	require.NoError(f.t, err)
	require.NoError(f.t, clientrepo.NewGormClientRepository(f.db).Add(f.t.Context(), c))
	return c.ID()
}

func (f *fixture) item(code string, terms order.ItemTerms) *order.Item {
	f.t.Helper()
	width := 300
	spec, err := packaging.NewSpecification(kernel.NewUUID(), code, "A", "PEBD",
		packaging.Dimensions{WidthMm: &width}, "", true, nil, nil)
	require.NoError(f.t, err)

	item, err := order.NewItem(kernel.NewUUID(), spec, terms)
	require.NoError(f.t, err)
	return item
}

// order stores a draft order with items and its creation log, then forces
// status when it differs from RASCUNHO.
func (f *fixture) order(number int64, clientID kernel.UUID, status order.Status, items ...*order.Item) *order.Order {
	f.t.Helper()
	ctx := f.t.Context()

	n, err := kernel.NewOrderNumber(number)
	require.NoError(f.t, err)
	o, err := order.NewOrder(kernel.NewUUID(), n, clientID,
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		order.Header{QuantityType: kernel.QuantityTypeUnits}, decimal.NullDecimal{}, f.actor)
	require.NoError(f.t, err)

	for _, item := range items {
		require.NoError(f.t, o.AddItem(item, f.actor))
	}
	require.NoError(f.t, f.orders.Add(ctx, o))
	require.NoError(f.t, f.logs.Append(ctx, o.PullLogEntries()...))

	if status != order.Draft {
		require.NoError(f.t, f.db.Exec("UPDATE pedidos SET status = ? WHERE id = ?",
			status.String(), o.ID().Bytes()).Error)
	}
	return o
}
