package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/client"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/core/domain/model/quality"
	"github.com/kleberrossi/Procman/internal/core/domain/model/shipment"
	"github.com/kleberrossi/Procman/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllNotTerminal(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPackagingRepository struct{ mock.Mock }

func (m *MockPackagingRepository) Add(ctx context.Context, spec *packaging.Specification) error {
	return m.Called(ctx, spec).Error(0)
}

func (m *MockPackagingRepository) GetByCodeRevision(ctx context.Context, code, revision string) (*packaging.Specification, error) {
	args := m.Called(ctx, code, revision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*packaging.Specification), args.Error(1)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Append(ctx context.Context, entries ...auditlog.Entry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockAuditLogRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]auditlog.Entry, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]auditlog.Entry), args.Error(1)
}

type MockProductionOrderRepository struct{ mock.Mock }

func (m *MockProductionOrderRepository) Add(ctx context.Context, op *production.ProductionOrder) error {
	return m.Called(ctx, op).Error(0)
}

func (m *MockProductionOrderRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

type MockInspectionRepository struct{ mock.Mock }

func (m *MockInspectionRepository) Add(ctx context.Context, inspection *quality.Inspection) error {
	return m.Called(ctx, inspection).Error(0)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

// MockUnitOfWork satisfies every unit of work interface of the package.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}

func (m *MockUnitOfWork) PackagingRepository() ports.PackagingRepository {
	return m.Called().Get(0).(ports.PackagingRepository)
}

func (m *MockUnitOfWork) SequenceRepository() ports.SequenceRepository {
	return m.Called().Get(0).(ports.SequenceRepository)
}

func (m *MockUnitOfWork) AuditLogRepository() ports.AuditLogRepository {
	return m.Called().Get(0).(ports.AuditLogRepository)
}

func (m *MockUnitOfWork) ProductionOrderRepository() ports.ProductionOrderRepository {
	return m.Called().Get(0).(ports.ProductionOrderRepository)
}

func (m *MockUnitOfWork) InspectionRepository() ports.InspectionRepository {
	return m.Called().Get(0).(ports.InspectionRepository)
}

func (m *MockUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

// MockUoWFactory hands out a MockUnitOfWork as whichever interface T the
// handler under test expects.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

func newFactory[T any](uow *MockUnitOfWork) *MockUoWFactory[T] {
	f := new(MockUoWFactory[T])
	f.On("Create").Return(uow).Once()
	return f
}

// expectTx registers Begin, an optional Commit and the deferred Rollback.
func expectTx(ctx context.Context, uow *MockUnitOfWork, commit bool) {
	uow.On("Begin", ctx).Return(nil).Once()
	if commit {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
}

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func userActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewUserActor(kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func newSpec(t *testing.T, code string) *packaging.Specification {
	t.Helper()
	width := 300
	spec, err := packaging.NewSpecification(kernel.NewUUID(), code, "A", "PEBD",
		packaging.Dimensions{WidthMm: &width}, "", true, nil, nil)
	require.NoError(t, err)
	return spec
}

// orderIn returns a persisted-looking order in status with one item of
// 10 units at 2.00.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	number, err := kernel.NewOrderNumber(42)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), newSpec(t, "SACO-1"), order.ItemTerms{
		Quantity:  dec("10"),
		UnitPrice: dec("2.00"),
	})
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), number, kernel.NewUUID(), fixedNow, status,
		order.Header{QuantityType: kernel.QuantityTypeUnits}, dec("20"), []*order.Item{item}, 3)
	require.NoError(t, err)
	return o
}

func actionsOf(entries []auditlog.Entry) []auditlog.Action {
	result := make([]auditlog.Action, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.Action())
	}
	return result
}
