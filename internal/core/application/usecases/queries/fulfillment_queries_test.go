package queries_test

import (
	"testing"
	"time"

	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/productionrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/qualityrepo"
	"github.com/kleberrossi/Procman/internal/core/application/usecases/queries"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/core/domain/model/quality"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductionOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should list production orders of one order oldest first", func(t *testing.T) {
		// Given
		f := newFixture(t)
		o := f.order(1, f.client("Cliente A"), order.Approved)
		other := f.order(2, f.client("Cliente B"), order.Approved)
		repo := productionrepo.NewGormProductionOrderRepository(f.db)

		base := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
		temp := 180
		for i, target := range []kernel.UUID{o.ID(), other.ID(), o.ID()} {
			op, err := production.NewProductionOrder(kernel.NewUUID(), target, production.Parameters{
				Number:           "OP-" + string(rune('A'+i)),
				SealTemperatureC: &temp,
				TapeType:         "adesiva",
			}, base.Add(time.Duration(i)*time.Hour))
			require.NoError(t, err)
			require.NoError(t, repo.Add(t.Context(), op))
		}
		query, err := queries.NewListProductionOrdersQuery(o.ID())
		require.NoError(t, err)

		// When
		list, err := queries.NewListProductionOrdersQueryHandler(f.db).Handle(t.Context(), query)

		// Then
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "OP-A", list[0].Number)
		assert.Equal(t, "OP-C", list[1].Number)
		assert.Equal(t, o.ID(), list[0].OrderID)
		assert.Equal(t, string(production.StatusPlanned), list[0].Status)
		require.NotNil(t, list[0].SealTemperatureC)
		assert.Equal(t, 180, *list[0].SealTemperatureC)
		assert.Nil(t, list[0].WidthMm)
	})

	t.Run("should return an empty list for an order without production orders", func(t *testing.T) {
		f := newFixture(t)
		query, err := queries.NewListProductionOrdersQuery(kernel.NewUUID())
		require.NoError(t, err)

		list, err := queries.NewListProductionOrdersQueryHandler(f.db).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestListQualityInspectionsQueryHandler_Handle(t *testing.T) {
	t.Run("should list inspections with their photos", func(t *testing.T) {
		// Given
		f := newFixture(t)
		o := f.order(1, f.client("Cliente A"), order.InExecution)
		repo := qualityrepo.NewGormInspectionRepository(f.db)

		first, err := quality.NewInspection(kernel.NewUUID(), o.ID(), "", quality.Findings{
			Sample: "3 bobinas",
			Result: "aprovado",
			Photos: []string{"qc/1.jpg", "qc/2.jpg"},
		}, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		second, err := quality.NewInspection(kernel.NewUUID(), o.ID(), "VISUAL", quality.Findings{
			Result: "reprovado",
			Notes:  "manchas na impressao",
		}, time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.NoError(t, repo.Add(t.Context(), second))
		require.NoError(t, repo.Add(t.Context(), first))

		query, err := queries.NewListQualityInspectionsQuery(o.ID())
		require.NoError(t, err)

		// When
		list, err := queries.NewListQualityInspectionsQueryHandler(f.db).Handle(t.Context(), query)

		// Then
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID(), list[0].ID)
		assert.Equal(t, quality.DefaultKind, list[0].Kind)
		assert.Equal(t, []string{"qc/1.jpg", "qc/2.jpg"}, list[0].Photos)
		assert.Equal(t, "VISUAL", list[1].Kind)
		assert.Equal(t, "manchas na impressao", list[1].Notes)
		assert.NotNil(t, list[1].Photos)
	})
}
