package services_test

import (
	"testing"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/core/domain/services"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func newOrder(t *testing.T, status order.Status, items ...*order.Item) *order.Order {
	t.Helper()
	number, err := kernel.NewOrderNumber(1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), number, kernel.NewUUID(), time.Now(), status,
		order.Header{}, decimal.NullDecimal{}, items, 0)
	require.NoError(t, err)
	return o
}

func newItem(t *testing.T, terms order.ItemTerms) *order.Item {
	t.Helper()
	spec, err := packaging.NewSpecification(kernel.NewUUID(), "SACO", "", "PEBD", packaging.Dimensions{}, "", false, nil, nil)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), spec, terms)
	require.NoError(t, err)
	return item
}

func TestProductionPlanner_Plan(t *testing.T) {
	planner := services.NewProductionPlanner()

	t.Run("should start execution on first production order", func(t *testing.T) {
		o := newOrder(t, order.Approved)
		op, err := production.NewProductionOrder(kernel.NewUUID(), o.ID(), production.Parameters{}, time.Now())
		require.NoError(t, err)

		require.NoError(t, planner.CheckAccepts(o))
		err = planner.Plan(o, op, 1, kernel.SystemActor())

		require.NoError(t, err)
		assert.Equal(t, order.InExecution, o.Status())
	})

	t.Run("should reject production order of another order", func(t *testing.T) {
		o := newOrder(t, order.Approved)
		op, err := production.NewProductionOrder(kernel.NewUUID(), kernel.NewUUID(), production.Parameters{}, time.Now())
		require.NoError(t, err)

		err = planner.Plan(o, op, 1, kernel.SystemActor())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should reject draft orders", func(t *testing.T) {
		o := newOrder(t, order.Draft)

		err := planner.CheckAccepts(o)

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestMetricsCalculator_Calculate(t *testing.T) {
	t.Run("should compute figures per quantity type", func(t *testing.T) {
		// Given
		o := newOrder(t, order.Draft,
			newItem(t, order.ItemTerms{Quantity: dec("5"), UnitPrice: dec("2.0"), UnitWeightKg: dec("0.01"), PrintStatus: order.PrintDone}),
			newItem(t, order.ItemTerms{Quantity: dec("3"), UnitPrice: dec("4.0")}),
			newItem(t, order.ItemTerms{Quantity: dec("20"), QuantityType: kernel.QuantityTypeKilograms, UnitWeightKg: dec("0.004")}),
		)

		// When
		m := services.NewMetricsCalculator().Calculate(o)

		// Then
		assert.Equal(t, 3, m.TotalItems)
		assert.Equal(t, "22.00", m.CalculatedTotal.StringFixed(2))
		assert.False(t, m.RegisteredTotal.Valid)
		assert.True(t, m.TotalUnits.Equal(decimal.NewFromInt(8)))
		assert.True(t, m.TotalKg.Equal(decimal.RequireFromString("20.05")))
		assert.True(t, m.EstimatedWeightKg().Equal(m.TotalKg))
		assert.True(t, m.EstimatedUnitsFromKg.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, "33.33", m.PrintedPercent.StringFixed(2))
	})

	t.Run("should return zeros for empty order", func(t *testing.T) {
		m := services.NewMetricsCalculator().Calculate(newOrder(t, order.Draft))

		assert.Equal(t, 0, m.TotalItems)
		assert.True(t, m.CalculatedTotal.IsZero())
		assert.True(t, m.PrintedPercent.IsZero())
	})
}

func TestEstimator(t *testing.T) {
	e := services.NewEstimator()

	t.Run("should resolve densities and aliases", func(t *testing.T) {
		assert.True(t, e.Density("pead").Equal(decimal.NewFromInt(950)))
		assert.True(t, e.Density("HDPE").Equal(decimal.NewFromInt(950)))
		assert.True(t, e.Density("nylon").Equal(decimal.NewFromInt(1140)))
		assert.True(t, e.Density("desconhecido").Equal(decimal.NewFromInt(920)))
	})

	t.Run("should compute unit mass with gusset and extra factor", func(t *testing.T) {
		// (300 + 2*50) * 500 mm² = 0.2 m², 50 µm, PEBD 920 kg/m³ => 0.0092 kg, +10%
		mass := e.UnitMassKg(services.FilmDimensions{
			Material:    "PEBD",
			ThicknessUm: decimal.NewFromInt(50),
			WidthMm:     decimal.NewFromInt(300),
			HeightMm:    decimal.NewFromInt(500),
			GussetMm:    decimal.NewFromInt(50),
			ExtraFactor: decimal.RequireFromString("0.1"),
		})

		assert.True(t, mass.Equal(decimal.RequireFromString("0.01012")), mass.String())
	})

	t.Run("should estimate units from weight", func(t *testing.T) {
		assert.True(t, e.UnitsFromWeight(decimal.NewFromInt(10), decimal.RequireFromString("0.01")).Equal(decimal.NewFromInt(1000)))
		assert.True(t, e.UnitsFromWeight(decimal.NewFromInt(10), decimal.Zero).IsZero())
	})

	t.Run("should compute minimum units under tolerance", func(t *testing.T) {
		assert.Equal(t, int64(950), e.MinimumUnits(1000, decimal.NewFromInt(5)))
		assert.Equal(t, int64(1000), e.MinimumUnits(1000, decimal.NewFromInt(-5)))
		assert.Equal(t, int64(0), e.MinimumUnits(1000, decimal.NewFromInt(150)))
		assert.Equal(t, int64(0), e.MinimumUnits(-3, decimal.NewFromInt(5)))
	})
}
