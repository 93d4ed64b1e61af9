package production_test

import (
	"testing"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionOrder(t *testing.T) {
	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	width := 300

	t.Run("should plan production order with defaults", func(t *testing.T) {
		orderID := kernel.NewUUID()

		op, err := production.NewProductionOrder(kernel.NewUUID(), orderID, production.Parameters{
			Number:  " OP-12 ",
			WidthMm: &width,
		}, now)

		require.NoError(t, err)
		require.NoError(t, op.Validate())
		assert.Equal(t, production.StatusPlanned, op.Status())
		assert.Equal(t, "OP-12", op.Parameters().Number)
		assert.Equal(t, production.DefaultTapeType, op.Parameters().TapeType)
		assert.True(t, op.OrderID().IsEqual(orderID))
		assert.Equal(t, now, op.CreatedAt())
	})

	t.Run("should reject negative parameters", func(t *testing.T) {
		negative := -1

		op, err := production.NewProductionOrder(kernel.NewUUID(), kernel.NewUUID(), production.Parameters{
			HeightMm:        &negative,
			MinRollWeightKg: decimal.NewNullDecimal(decimal.NewFromInt(-5)),
		}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, op)
		assert.Contains(t, err.Error(), "altura_mm")
		assert.Contains(t, err.Error(), "peso_min_bobina_kg")
	})

	t.Run("should require order id", func(t *testing.T) {
		_, err := production.NewProductionOrder(kernel.NewUUID(), kernel.UUID{}, production.Parameters{}, now)

		require.Error(t, err)
	})

	t.Run("should fail validation for nil production order", func(t *testing.T) {
		var op *production.ProductionOrder

		assert.Equal(t, production.ErrProductionOrderIsNotConstructed, op.Validate())
	})
}
