package commands_test

import (
	"testing"

	"github.com/kleberrossi/Procman/internal/core/application/usecases/commands"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/core/domain/model/quality"
	"github.com/kleberrossi/Procman/internal/core/domain/model/shipment"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	header := order.Header{BasePrice: dec("0.35"), PlannedQuantity: dec("10000")}

	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, header, dec("100"), kernel.SystemActor())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, clientID, cmd.ClientID())
	assert.True(t, cmd.Header().BasePrice.Decimal.Equal(decimal.RequireFromString("0.35")))
	assert.True(t, cmd.ManualTotal().Valid)
	assert.True(t, cmd.Actor().IsSystem())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), order.Header{},
		decimal.NullDecimal{}, kernel.SystemActor())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidClientID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, order.Header{},
		decimal.NullDecimal{}, kernel.SystemActor())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_ZeroValue_IsNotConstructed(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()

	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCommandConstructors(t *testing.T) {
	id := kernel.NewUUID()
	actor := kernel.SystemActor()

	t.Run("should require a package code to add an item", func(t *testing.T) {
		_, err := commands.NewAddItemCommand(id, kernel.NewUUID(), "  ", "A", order.ItemTerms{}, actor)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should trim the revision of an added item", func(t *testing.T) {
		cmd, err := commands.NewAddItemCommand(id, kernel.NewUUID(), "SACO-1", " B ", order.ItemTerms{}, actor)
		require.NoError(t, err)
		assert.Equal(t, "B", cmd.Revision())
		assert.Equal(t, "SACO-1", cmd.PackageCode())
	})

	t.Run("should reject an item patch without fields", func(t *testing.T) {
		_, err := commands.NewUpdateItemCommand(id, kernel.NewUUID(), order.Changes{}, actor)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a header patch without fields", func(t *testing.T) {
		_, err := commands.NewUpdateOrderHeaderCommand(id, nil, actor)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unknown target status", func(t *testing.T) {
		_, err := commands.NewChangeStatusCommand(id, "ENVIADO", actor)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should parse the target status", func(t *testing.T) {
		cmd, err := commands.NewChangeStatusCommand(id, "APROVADO", actor)
		require.NoError(t, err)
		assert.Equal(t, order.Approved, cmd.Target())
	})

	t.Run("should reject an unknown modal", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(id, kernel.NewUUID(), "drone", shipment.Details{}, actor)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require identifiers everywhere", func(t *testing.T) {
		var zero kernel.UUID
		_, err1 := commands.NewDeleteItemCommand(id, zero, actor)
		_, err2 := commands.NewRecalculateTotalsCommand(zero, actor)
		_, err3 := commands.NewReleaseShipmentCommand(zero, actor)
		_, err4 := commands.NewCreateProductionOrderCommand(zero, id, production.Parameters{}, actor)
		_, err5 := commands.NewAddQualityInspectionCommand(id, zero, quality.DefaultKind, quality.Findings{}, actor)
		_, err6 := commands.NewCreateClientCommand(zero, "Plasticos Sul", "", "")
		_, err7 := commands.NewCreatePackageSpecificationCommand(zero, commands.PackageSpecificationData{})

		for _, err := range []error{err1, err2, err3, err4, err5, err6, err7} {
			assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		}
	})

	t.Run("should reject zero-value commands", func(t *testing.T) {
		assert.ErrorIs(t, commands.AddItemCommand{}.Validate(), commands.ErrAddItemCommandIsNotConstructed)
		assert.ErrorIs(t, commands.UpdateItemCommand{}.Validate(), commands.ErrUpdateItemCommandIsNotConstructed)
		assert.ErrorIs(t, commands.DeleteItemCommand{}.Validate(), commands.ErrDeleteItemCommandIsNotConstructed)
		assert.ErrorIs(t, commands.ChangeStatusCommand{}.Validate(), commands.ErrChangeStatusCommandIsNotConstructed)
		assert.ErrorIs(t, commands.ReleaseShipmentCommand{}.Validate(), commands.ErrReleaseShipmentCommandIsNotConstructed)
	})
}
