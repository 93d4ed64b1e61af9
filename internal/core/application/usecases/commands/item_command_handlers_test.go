package commands_test

import (
	"testing"

	"github.com/kleberrossi/Procman/internal/core/application/usecases/commands"
	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemCommandHandler_Handle(t *testing.T) {
	t.Run("should snapshot the package and recalculate the total", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		spec := newSpec(t, "SACO-2")
		cmd, err := commands.NewAddItemCommand(o.ID(), kernel.NewUUID(), "SACO-2", "A", order.ItemTerms{
			Quantity:  dec("5"),
			UnitPrice: dec("4"),
		}, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		packages := new(MockPackagingRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			uow.On("PackagingRepository").Return(packages).Once(),
			packages.On("GetByCodeRevision", ctx, "SACO-2", "A").Return(spec, nil).Once(),
			orders.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		// When
		h := commands.NewAddItemCommandHandler(newFactory[commands.OrderCatalogUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		require.Len(t, o.Items(), 2)
		added, err := o.Item(cmd.ItemID())
		require.NoError(t, err)
		assert.Equal(t, "PEBD", added.Snapshot().Material())
		assert.True(t, o.TotalPrice().Decimal.Equal(decimal.RequireFromString("40")))
		assert.Equal(t,
			[]auditlog.Action{auditlog.ActionItemAdded, auditlog.ActionRecalcTotal},
			actionsOf(o.PullLogEntries()))
		uow.AssertExpectations(t)
		orders.AssertExpectations(t)
		packages.AssertExpectations(t)
	})

	t.Run("should fail with not found for an unknown package revision", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		cmd, err := commands.NewAddItemCommand(o.ID(), kernel.NewUUID(), "SACO-9", "", order.ItemTerms{}, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		packages := new(MockPackagingRepository)
		packages.On("GetByCodeRevision", ctx, "SACO-9", "").
			Return(nil, errs.NewObjectNotFoundError("package", "SACO-9@")).Once()

		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()
		uow.On("PackagingRepository").Return(packages).Once()

		// When
		h := commands.NewAddItemCommandHandler(newFactory[commands.OrderCatalogUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("should fail with a conflict once the order is approved before resolving the package", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Approved)
		cmd, err := commands.NewAddItemCommand(o.ID(), kernel.NewUUID(), "NOPE", "", order.ItemTerms{
			Quantity: dec("-1"),
		}, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewAddItemCommandHandler(newFactory[commands.OrderCatalogUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, order.ErrItemsBlocked)
		assert.Len(t, o.Items(), 1)
		uow.AssertNotCalled(t, "PackagingRepository")
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})
}

func TestUpdateItemCommandHandler_Handle(t *testing.T) {
	t.Run("should apply planning fields and report blocked ones when approved", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Approved)
		itemID := o.Items()[0].ID()
		cmd, err := commands.NewUpdateItemCommand(o.ID(), itemID, order.Changes{
			order.FieldQuantity:      decimal.RequireFromString("99"),
			order.FieldExtrusionRing: "A3",
			"snapshot_material":      "PP",
		}, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			orders.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		// When
		h := commands.NewUpdateItemCommandHandler(newFactory[commands.OrderUoW](uow))
		result, err := h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []string{order.FieldExtrusionRing}, result.Applied)
		assert.ElementsMatch(t, []string{order.FieldQuantity, "snapshot_material"}, result.Blocked)
		item, err := o.Item(itemID)
		require.NoError(t, err)
		assert.Equal(t, "A3", item.Terms().ExtrusionRing)
		assert.True(t, item.Terms().Quantity.Decimal.Equal(decimal.RequireFromString("10")))
		uow.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	t.Run("should fail with a validation error when every field is blocked", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.InExecution)
		cmd, err := commands.NewUpdateItemCommand(o.ID(), o.Items()[0].ID(), order.Changes{
			order.FieldUnitPrice: decimal.RequireFromString("3"),
		}, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewUpdateItemCommandHandler(newFactory[commands.OrderUoW](uow))
		_, err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		var blocked *order.NoPermittedFieldsError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, []string{order.FieldUnitPrice}, blocked.Blocked)
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should fail with a conflict on a terminal order", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Done)
		cmd, err := commands.NewUpdateItemCommand(o.ID(), o.Items()[0].ID(), order.Changes{
			order.FieldExtrusionRing: "B1",
		}, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewUpdateItemCommandHandler(newFactory[commands.OrderUoW](uow))
		_, err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestDeleteItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove the item and fall back to the manual total", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		itemID := o.Items()[0].ID()
		cmd, err := commands.NewDeleteItemCommand(o.ID(), itemID, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			orders.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		// When
		h := commands.NewDeleteItemCommandHandler(newFactory[commands.OrderUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Empty(t, o.Items())
		assert.Equal(t, []kernel.UUID{itemID}, o.RemovedItemIDs())
		// Without items, base price or planned quantity the stored total stays.
		assert.True(t, o.TotalPrice().Decimal.Equal(decimal.RequireFromString("20")))
		assert.Equal(t, []auditlog.Action{auditlog.ActionItemDeleted}, actionsOf(o.PullLogEntries()))
		uow.AssertExpectations(t)
	})

	t.Run("should fail with not found for an unknown item", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		cmd, err := commands.NewDeleteItemCommand(o.ID(), kernel.NewUUID(), userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewDeleteItemCommandHandler(newFactory[commands.OrderUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Len(t, o.Items(), 1)
	})
}
