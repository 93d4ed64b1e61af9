package commands_test

import (
	"errors"
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

func TestUpdateOrderHeaderCommandHandler_Handle(t *testing.T) {
	t.Run("should apply allowed fields and ignore the rest", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		cmd, err := commands.NewUpdateOrderHeaderCommand(o.ID(), order.Changes{
			order.FieldRepresentativeName: "Ana",
			"status":                      "CONCLUIDO",
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
		h := commands.NewUpdateOrderHeaderCommandHandler(newFactory[commands.OrderCatalogUoW](uow))
		result, err := h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []string{order.FieldRepresentativeName}, result.Applied)
		assert.Equal(t, []string{"status"}, result.Ignored)
		assert.Equal(t, "Ana", o.Header().RepresentativeName)
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, []auditlog.Action{auditlog.ActionUpdated}, actionsOf(o.PullLogEntries()))
		uow.AssertNotCalled(t, "ClientRepository")
		uow.AssertExpectations(t)
	})

	t.Run("should check that a new client exists", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		newClient := kernel.NewUUID()
		cmd, err := commands.NewUpdateOrderHeaderCommand(o.ID(), order.Changes{
			order.FieldClientID: newClient,
		}, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		clients := new(MockClientRepository)
		clients.On("Exists", ctx, newClient).Return(false, nil).Once()

		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()
		uow.On("ClientRepository").Return(clients).Once()

		// When
		h := commands.NewUpdateOrderHeaderCommandHandler(newFactory[commands.OrderCatalogUoW](uow))
		_, err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		clients.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should fail with a conflict outside RASCUNHO", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Approved)
		cmd, err := commands.NewUpdateOrderHeaderCommand(o.ID(), order.Changes{
			order.FieldNCM: "39232190",
		}, userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewUpdateOrderHeaderCommandHandler(newFactory[commands.OrderCatalogUoW](uow))
		_, err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, order.ErrNotEditable)
	})
}

func TestChangeStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should move along an allowed transition", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		cmd, err := commands.NewChangeStatusCommand(o.ID(), "aprovado", userActor(t))
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
		h := commands.NewChangeStatusCommandHandler(newFactory[commands.OrderUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		entries := o.PullLogEntries()
		require.Len(t, entries, 1)
		assert.Equal(t, auditlog.ActionStatusChanged, entries[0].Action())
		assert.Equal(t, "RASCUNHO", entries[0].Detail()["from"])
		assert.Equal(t, "APROVADO", entries[0].Detail()["to"])
		uow.AssertExpectations(t)
	})

	t.Run("should reject a transition outside the table", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		cmd, err := commands.NewChangeStatusCommand(o.ID(), "CONCLUIDO", userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewChangeStatusCommandHandler(newFactory[commands.OrderUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("should surface a stale version", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Approved)
		cmd, err := commands.NewChangeStatusCommand(o.ID(), "CANCELADO", userActor(t))
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		orders.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order", errors.New("order was changed by another request"))).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewChangeStatusCommandHandler(newFactory[commands.OrderUoW](uow))
		err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestRecalculateTotalsCommandHandler_Handle(t *testing.T) {
	t.Run("should persist a drifted total", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Approved)
		drifted, err := order.RestoreOrder(o.ID(), o.Number(), o.ClientID(), o.IssueDate(), o.Status(),
			o.Header(), dec("19.99"), o.Items(), o.Version())
		require.NoError(t, err)
		cmd, err := commands.NewRecalculateTotalsCommand(o.ID(), kernel.SystemActor())
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("GetForUpdate", ctx, o.ID()).Return(drifted, nil).Once(),
			orders.On("Update", ctx, drifted).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		// When
		h := commands.NewRecalculateTotalsCommandHandler(newFactory[commands.OrderUoW](uow))
		changed, err := h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, drifted.TotalPrice().Decimal.Equal(decimal.RequireFromString("20")))
		entries := drifted.PullLogEntries()
		require.Len(t, entries, 1)
		assert.Equal(t, auditlog.ActionRecalcTotal, entries[0].Action())
		assert.Equal(t, string(order.ReasonReconciliation), entries[0].Detail()["reason"])
		assert.True(t, entries[0].Actor().IsSystem())
		uow.AssertExpectations(t)
	})

	t.Run("should write nothing when the total already matches", func(t *testing.T) {
		ctx := t.Context()

		// Given
		o := orderIn(t, order.Draft)
		cmd, err := commands.NewRecalculateTotalsCommand(o.ID(), kernel.SystemActor())
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewRecalculateTotalsCommandHandler(newFactory[commands.OrderUoW](uow))
		changed, err := h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.False(t, changed)
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		assert.Empty(t, o.PullLogEntries())
	})

	t.Run("should pass repository errors through", func(t *testing.T) {
		ctx := t.Context()

		// Given
		id := kernel.NewUUID()
		cmd, err := commands.NewRecalculateTotalsCommand(id, kernel.SystemActor())
		require.NoError(t, err)

		orders := new(MockOrderRepository)
		orders.On("GetForUpdate", ctx, id).Return(nil, errors.New("connection reset")).Once()
		uow := new(MockUnitOfWork)
		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(orders).Once()

		// When
		h := commands.NewRecalculateTotalsCommandHandler(newFactory[commands.OrderUoW](uow))
		_, err = h.Handle(ctx, cmd)

		// Then
		require.EqualError(t, err, "connection reset")
	})
}
