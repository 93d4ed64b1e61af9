package commands

import (
	"context"
)

// DeleteItemCommandHandler removes an item from a RASCUNHO order.
type DeleteItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for item removal.
// Requires an OrderUoWFactory for transactional persistence.
func NewDeleteItemCommandHandler(uowFactory OrderUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{uowFactory: uowFactory}
}

// Handle removes the item and recomputes the total.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.DeleteItem(cmd.ItemID(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
