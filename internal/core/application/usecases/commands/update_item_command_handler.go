package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
)

// UpdateItemCommandHandler applies item patches. A patch that mixes allowed
// and blocked fields succeeds partially; the result tells which was which.
type UpdateItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for item patches.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateItemCommandHandler(uowFactory OrderUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{uowFactory: uowFactory}
}

// Handle applies the permitted fields and reports the blocked ones.
// Nothing is written when no field is permitted.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (order.ItemUpdate, error) {
	if err := cmd.Validate(); err != nil {
		return order.ItemUpdate{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.ItemUpdate{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.ItemUpdate{}, err
	}

	result, err := o.UpdateItem(cmd.ItemID(), cmd.Changes(), cmd.Actor())
	if err != nil {
		return result, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.ItemUpdate{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.ItemUpdate{}, err
	}

	return result, nil
}
