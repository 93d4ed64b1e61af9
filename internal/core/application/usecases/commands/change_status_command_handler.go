package commands

import (
	"context"
)

// ChangeStatusCommandHandler moves an order along the lifecycle. Disallowed
// transitions fail with errs.ErrConflict and leave the order untouched.
type ChangeStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeStatusCommandHandler creates a handler for order status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeStatusCommandHandler(uowFactory OrderUoWFactory) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies the transition under the order row lock.
// Disallowed transitions fail with a conflict.
func (h *ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
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

	if err = o.ChangeStatus(cmd.Target(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
