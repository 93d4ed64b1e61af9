package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
)

// RecalculateTotalsCommandHandler repairs a stored total that drifted from
// the totals rule. A consistent order is neither written nor logged.
type RecalculateTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecalculateTotalsCommandHandler creates a handler for total recomputation.
// Requires an OrderUoWFactory for transactional persistence.
func NewRecalculateTotalsCommandHandler(uowFactory OrderUoWFactory) RecalculateTotalsCommandHandler {
	return RecalculateTotalsCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether the stored total changed.
func (h *RecalculateTotalsCommandHandler) Handle(ctx context.Context, cmd RecalculateTotalsCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if !o.RecalculateTotal(order.ReasonReconciliation, cmd.Actor()) {
		return false, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
