package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

// UpdateOrderHeaderCommandHandler applies header patches. When the patch
// moves the order to another client, that client must be registered.
type UpdateOrderHeaderCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
}

// NewUpdateOrderHeaderCommandHandler creates a handler for header patches.
// Requires an OrderCatalogUoWFactory for transactional persistence.
func NewUpdateOrderHeaderCommandHandler(uowFactory OrderCatalogUoWFactory) UpdateOrderHeaderCommandHandler {
	return UpdateOrderHeaderCommandHandler{uowFactory: uowFactory}
}

// Handle applies allowed header fields of a draft order. A new client must
// exist.
func (h *UpdateOrderHeaderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderHeaderCommand) (order.HeaderUpdate, error) {
	if err := cmd.Validate(); err != nil {
		return order.HeaderUpdate{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.HeaderUpdate{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.HeaderUpdate{}, err
	}

	result, err := o.UpdateHeader(cmd.Changes(), cmd.Actor())
	if err != nil {
		return order.HeaderUpdate{}, err
	}

	// The aggregate has already switched clients; rolling back discards it.
	if _, moved := result.Changes[order.FieldClientID]; moved {
		exists, existsErr := uow.ClientRepository().Exists(ctx, o.ClientID())
		if existsErr != nil {
			return order.HeaderUpdate{}, existsErr
		}
		if !exists {
			return order.HeaderUpdate{}, errs.NewObjectNotFoundError("client", o.ClientID().String())
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.HeaderUpdate{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.HeaderUpdate{}, err
	}

	return result, nil
}
