package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
)

// AddItemCommandHandler snapshots the referenced package specification into
// a new item and recomputes the order total.
type AddItemCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
}

// NewAddItemCommandHandler creates a handler for adding items to draft orders.
// Requires an OrderCatalogUoWFactory for transactional persistence.
func NewAddItemCommandHandler(uowFactory OrderCatalogUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{uowFactory: uowFactory}
}

// Handle checks that the order still accepts items before resolving the
// package, then snapshots it into the new item and saves the order.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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
	if err = o.CanAddItems(); err != nil {
		return err
	}

	spec, err := uow.PackagingRepository().GetByCodeRevision(ctx, cmd.PackageCode(), cmd.Revision())
	if err != nil {
		return err
	}

	item, err := order.NewItem(cmd.ItemID(), spec, cmd.Terms())
	if err != nil {
		return err
	}

	if err = o.AddItem(item, cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
