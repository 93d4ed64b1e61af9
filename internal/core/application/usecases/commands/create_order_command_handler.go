package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/clock"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

// CreateOrderCommandHandler opens orders. The order number is drawn inside
// the same transaction as the insert, so a failed creation releases it.
type CreateOrderCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderCatalogUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderCatalogUoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle creates the order with issue date today, status RASCUNHO and the
// next number of kernel.OrderNumberCounter. The client must exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	exists, err := uow.ClientRepository().Exists(ctx, cmd.ClientID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("client", cmd.ClientID().String())
	}

	seq, err := uow.SequenceRepository().Next(ctx, kernel.OrderNumberCounter)
	if err != nil {
		return err
	}

	number, err := kernel.NewOrderNumber(seq)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.ClientID(),
		h.clock.Now(),
		cmd.Header(),
		cmd.ManualTotal(),
		cmd.Actor(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
