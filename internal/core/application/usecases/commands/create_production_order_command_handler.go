package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/core/domain/services"
	"github.com/kleberrossi/Procman/internal/pkg/clock"
)

// CreateProductionOrderCommandHandler stores a production order and lets the
// planner move the sales order to EM_EXECUCAO when it is the first one.
//
// The order row stays locked from the status check to the commit, so two
// concurrent requests for the same APROVADO order cannot both observe a
// count of one: the second waits, then sees EM_EXECUCAO and a count of two.
type CreateProductionOrderCommandHandler struct {
	uowFactory ProductionUoWFactory
	planner    services.ProductionPlanner
	clock      clock.Clock
}

// NewCreateProductionOrderCommandHandler creates a handler for production order creation.
// Requires a ProductionUoWFactory for transactional persistence.
func NewCreateProductionOrderCommandHandler(
	uowFactory ProductionUoWFactory,
	planner services.ProductionPlanner,
	clk clock.Clock,
) CreateProductionOrderCommandHandler {
	return CreateProductionOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		clock:      clk,
	}
}

// Handle stores the production order and, for the first one of an approved
// order, moves the order to EM_EXECUCAO in the same transaction.
func (h *CreateProductionOrderCommandHandler) Handle(ctx context.Context, cmd CreateProductionOrderCommand) error {
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

	if err = h.planner.CheckAccepts(o); err != nil {
		return err
	}

	op, err := production.NewProductionOrder(cmd.ProductionOrderID(), o.ID(), cmd.Parameters(), h.clock.Now())
	if err != nil {
		return err
	}

	opRepo := uow.ProductionOrderRepository()
	if err = opRepo.Add(ctx, op); err != nil {
		return err
	}

	count, err := opRepo.CountByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	if err = h.planner.Plan(o, op, count, cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
