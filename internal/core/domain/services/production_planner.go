package services

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

// ProductionPlanner attaches production orders to sales orders.
//
// Business rules:
//   - Only APROVADO or EM_EXECUCAO orders accept production orders
//   - The first production order of an APROVADO order moves it to EM_EXECUCAO
//   - Later production orders never change the status again
//
// Example usage:
//
//	planner := services.NewProductionPlanner()
//	if err := planner.CheckAccepts(o); err != nil {
//	    return err
//	}
//	// persist op, then count production orders of o including op
//	err := planner.Plan(o, op, count, actor)
type ProductionPlanner struct{}

func NewProductionPlanner() ProductionPlanner {
	return ProductionPlanner{}
}

// CheckAccepts fails with a conflict when o cannot receive production orders.
func (p ProductionPlanner) CheckAccepts(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.CanReceiveProductionOrder()
}

// Plan registers op on o. count is the number of production orders of o
// after op was stored.
func (p ProductionPlanner) Plan(o *order.Order, op *production.ProductionOrder, count int, actor kernel.Actor) error {
	if err := errors.Join(o.Validate(), op.Validate()); err != nil {
		return err
	}

	if !op.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidError("production order belongs to another order")
	}

	if count < 1 {
		return errs.NewValueIsOutOfRangeError("production order count", count, 1, "unbounded")
	}

	return o.RegisterProductionOrder(op.ID(), count, actor)
}
