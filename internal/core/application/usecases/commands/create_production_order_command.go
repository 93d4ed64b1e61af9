package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrCreateProductionOrderCommandIsNotConstructed = errors.New(
	"CreateProductionOrderCommand must be created via NewCreateProductionOrderCommand constructor",
)

// CreateProductionOrderCommand issues a cut & weld production order for an
// approved sales order.
//
// Example:
//
//	cmd, err := NewCreateProductionOrderCommand(orderID, kernel.NewUUID(), production.Parameters{
//	    Number:   "OP-2024-001",
//	    TapeType: "adesiva",
//	}, actor)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	// errors.Is(err, errs.ErrConflict) when the order is not APROVADO or EM_EXECUCAO
type CreateProductionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	productionOrderID kernel.UUID
	parameters        production.Parameters
	actor             kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateProductionOrderCommand creates a command to open a production
// order for an approved order.
func NewCreateProductionOrderCommand(
	orderID kernel.UUID,
	productionOrderID kernel.UUID,
	parameters production.Parameters,
	actor kernel.Actor,
) (CreateProductionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), productionOrderID.Validate()); err != nil {
		return CreateProductionOrderCommand{}, err
	}

	return CreateProductionOrderCommand{
		orderID:           orderID,
		productionOrderID: productionOrderID,
		parameters:        parameters,
		actor:             actor,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c CreateProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductionOrderCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c CreateProductionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductionOrderID returns the identifier assigned to the new production order.
func (c CreateProductionOrderCommand) ProductionOrderID() kernel.UUID {
	return c.productionOrderID
}

// Parameters returns the machine parameters of the production order.
func (c CreateProductionOrderCommand) Parameters() production.Parameters {
	return c.parameters
}

// Actor returns who issued the command.
func (c CreateProductionOrderCommand) Actor() kernel.Actor {
	return c.actor
}
