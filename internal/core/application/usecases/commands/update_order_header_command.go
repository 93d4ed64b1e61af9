package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrUpdateOrderHeaderCommandIsNotConstructed = errors.New(
	"UpdateOrderHeaderCommand must be created via NewUpdateOrderHeaderCommand constructor",
)

// UpdateOrderHeaderCommand patches commercial fields of a RASCUNHO order.
// Names outside order.HeaderFields are ignored and reported back.
type UpdateOrderHeaderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	changes order.Changes
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateOrderHeaderCommand creates a command to patch the order header.
// Fails when changes is empty.
func NewUpdateOrderHeaderCommand(orderID kernel.UUID, changes order.Changes, actor kernel.Actor) (UpdateOrderHeaderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderHeaderCommand{}, err
	}
	if len(changes) == 0 {
		return UpdateOrderHeaderCommand{}, errs.NewValueIsRequiredError("fields")
	}

	return UpdateOrderHeaderCommand{
		orderID: orderID,
		changes: changes,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c UpdateOrderHeaderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderHeaderCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c UpdateOrderHeaderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Changes returns the raw field changes keyed by wire name.
func (c UpdateOrderHeaderCommand) Changes() order.Changes {
	return c.changes
}

// Actor returns who issued the command.
func (c UpdateOrderHeaderCommand) Actor() kernel.Actor {
	return c.actor
}
