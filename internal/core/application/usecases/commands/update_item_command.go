package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand patches fields of one item. Which fields are accepted
// depends on the order status at the time the command is handled.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	changes order.Changes
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to patch one item.
// Field gating happens in the order, not here.
func NewUpdateItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	changes order.Changes,
	actor kernel.Actor,
) (UpdateItemCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return UpdateItemCommand{}, err
	}
	if len(changes) == 0 {
		return UpdateItemCommand{}, errs.NewValueIsRequiredError("fields")
	}

	return UpdateItemCommand{
		orderID: orderID,
		itemID:  itemID,
		changes: changes,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c UpdateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Changes returns the raw field changes keyed by wire name.
func (c UpdateItemCommand) Changes() order.Changes {
	return c.changes
}

// Actor returns who issued the command.
func (c UpdateItemCommand) Actor() kernel.Actor {
	return c.actor
}
