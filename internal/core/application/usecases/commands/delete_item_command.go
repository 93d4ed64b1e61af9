package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a command to remove an item from a draft order.
func NewDeleteItemCommand(orderID, itemID kernel.UUID, actor kernel.Actor) (DeleteItemCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return DeleteItemCommand{}, err
	}

	return DeleteItemCommand{
		orderID: orderID,
		itemID:  itemID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c DeleteItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item.
func (c DeleteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns who issued the command.
func (c DeleteItemCommand) Actor() kernel.Actor {
	return c.actor
}
