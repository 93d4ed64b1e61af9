package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrRecalculateTotalsCommandIsNotConstructed = errors.New(
	"RecalculateTotalsCommand must be created via NewRecalculateTotalsCommand constructor",
)

// RecalculateTotalsCommand re-applies the totals rule to one order. It is
// used by the reconciliation job and by operators repairing a total.
type RecalculateTotalsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewRecalculateTotalsCommand creates a command to recompute an order total.
func NewRecalculateTotalsCommand(orderID kernel.UUID, actor kernel.Actor) (RecalculateTotalsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecalculateTotalsCommand{}, err
	}

	return RecalculateTotalsCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c RecalculateTotalsCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateTotalsCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c RecalculateTotalsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who issued the command.
func (c RecalculateTotalsCommand) Actor() kernel.Actor {
	return c.actor
}
