package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand requests a lifecycle transition. The target is given
// by name (RASCUNHO, APROVADO, EM_EXECUCAO, CONCLUIDO, CANCELADO); unknown
// names are rejected here, disallowed transitions when handled.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to move an order to target.
// The status name is matched case-insensitively.
func NewChangeStatusCommand(orderID kernel.UUID, target string, actor kernel.Actor) (ChangeStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeStatusCommand{}, err
	}

	status, err := order.ParseStatus(target)
	if err != nil {
		return ChangeStatusCommand{}, err
	}

	return ChangeStatusCommand{
		orderID: orderID,
		target:  status,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c ChangeStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeStatusCommand) Target() order.Status {
	return c.target
}

// Actor returns who issued the command.
func (c ChangeStatusCommand) Actor() kernel.Actor {
	return c.actor
}
