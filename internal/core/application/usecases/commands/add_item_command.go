package commands

import (
	"errors"
	"strings"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand adds one item to a RASCUNHO order. The item references a
// package specification by code and revision; an empty revision selects the
// specification stored without one.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	itemID      kernel.UUID
	packageCode string
	revision    string
	terms       order.ItemTerms
	actor       kernel.Actor

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to a draft order.
// Requires valid order and item ids and a non-blank package code.
func NewAddItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	packageCode string,
	revision string,
	terms order.ItemTerms,
	actor kernel.Actor,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		revision: strings.TrimSpace(revision),
		terms:    terms,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
		cmd.setPackageCode(packageCode),
	); err != nil {
		return AddItemCommand{}, err
	}
	cmd.orderID = orderID
	cmd.itemID = itemID

	return cmd, nil
}

// Validate ensures the command was created through its constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// PackageCode returns the package specification code.
func (c AddItemCommand) PackageCode() string {
	return c.packageCode
}

// Revision returns the package specification revision, empty for none.
func (c AddItemCommand) Revision() string {
	return c.revision
}

// Terms returns the commercial and planning terms of the new item.
func (c AddItemCommand) Terms() order.ItemTerms {
	return c.terms
}

// Actor returns who issued the command.
func (c AddItemCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AddItemCommand) setPackageCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("embalagem_code")
	}
	c.packageCode = code
	return nil
}
