package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new sales order in
// RASCUNHO for a registered client.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, order.Header{
//	    BasePrice:       decimal.NewNullDecimal(decimal.RequireFromString("0.35")),
//	    PlannedQuantity: decimal.NewNullDecimal(decimal.NewFromInt(10000)),
//	}, decimal.NullDecimal{}, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock.SystemClock{})
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientID    kernel.UUID
	header      order.Header
	manualTotal decimal.NullDecimal
	actor       kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers. Header values are validated
// by the aggregate when the order is built.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	header order.Header,
	manualTotal decimal.NullDecimal,
	actor kernel.Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		header:      header,
		manualTotal: manualTotal,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through its constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client the order is placed for.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Header returns the initial header fields.
func (c CreateOrderCommand) Header() order.Header {
	return c.header
}

// ManualTotal is the preco_total sent by the caller. It survives only when
// the totals rule cannot compute a value.
func (c CreateOrderCommand) ManualTotal() decimal.NullDecimal {
	return c.manualTotal
}

// Actor returns who creates the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
