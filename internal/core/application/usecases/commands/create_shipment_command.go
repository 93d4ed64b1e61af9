package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/shipment"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand registers a pending shipment for an order. The modal
// is parsed here, so an unknown modal never reaches the handler.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	shipmentID kernel.UUID
	modal      shipment.Modal
	details    shipment.Details
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a pending shipment.
// Fails when modal is not one of the known transport modals.
func NewCreateShipmentCommand(
	orderID kernel.UUID,
	shipmentID kernel.UUID,
	modal string,
	details shipment.Details,
	actor kernel.Actor,
) (CreateShipmentCommand, error) {
	parsed, modalErr := shipment.ParseModal(modal)
	if err := errors.Join(orderID.Validate(), shipmentID.Validate(), modalErr); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		orderID:    orderID,
		shipmentID: shipmentID,
		modal:      parsed,
		details:    details,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipmentID returns the identifier of the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Modal returns the transport modal.
func (c CreateShipmentCommand) Modal() shipment.Modal {
	return c.modal
}

// Details returns destination, driver and packing list of the shipment.
func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

// Actor returns who issued the command.
func (c CreateShipmentCommand) Actor() kernel.Actor {
	return c.actor
}
