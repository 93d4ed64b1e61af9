package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrReleaseShipmentCommandIsNotConstructed = errors.New(
	"ReleaseShipmentCommand must be created via NewReleaseShipmentCommand constructor",
)

type ReleaseShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewReleaseShipmentCommand creates a command to release a pending shipment.
func NewReleaseShipmentCommand(shipmentID kernel.UUID, actor kernel.Actor) (ReleaseShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return ReleaseShipmentCommand{}, err
	}

	return ReleaseShipmentCommand{
		shipmentID: shipmentID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c ReleaseShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReleaseShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment.
func (c ReleaseShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns who issued the command.
func (c ReleaseShipmentCommand) Actor() kernel.Actor {
	return c.actor
}
