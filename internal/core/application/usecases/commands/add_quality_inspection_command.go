package commands

import (
	"errors"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/quality"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

var ErrAddQualityInspectionCommandIsNotConstructed = errors.New(
	"AddQualityInspectionCommand must be created via NewAddQualityInspectionCommand constructor",
)

// AddQualityInspectionCommand records an inspection against an order in
// any status. An empty kind defaults to quality.DefaultKind.
type AddQualityInspectionCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	inspectionID kernel.UUID
	kind         string
	findings     quality.Findings
	actor        kernel.Actor

	guard guard.ConstructorGuard
}

// NewAddQualityInspectionCommand creates a command to record an inspection
// against an existing order.
func NewAddQualityInspectionCommand(
	orderID kernel.UUID,
	inspectionID kernel.UUID,
	kind string,
	findings quality.Findings,
	actor kernel.Actor,
) (AddQualityInspectionCommand, error) {
	if err := errors.Join(orderID.Validate(), inspectionID.Validate()); err != nil {
		return AddQualityInspectionCommand{}, err
	}

	return AddQualityInspectionCommand{
		orderID:      orderID,
		inspectionID: inspectionID,
		kind:         kind,
		findings:     findings,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c AddQualityInspectionCommand) Validate() error {
	return c.guard.Validate(ErrAddQualityInspectionCommandIsNotConstructed)
}

// OrderID returns the order the command applies to.
func (c AddQualityInspectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// InspectionID returns the identifier assigned to the new inspection.
func (c AddQualityInspectionCommand) InspectionID() kernel.UUID {
	return c.inspectionID
}

// Kind returns the inspection kind, QC when none was given.
func (c AddQualityInspectionCommand) Kind() string {
	return c.kind
}

// Findings returns what the inspector recorded.
func (c AddQualityInspectionCommand) Findings() quality.Findings {
	return c.findings
}

// Actor returns who issued the command.
func (c AddQualityInspectionCommand) Actor() kernel.Actor {
	return c.actor
}
