package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/quality"
	"github.com/kleberrossi/Procman/internal/pkg/clock"
)

// AddQualityInspectionCommandHandler stores an inspection and logs QC_ADDED
// on its order.
type AddQualityInspectionCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	clock      clock.Clock
}

// NewAddQualityInspectionCommandHandler creates a handler for recording quality inspections.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewAddQualityInspectionCommandHandler(uowFactory FulfillmentUoWFactory, clk clock.Clock) AddQualityInspectionCommandHandler {
	return AddQualityInspectionCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle stores the inspection for an existing order and logs QC_ADDED.
func (h *AddQualityInspectionCommandHandler) Handle(ctx context.Context, cmd AddQualityInspectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	inspection, err := quality.NewInspection(cmd.InspectionID(), o.ID(), cmd.Kind(), cmd.Findings(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.InspectionRepository().Add(ctx, inspection); err != nil {
		return err
	}

	entry, err := auditlog.NewEntry(o.ID(), auditlog.ActionInspectionAdded, cmd.Actor(), auditlog.Detail{
		"qc_id": inspection.ID().String(),
		"tipo":  inspection.Kind(),
	})
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
