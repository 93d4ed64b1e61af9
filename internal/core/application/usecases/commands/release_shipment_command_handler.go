package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
)

// ReleaseShipmentCommandHandler marks a pending shipment LIBERADA. Releasing
// twice is a conflict.
type ReleaseShipmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewReleaseShipmentCommandHandler creates a handler for shipment release.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewReleaseShipmentCommandHandler(uowFactory FulfillmentUoWFactory) ReleaseShipmentCommandHandler {
	return ReleaseShipmentCommandHandler{uowFactory: uowFactory}
}

// Handle moves the shipment to LIBERADA. Releasing twice is a conflict.
func (h *ReleaseShipmentCommandHandler) Handle(ctx context.Context, cmd ReleaseShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = s.Release(); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	entry, err := auditlog.NewEntry(s.OrderID(), auditlog.ActionShipmentReleased, cmd.Actor(), auditlog.Detail{
		"expedicao_id": s.ID().String(),
	})
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
