package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/shipment"
	"github.com/kleberrossi/Procman/internal/pkg/clock"
)

type CreateShipmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	clock      clock.Clock
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a FulfillmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory FulfillmentUoWFactory, clk clock.Clock) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle stores a PENDENTE shipment for an existing order.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	s, err := shipment.NewShipment(cmd.ShipmentID(), o.ID(), cmd.Modal(), cmd.Details(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	entry, err := auditlog.NewEntry(o.ID(), auditlog.ActionShipmentCreated, cmd.Actor(), auditlog.Detail{
		"expedicao_id": s.ID().String(),
		"modal":        string(s.Modal()),
	})
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
