package ports

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"
	"github.com/kleberrossi/Procman/internal/core/domain/model/quality"
	"github.com/kleberrossi/Procman/internal/core/domain/model/shipment"
)

type ProductionOrderRepository interface {
	Add(ctx context.Context, op *production.ProductionOrder) error

	// CountByOrder counts production orders of an order, including those
	// added in the current transaction.
	CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error)
}

type InspectionRepository interface {
	Add(ctx context.Context, inspection *quality.Inspection) error
}

type ShipmentRepository interface {
	Add(ctx context.Context, s *shipment.Shipment) error
	Update(ctx context.Context, s *shipment.Shipment) error
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
