// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load and lock what it changes, mutate aggregates, persist, commit.
package commands

import (
	"context"

	"github.com/kleberrossi/Procman/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	PackagingRepoFactory interface {
		PackagingRepository() ports.PackagingRepository
	}

	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	AuditLogRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	ProductionOrderRepoFactory interface {
		ProductionOrderRepository() ports.ProductionOrderRepository
	}

	InspectionRepoFactory interface {
		InspectionRepository() ports.InspectionRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// OrderUoW covers commands that only change an existing order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCatalogUoW covers commands that change an order based on the
	// client registry and the package master: creating an order, adding an
	// item and patching the header.
	OrderCatalogUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		PackagingRepoFactory
		SequenceRepoFactory
	}

	OrderCatalogUoWFactory interface {
		Create() OrderCatalogUoW
	}

	// ProductionUoW covers the production-order trigger.
	ProductionUoW interface {
		TxManager
		OrderRepoFactory
		ProductionOrderRepoFactory
	}

	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// FulfillmentUoW covers quality inspections and shipments. Those records
	// are not part of the order aggregate, so their audit entries are
	// appended directly.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		InspectionRepoFactory
		ShipmentRepoFactory
		AuditLogRepoFactory
	}

	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// CatalogUoW covers maintenance of clients and package specifications.
	CatalogUoW interface {
		TxManager
		ClientRepoFactory
		PackagingRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
