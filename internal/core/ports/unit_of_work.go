package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories it returns are bound to the transaction started by Begin.
// Commit writes the audit entries recorded by tracked aggregates before
// committing, so entries and the changes they describe land together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PackagingRepository() PackagingRepository
	ClientRepository() ClientRepository
	SequenceRepository() SequenceRepository
	AuditLogRepository() AuditLogRepository
	ProductionOrderRepository() ProductionOrderRepository
	InspectionRepository() InspectionRepository
	ShipmentRepository() ShipmentRepository
}
