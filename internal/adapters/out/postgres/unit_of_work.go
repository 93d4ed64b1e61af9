// Package postgres provides the GORM-based Unit of Work that binds every
// repository of an operation to one database transaction.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	// ... mutate the aggregate
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Aggregates passed to Add or Update are tracked. Commit drains the audit
// entries they buffered and appends them in the same transaction, so a log
// entry never exists without the change it describes and vice versa.
package postgres

import (
	"context"
	"fmt"

	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/auditlogrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/clientrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/orderrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/packagingrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/productionrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/qualityrepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/sequencerepo"
	"github.com/kleberrossi/Procman/internal/adapters/out/postgres/shipmentrepo"
	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work. Instances are not safe for
// concurrent use; every request or job run gets its own.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// modified inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit appends the pending audit entries of tracked aggregates and then
// commits. If the entries cannot be written the transaction is rolled back
// and nothing of the operation persists.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushAuditEntries(ctx); err != nil {
		_ = uow.tx.Rollback().Error
		uow.tx = nil
		return fmt.Errorf("append audit entries: %w", err)
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction. The buffered audit entries of tracked
// aggregates are dropped with it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) flushAuditEntries(ctx context.Context) error {
	var entries []auditlog.Entry
	for _, tracked := range uow.trackedAggregates {
		recorder, ok := tracked.Aggregate.(auditlog.Recorder)
		if !ok {
			continue
		}
		entries = append(entries, recorder.PullLogEntries()...)
	}
	if len(entries) == 0 {
		return nil
	}
	return auditlogrepo.NewGormAuditLogRepository(uow.tx).Append(ctx, entries...)
}

// conn returns the open transaction, or the pool when none is open.
// Repositories used outside Begin/Commit run in autocommit mode.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PackagingRepository() ports.PackagingRepository {
	return packagingrepo.NewGormPackagingRepository(uow.conn())
}

func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn())
}

func (uow *GormUnitOfWork) SequenceRepository() ports.SequenceRepository {
	return sequencerepo.NewGormSequenceRepository(uow.conn())
}

func (uow *GormUnitOfWork) AuditLogRepository() ports.AuditLogRepository {
	return auditlogrepo.NewGormAuditLogRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductionOrderRepository() ports.ProductionOrderRepository {
	return productionrepo.NewGormProductionOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) InspectionRepository() ports.InspectionRepository {
	return qualityrepo.NewGormInspectionRepository(uow.conn())
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn())
}

// TrackAggregate registers an aggregate written through this unit of work.
// Tracking the same aggregate twice is harmless since entries are drained
// on the first pull.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// Models lists the persistence models of every repository, in dependency
// order. Tests use it to build a schema with AutoMigrate where the SQL
// migrations cannot run.
func Models() []any {
	return []any{
		&clientrepo.ClientDTO{},
		&packagingrepo.SpecificationDTO{},
		&sequencerepo.CounterDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&auditlogrepo.EntryDTO{},
		&productionrepo.ProductionOrderDTO{},
		&qualityrepo.InspectionDTO{},
		&shipmentrepo.ShipmentDTO{},
	}
}
