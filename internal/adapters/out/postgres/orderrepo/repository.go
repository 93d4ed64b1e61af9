package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/order"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

type noTracking struct{}

func (noTracking) TrackAggregate(kernel.UUID, any) {}

// NewGormOrderReader returns a repository for reads outside a unit of work.
// Writes through it are not collected for the audit log.
func NewGormOrderReader(db *gorm.DB) *GormOrderRepository {
	return NewGormOrderRepository(db, noTracking{})
}

// Add saves a new order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	for i, item := range aggregate.Items() {
		dto.Items = append(dto.Items, itemFromDomain(aggregate.ID(), i, item))
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves header and items of an existing order. The row must still
// carry the version the aggregate was loaded with.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"cliente_id":           dto.ClientID,
			"data_prevista":        dto.DeliveryDate,
			"status":               dto.Status,
			"quantidade_tipo":      dto.QuantityType,
			"preco_total":          dto.TotalPrice,
			"margem_toler_percent": dto.TolerancePercent,
			"ncm":                  dto.NCM,
			"representante_id":     dto.RepresentativeID,
			"representante_nome":   dto.RepresentativeName,
			"regime_venda":         dto.SalesRegime,
			"comissao_percent":     dto.CommissionPercent,
			"condicoes_comerciais": dto.CommercialConditions,
			"quantidade_planejada": dto.PlannedQuantity,
			"embalagem_code":       dto.PackageCode,
			"preco_base":           dto.BasePrice,
			"version":              dto.Version + 1,
			"updated_at":           time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return errs.NewVersionIsInvalidError("order", errors.New("order was changed by another request"))
	}

	if err := r.saveItems(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) saveItems(db *gorm.DB, aggregate *order.Order) error {
	removed := make([]uuid.UUID, 0, len(aggregate.RemovedItemIDs()))
	for _, id := range aggregate.RemovedItemIDs() {
		removed = append(removed, id.Bytes())
	}
	if len(removed) > 0 {
		if err := db.Where("pedido_id = ? AND id IN ?", aggregate.ID().Bytes(), removed).
			Delete(&ItemDTO{}).Error; err != nil {
			return err
		}
	}

	var stored []ItemDTO
	if err := db.Select("id", "posicao").
		Where("pedido_id = ?", aggregate.ID().Bytes()).
		Find(&stored).Error; err != nil {
		return err
	}

	existing := make(map[uuid.UUID]struct{}, len(stored))
	nextPosition := 0
	for _, s := range stored {
		existing[s.ID] = struct{}{}
		if s.Position >= nextPosition {
			nextPosition = s.Position + 1
		}
	}

	for _, item := range aggregate.Items() {
		if _, ok := existing[item.ID().Bytes()]; !ok {
			dto := itemFromDomain(aggregate.ID(), nextPosition, item)
			if err := db.Create(&dto).Error; err != nil {
				return err
			}
			nextPosition++
			continue
		}

		dto := itemFromDomain(aggregate.ID(), 0, item)
		if err := db.Model(&ItemDTO{}).
			Where("id = ?", dto.ID).
			Select(mutableItemColumns()).
			Updates(&dto).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order by ID and locks its row.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("posicao")
	}).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllNotTerminal returns ids of orders still in progress, oldest first.
func (r *GormOrderRepository) GetAllNotTerminal(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status NOT IN ?", []string{order.Done.String(), order.Cancelled.String()}).
		Order("created_at, numero_pedido").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, v := range raw {
		id, idErr := kernel.UUIDFromBytes(v[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}
