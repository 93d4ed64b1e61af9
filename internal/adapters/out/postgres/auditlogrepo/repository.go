// Package auditlogrepo stores audit entries in pedido_logs. Rows are only
// ever inserted.
package auditlogrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/auditlog"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EntryDTO struct {
	ID        int64             `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID         `gorm:"column:pedido_id;type:uuid;not null;index:idx_pedido_logs_pedido"`
	UserID    *uuid.UUID        `gorm:"column:user_id;type:uuid"`
	Action    string            `gorm:"column:acao;size:32;not null"`
	Detail    datatypes.JSONMap `gorm:"column:detalhe"`
	CreatedAt time.Time
}

func (EntryDTO) TableName() string {
	return "pedido_logs"
}

type GormAuditLogRepository struct {
	db *gorm.DB
}

func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts entries in the given order.
func (r *GormAuditLogRepository) Append(ctx context.Context, entries ...auditlog.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		dto, err := fromDomain(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	// One statement per entry keeps ids in append order on every driver.
	db := r.db.WithContext(ctx)
	for i := range dtos {
		if err := db.Create(&dtos[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListByOrder returns entries ordered by id.
func (r *GormAuditLogRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]auditlog.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("pedido_id = ?", orderID.Bytes()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]auditlog.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// fromDomain normalizes the detail through JSON so that what is stored is
// exactly what will be read back.
func fromDomain(e auditlog.Entry) (EntryDTO, error) {
	raw, err := json.Marshal(e.Detail())
	if err != nil {
		return EntryDTO{}, fmt.Errorf("encode audit detail: %w", err)
	}
	detail := datatypes.JSONMap{}
	if err = json.Unmarshal(raw, &detail); err != nil {
		return EntryDTO{}, fmt.Errorf("decode audit detail: %w", err)
	}

	var userID *uuid.UUID
	if id := e.Actor().UserID(); id != nil {
		rawID := id.Bytes()
		userID = &rawID
	}

	return EntryDTO{
		OrderID: e.OrderID().Bytes(),
		UserID:  userID,
		Action:  e.Action().String(),
		Detail:  detail,
	}, nil
}

func toDomain(dto EntryDTO) (auditlog.Entry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return auditlog.Entry{}, err
	}

	actor := kernel.SystemActor()
	if dto.UserID != nil {
		userID, idErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if idErr != nil {
			return auditlog.Entry{}, idErr
		}
		if actor, err = kernel.NewUserActor(userID); err != nil {
			return auditlog.Entry{}, err
		}
	}

	return auditlog.RestoreEntry(dto.ID, orderID, auditlog.Action(dto.Action), actor, auditlog.Detail(dto.Detail), dto.CreatedAt)
}
