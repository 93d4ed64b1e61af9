// Package qualityrepo stores quality inspections in qc_inspecoes.
package qualityrepo

import (
	"context"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/quality"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InspectionDTO struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID                   `gorm:"column:pedido_id;type:uuid;not null;index:idx_qc_pedido"`
	Kind      string                      `gorm:"column:tipo;not null"`
	Sample    string                      `gorm:"column:amostra;not null"`
	Result    string                      `gorm:"column:resultado;not null"`
	Notes     string                      `gorm:"column:observacoes;not null"`
	Photos    datatypes.JSONSlice[string] `gorm:"column:fotos"`
	CreatedAt time.Time
}

func (InspectionDTO) TableName() string {
	return "qc_inspecoes"
}

type GormInspectionRepository struct {
	db *gorm.DB
}

func NewGormInspectionRepository(db *gorm.DB) *GormInspectionRepository {
	return &GormInspectionRepository{db: db}
}

func (r *GormInspectionRepository) Add(ctx context.Context, inspection *quality.Inspection) error {
	if err := inspection.Validate(); err != nil {
		return err
	}

	findings := inspection.Findings()
	dto := InspectionDTO{
		ID:        inspection.ID().Bytes(),
		OrderID:   inspection.OrderID().Bytes(),
		Kind:      inspection.Kind(),
		Sample:    findings.Sample,
		Result:    findings.Result,
		Notes:     findings.Notes,
		Photos:    datatypes.NewJSONSlice(findings.Photos),
		CreatedAt: inspection.CreatedAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}
