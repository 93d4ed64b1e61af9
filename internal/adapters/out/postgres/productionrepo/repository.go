// Package productionrepo stores cut & weld production orders in ordens_producao.
package productionrepo

import (
	"context"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/production"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductionOrderDTO struct {
	ID                     uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID                uuid.UUID           `gorm:"column:pedido_id;type:uuid;not null;index:idx_op_pedido"`
	Number                 string              `gorm:"column:numero;not null"`
	WidthMm                *int                `gorm:"column:largura_mm"`
	HeightMm               *int                `gorm:"column:altura_mm"`
	GussetMm               int                 `gorm:"column:sanfona_mm;not null"`
	FlapMm                 int                 `gorm:"column:aba_mm;not null"`
	TapeType               string              `gorm:"column:fita_tipo;not null"`
	MechanicalResistance   string              `gorm:"column:resistencia_mecanica;not null"`
	SealTemperatureC       *int                `gorm:"column:temp_solda_c"`
	CutSpeedCpm            *int                `gorm:"column:velocidade_corte_cpm"`
	MinRollWeightKg        decimal.NullDecimal `gorm:"column:peso_min_bobina_kg;type:numeric"`
	UnitErrorMarginPercent decimal.NullDecimal `gorm:"column:margem_erro_un_percent;type:numeric"`
	Status                 string              `gorm:"size:16;not null"`
	CreatedAt              time.Time
}

func (ProductionOrderDTO) TableName() string {
	return "ordens_producao"
}

type GormProductionOrderRepository struct {
	db *gorm.DB
}

func NewGormProductionOrderRepository(db *gorm.DB) *GormProductionOrderRepository {
	return &GormProductionOrderRepository{db: db}
}

func (r *GormProductionOrderRepository) Add(ctx context.Context, op *production.ProductionOrder) error {
	if err := op.Validate(); err != nil {
		return err
	}

	p := op.Parameters()
	dto := ProductionOrderDTO{
		ID:                     op.ID().Bytes(),
		OrderID:                op.OrderID().Bytes(),
		Number:                 p.Number,
		WidthMm:                p.WidthMm,
		HeightMm:               p.HeightMm,
		GussetMm:               p.GussetMm,
		FlapMm:                 p.FlapMm,
		TapeType:               p.TapeType,
		MechanicalResistance:   p.MechanicalResistance,
		SealTemperatureC:       p.SealTemperatureC,
		CutSpeedCpm:            p.CutSpeedCpm,
		MinRollWeightKg:        p.MinRollWeightKg,
		UnitErrorMarginPercent: p.UnitErrorMarginPercent,
		Status:                 string(op.Status()),
		CreatedAt:              op.CreatedAt(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductionOrderRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ProductionOrderDTO{}).
		Where("pedido_id = ?", orderID.Bytes()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
