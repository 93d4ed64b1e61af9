// Package packagingrepo stores package specifications in embalagem_master.
package packagingrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/packaging"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecificationDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code         string     `gorm:"column:embalagem_code;not null;uniqueIndex:idxu_emb_code_rev,priority:1"`
	Revision     string     `gorm:"column:rev;not null;uniqueIndex:idxu_emb_code_rev,priority:2"`
	ClientID     *uuid.UUID `gorm:"column:cliente_id;type:uuid;index"`
	Material     string     `gorm:"not null"`
	ThicknessUm  *int       `gorm:"column:espessura_um"`
	WidthMm      *int       `gorm:"column:largura_mm"`
	HeightMm     *int       `gorm:"column:altura_mm"`
	GussetMm     int        `gorm:"column:sanfona_mm;not null"`
	FlapMm       int        `gorm:"column:aba_mm;not null"`
	TapeType     string     `gorm:"column:fita_tipo;not null"`
	Printed      bool       `gorm:"column:impresso;not null"`
	Transparency *int       `gorm:"column:transparencia"`
	CreatedAt    time.Time
}

func (SpecificationDTO) TableName() string {
	return "embalagem_master"
}

type GormPackagingRepository struct {
	db *gorm.DB
}

func NewGormPackagingRepository(db *gorm.DB) *GormPackagingRepository {
	return &GormPackagingRepository{db: db}
}

func (r *GormPackagingRepository) Add(ctx context.Context, spec *packaging.Specification) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	dto := fromDomain(spec)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByCodeRevision finds a specification by code and exact revision.
func (r *GormPackagingRepository) GetByCodeRevision(ctx context.Context, code, revision string) (*packaging.Specification, error) {
	code = strings.TrimSpace(code)
	revision = strings.TrimSpace(revision)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("embalagem_code")
	}

	var dto SpecificationDTO
	err := r.db.WithContext(ctx).
		Where("embalagem_code = ? AND rev = ?", code, revision).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", code+"@"+revision)
		}
		return nil, err
	}

	return toDomain(dto)
}

func fromDomain(spec *packaging.Specification) SpecificationDTO {
	var clientID *uuid.UUID
	if id := spec.ClientID(); id != nil {
		raw := id.Bytes()
		clientID = &raw
	}

	dims := spec.Dimensions()
	return SpecificationDTO{
		ID:           spec.ID().Bytes(),
		Code:         spec.Code(),
		Revision:     spec.Revision(),
		ClientID:     clientID,
		Material:     spec.Material(),
		ThicknessUm:  dims.ThicknessUm,
		WidthMm:      dims.WidthMm,
		HeightMm:     dims.HeightMm,
		GussetMm:     dims.GussetMm,
		FlapMm:       dims.FlapMm,
		TapeType:     spec.TapeType(),
		Printed:      spec.Printed(),
		Transparency: spec.Transparency(),
	}
}

func toDomain(dto SpecificationDTO) (*packaging.Specification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var clientID *kernel.UUID
	if dto.ClientID != nil {
		cID, idErr := kernel.UUIDFromBytes((*dto.ClientID)[:])
		if idErr != nil {
			return nil, idErr
		}
		clientID = &cID
	}

	return packaging.NewSpecification(
		id,
		dto.Code,
		dto.Revision,
		dto.Material,
		packaging.Dimensions{
			ThicknessUm: dto.ThicknessUm,
			WidthMm:     dto.WidthMm,
			HeightMm:    dto.HeightMm,
			GussetMm:    dto.GussetMm,
			FlapMm:      dto.FlapMm,
		},
		dto.TapeType,
		dto.Printed,
		dto.Transparency,
		clientID,
	)
}
