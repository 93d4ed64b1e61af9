// Package clientrepo stores the client registry in clientes.
package clientrepo

import (
	"context"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/client"
	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LegalName    string    `gorm:"column:razao_social;not null"`
	CNPJ         string    `gorm:"column:cnpj;not null;uniqueIndex:idxu_clientes_cnpj"`
	InternalCode string    `gorm:"column:codigo_interno;not null"`
	CreatedAt    time.Time
}

func (ClientDTO) TableName() string {
	return "clientes"
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Add(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := ClientDTO{
		ID:           c.ID().Bytes(),
		LegalName:    c.LegalName(),
		CNPJ:         c.CNPJ(),
		InternalCode: c.InternalCode(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormClientRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
