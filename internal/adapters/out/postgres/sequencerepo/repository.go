// Package sequencerepo hands out gap-free numbers from named counters stored
// in numeradores.
package sequencerepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"gorm.io/gorm"
)

type CounterDTO struct {
	Name string `gorm:"column:nome;primaryKey"`
	Last int64  `gorm:"column:ultimo;not null"`
}

func (CounterDTO) TableName() string {
	return "numeradores"
}

type GormSequenceRepository struct {
	db *gorm.DB
}

func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next increments the counter and returns the new value. The upsert keeps the
// counter row locked until the surrounding transaction ends, so concurrent
// callers are serialized and a rolled back caller leaves no gap.
func (r *GormSequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errs.NewValueIsRequiredError("counter name")
	}

	var next int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO numeradores (nome, ultimo) VALUES (?, 1)
		ON CONFLICT (nome) DO UPDATE SET ultimo = numeradores.ultimo + 1
		RETURNING ultimo`,
		name,
	).Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("next value of counter %s: %w", name, err)
	}

	return next, nil
}
