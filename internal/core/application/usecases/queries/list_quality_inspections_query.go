package queries

import (
	"context"
	"errors"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrListQualityInspectionsQueryIsNotConstructed = errors.New(
	"ListQualityInspectionsQuery must be created via NewListQualityInspectionsQuery constructor",
)

type ListQualityInspectionsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListQualityInspectionsQuery(orderID kernel.UUID) (ListQualityInspectionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListQualityInspectionsQuery{}, err
	}

	return ListQualityInspectionsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListQualityInspectionsQuery) Validate() error {
	return q.guard.Validate(ErrListQualityInspectionsQueryIsNotConstructed)
}

func (q ListQualityInspectionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

type InspectionView struct {
	ID        kernel.UUID `json:"id"`
	OrderID   kernel.UUID `json:"pedido_id"`
	Kind      string      `json:"tipo"`
	Sample    string      `json:"amostra"`
	Result    string      `json:"resultado"`
	Notes     string      `json:"observacoes"`
	Photos    []string    `json:"fotos"`
	CreatedAt time.Time   `json:"created_at"`
}

type inspectionRow struct {
	ID        uuid.UUID
	Kind      string                      `gorm:"column:tipo"`
	Sample    string                      `gorm:"column:amostra"`
	Result    string                      `gorm:"column:resultado"`
	Notes     string                      `gorm:"column:observacoes"`
	Photos    datatypes.JSONSlice[string] `gorm:"column:fotos"`
	CreatedAt time.Time
}

type ListQualityInspectionsQueryHandler struct {
	db *gorm.DB
}

func NewListQualityInspectionsQueryHandler(db *gorm.DB) ListQualityInspectionsQueryHandler {
	return ListQualityInspectionsQueryHandler{db: db}
}

// Handle returns inspections oldest first.
func (h ListQualityInspectionsQueryHandler) Handle(
	ctx context.Context,
	query ListQualityInspectionsQuery,
) ([]InspectionView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []inspectionRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, tipo, amostra, resultado, observacoes, fotos, created_at
		FROM qc_inspecoes
		WHERE pedido_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]InspectionView, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		photos := []string(r.Photos)
		if photos == nil {
			photos = []string{}
		}
		views = append(views, InspectionView{
			ID:        id,
			OrderID:   query.OrderID(),
			Kind:      r.Kind,
			Sample:    r.Sample,
			Result:    r.Result,
			Notes:     r.Notes,
			Photos:    photos,
			CreatedAt: r.CreatedAt,
		})
	}
	return views, nil
}
