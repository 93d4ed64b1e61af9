package queries

import (
	"context"
	"errors"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrListProductionOrdersQueryIsNotConstructed = errors.New(
	"ListProductionOrdersQuery must be created via NewListProductionOrdersQuery constructor",
)

type ListProductionOrdersQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListProductionOrdersQuery(orderID kernel.UUID) (ListProductionOrdersQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListProductionOrdersQuery{}, err
	}

	return ListProductionOrdersQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListProductionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListProductionOrdersQueryIsNotConstructed)
}

func (q ListProductionOrdersQuery) OrderID() kernel.UUID {
	return q.orderID
}

type ProductionOrderView struct {
	ID                     kernel.UUID         `json:"id"`
	OrderID                kernel.UUID         `json:"pedido_id"`
	Number                 string              `json:"numero"`
	WidthMm                *int                `json:"largura_mm"`
	HeightMm               *int                `json:"altura_mm"`
	GussetMm               int                 `json:"sanfona_mm"`
	FlapMm                 int                 `json:"aba_mm"`
	TapeType               string              `json:"fita_tipo"`
	MechanicalResistance   string              `json:"resistencia_mecanica"`
	SealTemperatureC       *int                `json:"temp_solda_c"`
	CutSpeedCpm            *int                `json:"velocidade_corte_cpm"`
	MinRollWeightKg        decimal.NullDecimal `json:"peso_min_bobina_kg"`
	UnitErrorMarginPercent decimal.NullDecimal `json:"margem_erro_un_percent"`
	Status                 string              `json:"status"`
	CreatedAt              time.Time           `json:"created_at"`
}

type productionOrderRow struct {
	ID                     uuid.UUID
	OrderID                uuid.UUID           `gorm:"column:pedido_id"`
	Number                 string              `gorm:"column:numero"`
	WidthMm                *int                `gorm:"column:largura_mm"`
	HeightMm               *int                `gorm:"column:altura_mm"`
	GussetMm               int                 `gorm:"column:sanfona_mm"`
	FlapMm                 int                 `gorm:"column:aba_mm"`
	TapeType               string              `gorm:"column:fita_tipo"`
	MechanicalResistance   string              `gorm:"column:resistencia_mecanica"`
	SealTemperatureC       *int                `gorm:"column:temp_solda_c"`
	CutSpeedCpm            *int                `gorm:"column:velocidade_corte_cpm"`
	MinRollWeightKg        decimal.NullDecimal `gorm:"column:peso_min_bobina_kg"`
	UnitErrorMarginPercent decimal.NullDecimal `gorm:"column:margem_erro_un_percent"`
	Status                 string
	CreatedAt              time.Time
}

// ListProductionOrdersQueryHandler lists the production orders of one
// order, oldest first. An unknown order yields an empty list.
type ListProductionOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListProductionOrdersQueryHandler(db *gorm.DB) ListProductionOrdersQueryHandler {
	return ListProductionOrdersQueryHandler{db: db}
}

func (h ListProductionOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListProductionOrdersQuery,
) ([]ProductionOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []productionOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT *
		FROM ordens_producao
		WHERE pedido_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]ProductionOrderView, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		views = append(views, ProductionOrderView{
			ID:                     id,
			OrderID:                query.OrderID(),
			Number:                 r.Number,
			WidthMm:                r.WidthMm,
			HeightMm:               r.HeightMm,
			GussetMm:               r.GussetMm,
			FlapMm:                 r.FlapMm,
			TapeType:               r.TapeType,
			MechanicalResistance:   r.MechanicalResistance,
			SealTemperatureC:       r.SealTemperatureC,
			CutSpeedCpm:            r.CutSpeedCpm,
			MinRollWeightKg:        r.MinRollWeightKg,
			UnitErrorMarginPercent: r.UnitErrorMarginPercent,
			Status:                 r.Status,
			CreatedAt:              r.CreatedAt,
		})
	}
	return views, nil
}
