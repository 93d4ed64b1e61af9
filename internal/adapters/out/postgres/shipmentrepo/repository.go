// Package shipmentrepo stores shipments in expedicoes.
package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/core/domain/model/shipment"
	"github.com/kleberrossi/Procman/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ShipmentDTO struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID                   `gorm:"column:pedido_id;type:uuid;not null;index:idx_exped_pedido"`
	Modal         string                      `gorm:"size:16;not null"`
	Carrier       string                      `gorm:"column:transportadora;not null"`
	Destination   string                      `gorm:"column:destino;not null"`
	DepartureDate *time.Time                  `gorm:"column:data_saida;type:date"`
	Driver        string                      `gorm:"column:veiculo_motorista;not null"`
	Plate         string                      `gorm:"column:veiculo_placa;not null"`
	Route         string                      `gorm:"column:rota_bairros;not null"`
	PackingList   datatypes.JSONSlice[string] `gorm:"column:romaneio"`
	Status        string                      `gorm:"size:16;not null"`
	CreatedAt     time.Time
}

func (ShipmentDTO) TableName() string {
	return "expedicoes"
}

type GormShipmentRepository struct {
	db *gorm.DB
}

func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

func (r *GormShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update only writes the status; the rest of a shipment is fixed at creation.
func (r *GormShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", s.ID().Bytes()).
		Update("status", string(s.Status()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	d := s.Details()
	return ShipmentDTO{
		ID:            s.ID().Bytes(),
		OrderID:       s.OrderID().Bytes(),
		Modal:         string(s.Modal()),
		Carrier:       d.Carrier,
		Destination:   d.Destination,
		DepartureDate: d.DepartureDate,
		Driver:        d.Driver,
		Plate:         d.Plate,
		Route:         d.Route,
		PackingList:   datatypes.NewJSONSlice(d.PackingList),
		Status:        string(s.Status()),
		CreatedAt:     s.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	details := shipment.Details{
		Carrier:       dto.Carrier,
		Destination:   dto.Destination,
		DepartureDate: dto.DepartureDate,
		Driver:        dto.Driver,
		Plate:         dto.Plate,
		Route:         dto.Route,
		PackingList:   []string(dto.PackingList),
	}

	return shipment.RestoreShipment(id, orderID, shipment.Modal(dto.Modal), details, shipment.Status(dto.Status), dto.CreatedAt)
}
