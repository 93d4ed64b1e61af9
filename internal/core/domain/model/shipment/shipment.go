// Package shipment models dispatch records of finished goods.
package shipment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")

// Modal is how the goods leave the plant.
type Modal string

const (
	ModalCarrier    Modal = "transportadora"
	ModalOwnVehicle Modal = "veiculo_proprio"
)

func ParseModal(s string) (Modal, error) {
	m := Modal(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModalCarrier, ModalOwnVehicle:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("modal", fmt.Errorf("%q is not transportadora or veiculo_proprio", s))
	}
}

type Status string

const (
	StatusPending  Status = "PENDENTE"
	StatusReleased Status = "LIBERADA"
)

// Details describe the trip. Carrier applies to ModalCarrier, Driver and
// Plate to ModalOwnVehicle.
type Details struct {
	Carrier       string
	Destination   string
	DepartureDate *time.Time
	Driver        string
	Plate         string
	Route         string
	PackingList   []string
}

type Shipment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	modal     Modal
	details   Details
	status    Status
	createdAt time.Time

	isConstructed bool
}

func NewShipment(id, orderID kernel.UUID, modal Modal, details Details, now time.Time) (*Shipment, error) {
	return RestoreShipment(id, orderID, modal, details, StatusPending, now)
}

func RestoreShipment(id, orderID kernel.UUID, modal Modal, details Details, status Status, createdAt time.Time) (*Shipment, error) {
	if _, err := ParseModal(string(modal)); err != nil {
		return nil, errors.Join(err, id.Validate(), orderID.Validate())
	}
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if status != StatusPending && status != StatusReleased {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a shipment status", string(status)))
	}

	details.PackingList = slices.Clone(details.PackingList)

	return &Shipment{
		id:            id,
		orderID:       orderID,
		modal:         modal,
		details:       details,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Release marks the shipment as cleared to leave. Releasing twice is a conflict.
func (s *Shipment) Release() error {
	if s.status == StatusReleased {
		return errs.NewConflictError("shipment status", s.status, StatusReleased)
	}
	s.status = StatusReleased
	return nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID      { return s.id }
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }
func (s *Shipment) Modal() Modal         { return s.modal }
func (s *Shipment) Status() Status       { return s.status }
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

func (s *Shipment) Details() Details {
	d := s.details
	d.PackingList = slices.Clone(d.PackingList)
	return d
}
