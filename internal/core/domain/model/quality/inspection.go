// Package quality models quality inspections recorded against an order.
package quality

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

// DefaultKind is used when an inspection names no kind.
const DefaultKind = "QC"

var ErrInspectionIsNotConstructed = errors.New("Inspection must be created via NewInspection or RestoreInspection constructor")

// Findings is what the inspector reported.
type Findings struct {
	Sample string
	Result string
	Notes  string
	Photos []string
}

type Inspection struct {
	id        kernel.UUID
	orderID   kernel.UUID
	kind      string
	findings  Findings
	createdAt time.Time

	isConstructed bool
}

func NewInspection(id, orderID kernel.UUID, kind string, findings Findings, now time.Time) (*Inspection, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = DefaultKind
	}
	return RestoreInspection(id, orderID, kind, findings, now)
}

func RestoreInspection(id, orderID kernel.UUID, kind string, findings Findings, createdAt time.Time) (*Inspection, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if kind == "" {
		return nil, errs.NewValueIsRequiredError("tipo")
	}

	photos := make([]string, 0, len(findings.Photos))
	for _, p := range findings.Photos {
		if p = strings.TrimSpace(p); p != "" {
			photos = append(photos, p)
		}
	}
	findings.Photos = photos

	return &Inspection{
		id:            id,
		orderID:       orderID,
		kind:          kind,
		findings:      findings,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (i *Inspection) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInspectionIsNotConstructed
	}
	return nil
}

func (i *Inspection) ID() kernel.UUID {
	return i.id
}

func (i *Inspection) OrderID() kernel.UUID {
	return i.orderID
}

func (i *Inspection) Kind() string {
	return i.kind
}

// Findings returns a copy; the photo list is not shared.
func (i *Inspection) Findings() Findings {
	f := i.findings
	f.Photos = slices.Clone(f.Photos)
	return f
}

func (i *Inspection) CreatedAt() time.Time {
	return i.createdAt
}
