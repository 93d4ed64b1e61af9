// Package packaging models package specifications: the revisioned technical
// definition of a packaging product that order items snapshot.
package packaging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

// DefaultTapeType is used when a specification does not name a tape.
const DefaultTapeType = "nenhuma"

var ErrSpecificationIsNotConstructed = errors.New("Specification must be created via NewSpecification constructor")

// Dimensions groups the physical measures of a package. Thickness is in
// micrometres, the rest in millimetres. Nil means not informed.
type Dimensions struct {
	ThicknessUm *int
	WidthMm     *int
	HeightMm    *int
	GussetMm    int
	FlapMm      int
}

func (d Dimensions) validate() error {
	check := func(name string, v *int) error {
		if v != nil && *v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", *v))
		}
		return nil
	}
	return errors.Join(
		check("espessura_um", d.ThicknessUm),
		check("largura_mm", d.WidthMm),
		check("altura_mm", d.HeightMm),
		check("sanfona_mm", &d.GussetMm),
		check("aba_mm", &d.FlapMm),
	)
}

// Specification is looked up by (code, revision); the empty revision is a
// valid revision of its own.
type Specification struct {
	id           kernel.UUID
	code         string
	revision     string
	clientID     *kernel.UUID
	material     string
	dimensions   Dimensions
	tapeType     string
	printed      bool
	transparency *int

	isConstructed bool
}

func NewSpecification(
	id kernel.UUID,
	code string,
	revision string,
	material string,
	dimensions Dimensions,
	tapeType string,
	printed bool,
	transparency *int,
	clientID *kernel.UUID,
) (*Specification, error) {
	spec := &Specification{
		revision:      strings.TrimSpace(revision),
		printed:       printed,
		transparency:  transparency,
		isConstructed: true,
	}

	if err := errors.Join(
		spec.setID(id),
		spec.setCode(code),
		spec.setMaterial(material),
		spec.setDimensions(dimensions),
		spec.setClientID(clientID),
	); err != nil {
		return nil, err
	}

	spec.tapeType = strings.TrimSpace(tapeType)
	if spec.tapeType == "" {
		spec.tapeType = DefaultTapeType
	}

	return spec, nil
}

func (s *Specification) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSpecificationIsNotConstructed
	}
	return nil
}

func (s *Specification) ID() kernel.UUID { return s.id }
func (s *Specification) Code() string { return s.code }
func (s *Specification) Revision() string { return s.revision }
func (s *Specification) ClientID() *kernel.UUID { return s.clientID }
func (s *Specification) Material() string { return s.material }
func (s *Specification) Dimensions() Dimensions { return s.dimensions }
func (s *Specification) TapeType() string { return s.tapeType }
func (s *Specification) Printed() bool { return s.printed }
func (s *Specification) Transparency() *int { return s.transparency }

// Treated reports whether the film receives surface treatment, which is
// implied by an informed transparency grade.
func (s *Specification) Treated() bool {
	return s.transparency != nil
}

func (s *Specification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Specification) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("embalagem_code")
	}
	s.code = code
	return nil
}

func (s *Specification) setMaterial(material string) error {
	material = strings.TrimSpace(material)
	if material == "" {
		return errs.NewValueIsRequiredError("material")
	}
	s.material = material
	return nil
}

func (s *Specification) setDimensions(d Dimensions) error {
	if err := d.validate(); err != nil {
		return err
	}
	s.dimensions = d
	return nil
}

func (s *Specification) setClientID(clientID *kernel.UUID) error {
	if clientID == nil {
		return nil
	}
	if err := clientID.Validate(); err != nil {
		return err
	}
	id := *clientID
	s.clientID = &id
	return nil
}
