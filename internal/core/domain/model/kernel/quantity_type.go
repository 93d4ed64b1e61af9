package kernel

import (
	"fmt"
	"strings"

	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

// QuantityType is the unit a quantity is expressed in: units or kilograms.
type QuantityType string

const (
	QuantityTypeUnits     QuantityType = "UN"
	QuantityTypeKilograms QuantityType = "KG"
)

// ParseQuantityType accepts UN or KG in any case. An empty string defaults to UN.
func ParseQuantityType(s string) (QuantityType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return QuantityTypeUnits, nil
	}

	qt := QuantityType(s)
	if err := qt.Validate(); err != nil {
		return "", err
	}
	return qt, nil
}

func (q QuantityType) Validate() error {
	switch q {
	case QuantityTypeUnits, QuantityTypeKilograms:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("quantity type", fmt.Errorf("%q is not UN or KG", string(q)))
	}
}

func (q QuantityType) String() string {
	return string(q)
}
