package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/kleberrossi/Procman/internal/pkg/errs"
	"github.com/kleberrossi/Procman/internal/pkg/guard"
)

const (
	// OrderNumberCounter names the counter row that feeds order numbers.
	OrderNumberCounter = "PED"

	// Twelve digits keep "PED-" plus the sequence within the 16 characters of
	// the numero_pedido column.
	orderNumberMaxSequence = 999_999_999_999
)

var (
	ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError("OrderNumber must be created via NewOrderNumber or ParseOrderNumber")

	orderNumberPattern = regexp.MustCompile(`^PED-(\d{6}|[1-9]\d{6,11})$`)
)

// OrderNumber is the human-readable sequential identifier of an order,
// rendered as PED-NNNNNN with the sequence zero-padded to six digits.
// Sequences past 999999 simply print with more digits.
type OrderNumber struct {
	sequence int64
	guard    guard.ConstructorGuard
}

// NewOrderNumber formats a counter value as an order number.
// The sequence must be in [1, 999999999999].
func NewOrderNumber(sequence int64) (OrderNumber, error) {
	if sequence < 1 || sequence > orderNumberMaxSequence {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("order number sequence", sequence, 1, orderNumberMaxSequence)
	}

	return OrderNumber{
		sequence: sequence,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParseOrderNumber reads an order number back from its PED-NNNNNN form.
func ParseOrderNumber(s string) (OrderNumber, error) {
	m := orderNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q does not match PED-NNNNNN", s))
	}

	sequence, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}

	return NewOrderNumber(sequence)
}

func (n OrderNumber) Sequence() int64 {
	return n.sequence
}

func (n OrderNumber) String() string {
	return fmt.Sprintf("%s-%06d", OrderNumberCounter, n.sequence)
}

func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.sequence == other.sequence
}

func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
