package order

import (
	"fmt"
	"strings"

	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

// PrintStatus tracks the printing progress of a single item.
type PrintStatus string

const (
	PrintDraft      PrintStatus = "rascunho"
	PrintPending    PrintStatus = "pendente"
	PrintInProgress PrintStatus = "em_processo"
	PrintDone       PrintStatus = "concluida"
)

// ParsePrintStatus is case-insensitive. An empty string means PrintDraft.
func ParsePrintStatus(s string) (PrintStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PrintDraft, nil
	}
	p := PrintStatus(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p PrintStatus) Validate() error {
	switch p {
	case PrintDraft, PrintPending, PrintInProgress, PrintDone:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(FieldPrintStatus, fmt.Errorf("%q is not a valid print status", string(p)))
	}
}

func (p PrintStatus) String() string {
	return string(p)
}
