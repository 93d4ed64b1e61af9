package order

import (
	"fmt"
	"strings"

	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	RASCUNHO ──> APROVADO ──> EM_EXECUCAO ──> CONCLUIDO
//	    │            │             │
//	    └────────────┴─────────────┴──────> CANCELADO
//
// CONCLUIDO and CANCELADO are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Draft (RASCUNHO) is the initial status. Header and items are fully editable.
	Draft

	// Approved (APROVADO) freezes commercial terms. Only planning fields of items may change.
	Approved

	// InExecution (EM_EXECUCAO) means production has started.
	InExecution

	// Done (CONCLUIDO) is terminal.
	Done

	// Cancelled (CANCELADO) is terminal and reachable from every non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		Draft:       "RASCUNHO",
		Approved:    "APROVADO",
		InExecution: "EM_EXECUCAO",
		Done:        "CONCLUIDO",
		Cancelled:   "CANCELADO",
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no transitions
	return map[Status][]Status{
		Draft:       {Approved, Cancelled},
		Approved:    {InExecution, Cancelled},
		InExecution: {Done, Cancelled},
		Done:        {},
		Cancelled:   {},
	}
}

// ParseStatus converts the persisted or requested name into a Status.
// Matching is case-insensitive; unknown names are a validation error.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Done || s == Cancelled
}

// CanTransitionTo reports whether target is in the allowed set of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the move is allowed. An invalid target is
// a validation error; a valid target outside the allowed set is a conflict
// carrying both statuses.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewConflictError("status transition not allowed", s.String(), target.String())
	}

	return target, nil
}
