// Package errs provides the error taxonomy shared by every layer of Procman.
//
// Errors fall into three families that callers tell apart with errors.Is:
//   - validation: ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange
//   - not found: ErrObjectNotFound
//   - conflict: ErrConflict (operation not allowed in the current state) and
//     ErrVersionIsInvalid (stale optimistic version)
//
// Each family has a sentinel error and a struct type carrying the details.
// The struct's Unwrap returns the sentinel, so transports can map errors to
// status codes without knowing the concrete type.
package errs
