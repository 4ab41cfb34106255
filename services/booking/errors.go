package booking

import (
	"errors"
	"fmt"
)

// GuardError signals a refused workflow transition: a precondition for
// advancing is missing. Surfaced to the client as a redirect to the
// missing step, never as a server fault.
type GuardError struct {
	Code    string
	Message string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewGuardError(code, msg string) error {
	return &GuardError{Code: code, Message: msg}
}

// AuthRequiredError is the consultation guard: advancing needs a signed-in
// user to synthesize the customer snapshot from.
type AuthRequiredError struct{}

func (AuthRequiredError) Error() string {
	return "authentication required to continue the consultation flow"
}

// InvariantError reports a confirmation attempt with incomplete state.
// The step guards make this unreachable in normal operation, so it is
// treated as a programming error: logged, and the ledger stays untouched.
type InvariantError struct {
	Missing []string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("booking confirmation with incomplete state, missing: %v", e.Missing)
}

// ErrBookingNotFound is returned by ledger lookups and mutations for
// unknown booking IDs.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSessionNotFound is returned for unknown or ended wizard sessions.
var ErrSessionNotFound = errors.New("booking session not found or expired")
