package usecase

import (
	"fmt"
	"strings"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/pkg/errs"
)

// Sentinel errors shared by all commands and queries. Handlers map
// these to HTTP status codes with errs.Is.
var (
	ErrValidation         = errs.New("validation failed")
	ErrConflict           = errs.New("requested time conflicts with an existing claim")
	ErrNotFound           = errs.New("resource not found")
	ErrAccessDenied       = errs.New("access denied")
	ErrInvalidTransition  = errs.New("invalid state transition")
	ErrCancellationWindow = errs.New("cancellation window has passed")
	ErrStoreUnavailable   = errs.New("reservation store unavailable")
)

// ConflictError carries the claims the request collided with so the
// handler can report which slots are taken and by what kind of claim.
type ConflictError struct {
	Claims []schedule.Claim
}

func (e *ConflictError) Error() string {
	if len(e.Claims) == 0 {
		return "time conflict"
	}
	parts := make([]string, 0, len(e.Claims))
	for _, c := range e.Claims {
		parts = append(parts, fmt.Sprintf("%s %s", c.Kind, c.Window))
	}
	return "time conflict: " + strings.Join(parts, ", ")
}

func newConflictError(claims []schedule.Claim) error {
	return errs.Mark(&ConflictError{Claims: claims}, ErrConflict)
}
