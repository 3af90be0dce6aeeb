package service

import (
	"errors"
	"fmt"
)

// Sentinel errors translated to HTTP statuses at the handler boundary.
var (
	ErrEmailInUse         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("not authorized to access this route")
	ErrGameNotFound       = errors.New("game not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrDuplicateReview    = errors.New("you already have a review for this game; edit the existing one or delete it to create a new one")
)

// ValidationError marks input that violated a domain rule (missing field,
// enum membership, numeric bounds). Handlers map it to 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a domain validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
