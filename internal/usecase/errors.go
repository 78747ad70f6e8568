package usecase

import "errors"

// Error taxonomy surfaced to handlers. Anything wrapped in ErrInternal is
// logged with detail and answered with a generic body.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("service unavailable")
	ErrInternal     = errors.New("internal error")
)
