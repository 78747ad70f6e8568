package identity

import "errors"

var (
	// ErrNotConfigured is returned when no secret key is set
	ErrNotConfigured = errors.New("identity client: secret key is not configured")

	// ErrInternal is returned when the request could not be built or sent
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse is returned for non-success statuses and undecodable bodies
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
