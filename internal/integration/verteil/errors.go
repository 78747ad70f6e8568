package verteil

import "errors"

var (
	ErrNotConfigured = errors.New("verteil client: base url is not configured")
	ErrInternal      = errors.New("verteil client: internal error")
)
