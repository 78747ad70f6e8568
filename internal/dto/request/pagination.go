package request

import (
	"net/url"

	"flight-booking/pkg/utils"
)

const (
	DefaultLimit  = 20
	DefaultOffset = 0
)

type PaginationQuery struct {
	Limit  int `json:"limit" validate:"min=1,max=100"`
	Offset int `json:"offset" validate:"min=0"`
}

// ParsePagination reads limit/offset; unparsable values fall back to 20/0
func ParsePagination(values url.Values) PaginationQuery {
	return PaginationQuery{
		Limit:  utils.ParseInt(values.Get("limit"), DefaultLimit),
		Offset: utils.ParseInt(values.Get("offset"), DefaultOffset),
	}
}
