package request

import (
	"net/url"
	"time"

	"flight-booking/pkg/utils"
)

// ListBookingsQuery carries the optional list filters. Blank values count as absent.
type ListBookingsQuery struct {
	Status    *string `json:"status,omitempty" validate:"omitempty,max=32"`
	Search    *string `json:"search,omitempty" validate:"omitempty,max=100"`
	StartDate *time.Time
	EndDate   *time.Time
	PaginationQuery
}

// ParseListBookingsQuery parses and validates query parameters, returning field errors
func ParseListBookingsQuery(values url.Values) (*ListBookingsQuery, map[string]string) {
	query := &ListBookingsQuery{
		Status:          utils.OptionalString(values.Get("status")),
		Search:          utils.OptionalString(values.Get("search")),
		PaginationQuery: ParsePagination(values),
	}

	errs := make(map[string]string)

	if raw := utils.OptionalString(values.Get("startDate")); raw != nil {
		t, err := utils.ParseISOTime(*raw)
		if err != nil {
			errs["startDate"] = "Must be an ISO date"
		} else {
			query.StartDate = &t
		}
	}

	if raw := utils.OptionalString(values.Get("endDate")); raw != nil {
		t, err := utils.ParseISOTime(*raw)
		if err != nil {
			errs["endDate"] = "Must be an ISO date"
		} else {
			query.EndDate = &t
		}
	}

	for field, msg := range utils.ValidateStruct(query) {
		errs[field] = msg
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return query, nil
}
