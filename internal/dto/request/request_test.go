package request

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListBookingsQuery_Defaults(t *testing.T) {
	query, errs := ParseListBookingsQuery(url.Values{})

	require.Empty(t, errs)
	assert.Equal(t, DefaultLimit, query.Limit)
	assert.Equal(t, DefaultOffset, query.Offset)
	assert.Nil(t, query.Status)
	assert.Nil(t, query.Search)
	assert.Nil(t, query.StartDate)
	assert.Nil(t, query.EndDate)
}

func TestParseListBookingsQuery_BlankIsAbsent(t *testing.T) {
	query, errs := ParseListBookingsQuery(url.Values{
		"status":    {""},
		"search":    {"  "},
		"startDate": {""},
		"limit":     {""},
	})

	require.Empty(t, errs)
	assert.Nil(t, query.Status)
	assert.Nil(t, query.Search)
	assert.Nil(t, query.StartDate)
	assert.Equal(t, DefaultLimit, query.Limit)
}

func TestParseListBookingsQuery_UnparsableNumbersFallBack(t *testing.T) {
	query, errs := ParseListBookingsQuery(url.Values{"limit": {"ten"}, "offset": {"x"}})

	require.Empty(t, errs)
	assert.Equal(t, 20, query.Limit)
	assert.Equal(t, 0, query.Offset)
}

func TestParseListBookingsQuery_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		field  string
	}{
		{"limit zero", url.Values{"limit": {"0"}}, "Limit"},
		{"limit above max", url.Values{"limit": {"101"}}, "Limit"},
		{"negative offset", url.Values{"offset": {"-1"}}, "Offset"},
		{"bad start date", url.Values{"startDate": {"yesterday"}}, "startDate"},
		{"bad end date", url.Values{"endDate": {"2024-13-45"}}, "endDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, errs := ParseListBookingsQuery(tt.values)

			assert.Nil(t, query)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestParseListBookingsQuery_Filters(t *testing.T) {
	query, errs := ParseListBookingsQuery(url.Values{
		"status":    {"confirmed"},
		"search":    {"ABC"},
		"startDate": {"2024-01-01"},
		"endDate":   {"2024-01-31T23:59:59Z"},
		"limit":     {"100"},
		"offset":    {"40"},
	})

	require.Empty(t, errs)
	assert.Equal(t, "confirmed", *query.Status)
	assert.Equal(t, "ABC", *query.Search)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *query.StartDate)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), query.EndDate.UTC())
	assert.Equal(t, 100, query.Limit)
	assert.Equal(t, 40, query.Offset)
}

func TestParseTimeRange(t *testing.T) {
	assert.Equal(t, TimeRangeDay, ParseTimeRange(""))
	assert.Equal(t, TimeRangeDay, ParseTimeRange("decade"))
	assert.Equal(t, TimeRangeWeek, ParseTimeRange("week"))
	assert.Equal(t, TimeRangeMonth, ParseTimeRange("Month"))
	assert.Equal(t, TimeRangeYear, ParseTimeRange("year"))

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now.AddDate(0, 0, -30), TimeRangeMonth.Since(now))
	assert.Equal(t, 365*24*time.Hour, TimeRangeYear.Window())
}
