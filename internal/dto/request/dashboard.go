package request

import (
	"strings"
	"time"
)

type TimeRange string

const (
	TimeRangeDay   TimeRange = "day"
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
)

// ParseTimeRange maps a query value to one of the four presets; anything else is a day
func ParseTimeRange(value string) TimeRange {
	switch TimeRange(strings.ToLower(strings.TrimSpace(value))) {
	case TimeRangeWeek:
		return TimeRangeWeek
	case TimeRangeMonth:
		return TimeRangeMonth
	case TimeRangeYear:
		return TimeRangeYear
	default:
		return TimeRangeDay
	}
}

// Window is the look-back length of the preset
func (t TimeRange) Window() time.Duration {
	switch t {
	case TimeRangeWeek:
		return 7 * 24 * time.Hour
	case TimeRangeMonth:
		return 30 * 24 * time.Hour
	case TimeRangeYear:
		return 365 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Since returns the window start relative to now
func (t TimeRange) Since(now time.Time) time.Time {
	return now.Add(-t.Window())
}
