package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseInt converts string to int with default value.
// Values that fail to parse fall back to the default; range checks belong to validation.
func ParseInt(value string, defaultValue int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// OptionalString returns nil for an absent or blank query value
func OptionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// ParseISOTime accepts RFC3339 timestamps and plain YYYY-MM-DD dates (midnight UTC)
func ParseISOTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}
