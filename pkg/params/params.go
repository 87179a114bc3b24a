// Package params coerces raw query-string values into typed, nullable
// domain values. Absent optional values become nil and are forwarded to
// the database routines as NULL; malformed values are rejected before
// any database call is made.
package params

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidNumber    = errors.New("invalid number")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Accepted temporal layouts, tried in order.
var (
	dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}
	tsLayouts   = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}
)

// NullableInt parses an optional integer field. Empty input yields nil.
// Fractional input is accepted and truncated toward zero, matching how
// the salary and range fields were historically parsed.
func NullableInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, ErrInvalidNumber
	}
	n := int(f)
	return &n, nil
}

// NullableFloat parses an optional numeric field. Empty input yields nil.
func NullableFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, ErrInvalidNumber
	}
	return &f, nil
}

// NullableDate parses an optional calendar date, truncated to day
// precision. Empty input yields nil; unparsable input is rejected.
func NullableDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day, nil
		}
	}
	return nil, ErrInvalidDate
}

// Timestamp parses a required timestamp field.
func Timestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	for _, layout := range tsLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// IntOrDefault parses an optional integer field, substituting def when
// the value is absent. Used for the report pagination range.
func IntOrDefault(raw string, def int) (int, error) {
	v, err := NullableInt(raw)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}
