// Package isotime parses and formats the ISO-8601 strings used at the API
// boundary for announcement validity windows.
//
// Design principles:
// - All storage and comparison use time.Time in UTC
// - Strings are only accepted/produced at the boundary
// - Comparing raw strings is prohibited: mixed-precision ISO-8601 forms do not
//   sort chronologically, so everything is parsed before any ordering check
package isotime

import (
	"fmt"
	"time"
)

// Accepted input layouts, most specific first. Date-only values parse as
// midnight UTC.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse parses an ISO-8601 timestamp or date string into a UTC time.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

// ParseOptional parses an optional ISO-8601 string. A nil or empty input
// yields a nil time.
func ParseOptional(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Format renders a time as RFC3339 in UTC.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatOptional renders an optional time as RFC3339 in UTC, or nil.
func FormatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}
