// Package datetime provides the calendar date helpers the day-count
// conventions are computed over.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/yearfrac/pkg/constants"
)

const (
	// DateLayout is the format expected in config files and is also the output
	// date format.
	DateLayout = constants.DateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// MustParseDate parses a YYYY-MM-DD date and panics on error.
func MustParseDate(dateStr string) time.Time {
	return MustParseTime(DateLayout, dateStr)
}

// ParseDate parses a YYYY-MM-DD date into a UTC midnight time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date, expected format %s", DateLayout)
	}
	t, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders a date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := ParseDate(firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := ParseDate(secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}
