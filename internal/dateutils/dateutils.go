// Package dateutils provides the calendar-date operations shared by the
// filter, trip grouper and report formatter.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO   = "2006-01-02"
	DateLayoutShort = "Jan 2"
)

// ParseRecordDate parses a record date (YYYY-MM-DD) into midnight UTC of that
// calendar day. Surrounding whitespace is ignored.
func ParseRecordDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
	}
	return t, nil
}

// CalendarDay returns midnight UTC of t's calendar day in t's own location,
// so that it compares directly with ParseRecordDate results.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBefore returns the calendar day n days before t's calendar day.
func DaysBefore(t time.Time, n int) time.Time {
	return CalendarDay(t).AddDate(0, 0, -n)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// FormatShort renders a record date as "Jan 2". Dates that do not parse are
// returned unchanged.
func FormatShort(dateStr string) string {
	t, err := ParseRecordDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(DateLayoutShort)
}
