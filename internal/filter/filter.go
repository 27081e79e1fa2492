// Package filter selects the records that fall inside a relative time window.
package filter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"fjacquet/household-tracker/internal/dateutils"
	"fjacquet/household-tracker/internal/models"
)

// Window is a named relative time range.
type Window string

const (
	Day   Window = "day"
	Week  Window = "week"
	Month Window = "month"
	Year  Window = "year"
	// All disables filtering.
	All Window = "all"
)

// weekSpan is how many days back the Week window reaches, inclusive.
const weekSpan = 7

// Windows returns the selectable windows in display order.
func Windows() []Window {
	return []Window{Day, Week, Month, Year, All}
}

// ParseWindow converts a user supplied window name.
func ParseWindow(s string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Windows(), w) {
		return w, nil
	}
	return "", fmt.Errorf("unknown window %q (expected %s)", s, Names())
}

// Names lists the selectable windows for help and error text.
func Names() string {
	names := make([]string, 0, len(Windows()))
	for _, w := range Windows() {
		names = append(names, string(w))
	}
	return strings.Join(names, ", ")
}

// Apply returns the records of recs that match window relative to now, in
// their original order. The input slice is not modified.
//
// Only calendar days are compared. Week has an inclusive lower bound of
// seven days before now and no upper bound, so future-dated records pass it;
// Month and Year likewise only compare month and year. Records whose date
// does not parse match no window except All.
func Apply(recs []models.ExpenseRecord, window Window, now time.Time) []models.ExpenseRecord {
	out := make([]models.ExpenseRecord, 0, len(recs))
	match := matcher(window, now)
	for _, rec := range recs {
		if window == All {
			out = append(out, rec)
			continue
		}
		day, err := dateutils.ParseRecordDate(rec.Date)
		if err != nil {
			continue
		}
		if match(day) {
			out = append(out, rec)
		}
	}
	return out
}

func matcher(window Window, now time.Time) func(day time.Time) bool {
	today := dateutils.CalendarDay(now)
	switch window {
	case Day:
		return func(day time.Time) bool {
			return day.Equal(today)
		}
	case Week:
		weekAgo := dateutils.DaysBefore(now, weekSpan)
		return func(day time.Time) bool {
			return !day.Before(weekAgo)
		}
	case Month:
		return func(day time.Time) bool {
			return day.Month() == today.Month() && day.Year() == today.Year()
		}
	case Year:
		return func(day time.Time) bool {
			return day.Year() == today.Year()
		}
	default:
		return func(time.Time) bool { return true }
	}
}
