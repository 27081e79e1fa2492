// Package trips partitions records into shopping trips: all records sharing
// the same date value form one trip.
package trips

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/household-tracker/internal/dateutils"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"
)

// Trip is the set of records sharing one date value.
type Trip struct {
	Number  int                    // N for the most recent trip, 1 for the oldest
	Date    string                 // literal date value shared by every record
	Records []models.ExpenseRecord // insertion order
}

// Count returns the number of items bought on the trip.
func (t Trip) Count() int {
	return len(t.Records)
}

// TotalPrice sums the price of the trip's records.
func (t Trip) TotalPrice() float64 {
	var sum float64
	for _, rec := range t.Records {
		sum += rec.Price
	}
	return sum
}

// TotalWeight sums the weight of the trip's records.
func (t Trip) TotalWeight() float64 {
	var sum float64
	for _, rec := range t.Records {
		sum += rec.Weight
	}
	return sum
}

// Template returns the trip's first record stripped of its identity, ready
// to be used as the draft of a new entry.
func (t Trip) Template() (models.ExpenseRecord, bool) {
	if len(t.Records) == 0 {
		return models.ExpenseRecord{}, false
	}
	draft := t.Records[0]
	draft.ID = 0
	draft.Timestamp = time.Time{}
	return draft, true
}

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format(dateutils.DateLayoutISO),
		dr.End.Format(dateutils.DateLayoutISO))
}

// Grouper builds trips from a record collection.
type Grouper struct {
	logger logging.Logger
}

// NewGrouper creates a new Grouper instance
func NewGrouper(logger logging.Logger) *Grouper {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Grouper{logger: logger}
}

// Group partitions recs by their literal date value and returns the trips
// newest first, numbered N down to 1. Dates that do not parse are ordered
// after every valid date. An empty input yields an empty slice.
func (g *Grouper) Group(recs []models.ExpenseRecord) []Trip {
	byDate := make(map[string][]models.ExpenseRecord)
	var dates []string
	for _, rec := range recs {
		if _, exists := byDate[rec.Date]; !exists {
			dates = append(dates, rec.Date)
		}
		byDate[rec.Date] = append(byDate[rec.Date], rec)
	}

	g.sortDatesDescending(dates)

	trips := make([]Trip, len(dates))
	for i, date := range dates {
		trips[i] = Trip{
			Number:  len(dates) - i,
			Date:    date,
			Records: byDate[date],
		}
	}

	g.logger.Debug("Grouped records into trips",
		logging.F(logging.FieldCount, len(recs)),
		logging.F(logging.FieldTrips, len(trips)))

	return trips
}

// sortDatesDescending orders dates newest first, by calendar date.
func (g *Grouper) sortDatesDescending(dates []string) {
	parsed := make(map[string]time.Time, len(dates))
	invalid := 0
	for _, d := range dates {
		t, err := dateutils.ParseRecordDate(d)
		if err != nil {
			invalid++
			continue
		}
		parsed[d] = t
	}
	if invalid > 0 {
		g.logger.Warn("Trips with unparseable dates are listed last",
			logging.F(logging.FieldCount, invalid))
	}

	sort.SliceStable(dates, func(i, j int) bool {
		ti, okI := parsed[dates[i]]
		tj, okJ := parsed[dates[j]]
		switch {
		case okI && okJ:
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
			// Distinct strings for the same day, e.g. " 2024-01-01"
			return dates[i] > dates[j]
		case okI != okJ:
			return okI
		default:
			return dates[i] > dates[j]
		}
	})
}

// Span returns the oldest and newest valid dates covered by trips.
func Span(trips []Trip) DateRange {
	var dr DateRange
	for _, trip := range trips {
		t, err := dateutils.ParseRecordDate(trip.Date)
		if err != nil {
			continue
		}
		if dr.Start.IsZero() || t.Before(dr.Start) {
			dr.Start = t
		}
		if dr.End.IsZero() || t.After(dr.End) {
			dr.End = t
		}
	}
	return dr
}
