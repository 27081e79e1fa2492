// Package aggregate computes totals and per-category breakdowns over a set
// of expense records. Sums are left unrounded; rounding is a presentation
// concern.
package aggregate

import (
	"time"

	"fjacquet/household-tracker/internal/dateutils"
	"fjacquet/household-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Totals summarises a record set.
type Totals struct {
	TotalPrice  float64 `json:"total_price" yaml:"total_price"`
	TotalWeight float64 `json:"total_weight" yaml:"total_weight"`
	Count       int     `json:"count" yaml:"count"`
}

// CategoryTotal is the price and weight spent in one category.
type CategoryTotal struct {
	Category models.Category `json:"category" yaml:"category"`
	Price    float64         `json:"price" yaml:"price"`
	Weight   float64         `json:"weight" yaml:"weight"`
}

// Share is a category's percentage of a breakdown total.
type Share struct {
	Category models.Category
	Percent  decimal.Decimal
}

// ComputeTotals sums price and weight over recs.
func ComputeTotals(recs []models.ExpenseRecord) Totals {
	var t Totals
	for _, rec := range recs {
		t.TotalPrice += rec.Price
		t.TotalWeight += rec.Weight
	}
	t.Count = len(recs)
	return t
}

// ByCategory groups recs by their stored category and sums each group.
// Groups appear in the order their category is first seen.
func ByCategory(recs []models.ExpenseRecord) []CategoryTotal {
	index := make(map[models.Category]int)
	var out []CategoryTotal
	for _, rec := range recs {
		i, seen := index[rec.Category]
		if !seen {
			i = len(out)
			index[rec.Category] = i
			out = append(out, CategoryTotal{Category: rec.Category})
		}
		out[i].Price += rec.Price
		out[i].Weight += rec.Weight
	}
	if out == nil {
		out = []CategoryTotal{}
	}
	return out
}

// Today totals the records dated on now's calendar day. The date is matched
// as a string against the ISO form of the day.
func Today(recs []models.ExpenseRecord, now time.Time) Totals {
	today := dateutils.ToISODate(dateutils.CalendarDay(now))
	var matching []models.ExpenseRecord
	for _, rec := range recs {
		if rec.Date == today {
			matching = append(matching, rec)
		}
	}
	return ComputeTotals(matching)
}

// Shares converts the values picked from a breakdown into percentages of
// their sum, rounded to one decimal place. An all-zero breakdown yields zero
// shares.
func Shares(breakdown []CategoryTotal, value func(CategoryTotal) float64) []Share {
	total := decimal.Zero
	for _, ct := range breakdown {
		total = total.Add(decimal.NewFromFloat(value(ct)))
	}

	hundred := decimal.NewFromInt(100)
	out := make([]Share, 0, len(breakdown))
	for _, ct := range breakdown {
		pct := decimal.Zero
		if !total.IsZero() {
			pct = decimal.NewFromFloat(value(ct)).Mul(hundred).Div(total).Round(1)
		}
		out = append(out, Share{Category: ct.Category, Percent: pct})
	}
	return out
}

// ByPrice selects the price of a CategoryTotal.
func ByPrice(ct CategoryTotal) float64 { return ct.Price }

// ByWeight selects the weight of a CategoryTotal.
func ByWeight(ct CategoryTotal) float64 { return ct.Weight }
