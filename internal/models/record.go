package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"fjacquet/household-tracker/internal/trackererror"
)

// ExpenseRecord is a single purchase. Records are never mutated after
// creation; the store only ever appends or replaces them wholesale.
type ExpenseRecord struct {
	ID          int64         `json:"id" yaml:"id"`
	Comments    string        `json:"comments" yaml:"comments"`
	Price       float64       `json:"price" yaml:"price"`
	Payment     PaymentMethod `json:"payment" yaml:"payment"`
	Weight      float64       `json:"weight" yaml:"weight"`
	Shop        string        `json:"shop" yaml:"shop"`
	Category    Category      `json:"category" yaml:"category"`
	Subcategory string        `json:"subcategory" yaml:"subcategory"`
	Date        string        `json:"date" yaml:"date"`
	Name        string        `json:"name" yaml:"name"`
	Timestamp   time.Time     `json:"timestamp" yaml:"timestamp"`
}

// Validate checks the record at the store boundary: a non-empty name, a
// category/subcategory pair from the taxonomy, a known payment method, a finite
// non-negative price, a finite positive weight and a YYYY-MM-DD date.
func (r ExpenseRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &trackererror.ValidationError{Field: "name", Value: r.Name, Reason: "must not be empty"}
	}
	if !IsValidCategory(r.Category) {
		return &trackererror.ValidationError{Field: "category", Value: string(r.Category), Reason: "unknown category"}
	}
	if !IsValidSubcategory(r.Category, r.Subcategory) {
		return &trackererror.ValidationError{
			Field:  "subcategory",
			Value:  r.Subcategory,
			Reason: "not allowed for category " + string(r.Category),
		}
	}
	if !IsValidPaymentMethod(r.Payment) {
		return &trackererror.ValidationError{Field: "payment", Value: string(r.Payment), Reason: "unknown payment method"}
	}
	if math.IsNaN(r.Price) || math.IsInf(r.Price, 0) || r.Price < 0 {
		return &trackererror.ValidationError{Field: "price", Value: formatFloat(r.Price), Reason: "must be a finite non-negative number"}
	}
	if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) || r.Weight <= 0 {
		return &trackererror.ValidationError{Field: "weight", Value: formatFloat(r.Weight), Reason: "must be a finite positive number"}
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return &trackererror.ValidationError{Field: "date", Value: r.Date, Reason: "must be a YYYY-MM-DD calendar date"}
	}
	return nil
}

// HasComments reports whether the record carries a non-empty comment.
func (r ExpenseRecord) HasComments() bool {
	return r.Comments != ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
