package models

import (
	"errors"
	"fmt"
	"time"

	"fjacquet/household-tracker/internal/currencyutils"
)

// RecordBuilder provides a fluent API for constructing expense record drafts.
// The ID and Timestamp are left for the store to stamp.
type RecordBuilder struct {
	rec ExpenseRecord
	err error
}

// NewRecordBuilder creates a new RecordBuilder with default values
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		rec: ExpenseRecord{
			Category:    CategoryFood,
			Subcategory: subcategories[CategoryFood][0],
			Payment:     PaymentCash,
			Weight:      WeightPresets[3],
		},
	}
}

// WithName sets the item name
func (b *RecordBuilder) WithName(name string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Name = name
	return b
}

// WithCategory sets the category and subcategory together
func (b *RecordBuilder) WithCategory(category Category, subcategory string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Category = category
	b.rec.Subcategory = subcategory
	return b
}

// WithPrice sets the price
func (b *RecordBuilder) WithPrice(price float64) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Price = price
	return b
}

// WithPriceString parses and sets the price. Currency symbols, thousands
// separators and comma decimals are accepted.
func (b *RecordBuilder) WithPriceString(price string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	f, err := parseAmount(price)
	if err != nil {
		b.err = fmt.Errorf("invalid price: %w", err)
		return b
	}
	b.rec.Price = f
	return b
}

// WithWeight sets the weight in kilograms
func (b *RecordBuilder) WithWeight(weight float64) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Weight = weight
	return b
}

// WithWeightString sets the weight from a preset value or a custom amount
func (b *RecordBuilder) WithWeightString(weight string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	f, err := parseAmount(weight)
	if err != nil {
		b.err = fmt.Errorf("invalid weight: %w", err)
		return b
	}
	b.rec.Weight = f
	return b
}

// WithShop sets the shop
func (b *RecordBuilder) WithShop(shop string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Shop = shop
	return b
}

// WithPayment sets the payment method
func (b *RecordBuilder) WithPayment(payment PaymentMethod) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Payment = payment
	return b
}

// WithDate sets the purchase date from a string in YYYY-MM-DD format
func (b *RecordBuilder) WithDate(dateStr string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	if dateStr == "" {
		b.err = errors.New("date cannot be empty")
		return b
	}
	b.rec.Date = dateStr
	return b
}

// WithDateFromTime sets the purchase date from the calendar day of t
func (b *RecordBuilder) WithDateFromTime(t time.Time) *RecordBuilder {
	if b.err != nil {
		return b
	}
	if t.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.rec.Date = t.Format(DateLayout)
	return b
}

// WithComments sets the free-text comments
func (b *RecordBuilder) WithComments(comments string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Comments = comments
	return b
}

// Build returns the draft record or the first error encountered
func (b *RecordBuilder) Build() (ExpenseRecord, error) {
	if b.err != nil {
		return ExpenseRecord{}, b.err
	}
	return b.rec, nil
}

func parseAmount(s string) (float64, error) {
	d, err := currencyutils.ParseAmount(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
