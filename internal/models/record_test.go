package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"fjacquet/household-tracker/internal/trackererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() ExpenseRecord {
	return ExpenseRecord{
		ID:          1704100000000,
		Name:        "Apple",
		Category:    CategoryFood,
		Subcategory: "Fresh",
		Price:       100,
		Weight:      1,
		Shop:        "Market",
		Payment:     PaymentCash,
		Date:        "2024-01-01",
		Timestamp:   time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestExpenseRecord_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *ExpenseRecord)
		wantField string
	}{
		{"valid", func(r *ExpenseRecord) {}, ""},
		{"zero price allowed", func(r *ExpenseRecord) { r.Price = 0 }, ""},
		{"custom weight allowed", func(r *ExpenseRecord) { r.Weight = 3.7 }, ""},
		{"extra has no Other", func(r *ExpenseRecord) { r.Category, r.Subcategory = CategoryExtra, "Miscellaneous" }, ""},
		{"blank name", func(r *ExpenseRecord) { r.Name = "  " }, "name"},
		{"unknown category", func(r *ExpenseRecord) { r.Category = "Toys" }, "category"},
		{"subcategory from other category", func(r *ExpenseRecord) { r.Subcategory = "Electronics-only-value" }, "subcategory"},
		{"subcategory of electronics under food", func(r *ExpenseRecord) { r.Subcategory = "Cable" }, "subcategory"},
		{"unknown payment", func(r *ExpenseRecord) { r.Payment = "Bitcoin" }, "payment"},
		{"empty payment", func(r *ExpenseRecord) { r.Payment = "" }, "payment"},
		{"negative price", func(r *ExpenseRecord) { r.Price = -1 }, "price"},
		{"NaN price", func(r *ExpenseRecord) { r.Price = math.NaN() }, "price"},
		{"infinite price", func(r *ExpenseRecord) { r.Price = math.Inf(1) }, "price"},
		{"zero weight", func(r *ExpenseRecord) { r.Weight = 0 }, "weight"},
		{"NaN weight", func(r *ExpenseRecord) { r.Weight = math.NaN() }, "weight"},
		{"bad date", func(r *ExpenseRecord) { r.Date = "01/02/2024" }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := rec.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *trackererror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestExpenseRecord_JSONKeys(t *testing.T) {
	data, err := json.Marshal(validRecord())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"id", "name", "category", "subcategory", "price", "weight", "shop", "payment", "date", "timestamp", "comments"} {
		assert.Contains(t, raw, key)
	}
}

func TestTaxonomy(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, CategoryFood, cats[0])
	assert.Equal(t, CategoryClothes, cats[7])

	for _, c := range cats {
		subs := Subcategories(c)
		assert.NotEmpty(t, subs, "category %s has no subcategories", c)
		if c != CategoryExtra {
			assert.Equal(t, "Other", subs[len(subs)-1], "category %s should end with Other", c)
		}
	}

	assert.Nil(t, Subcategories("Toys"))

	// Returned slices are copies
	subs := Subcategories(CategoryFood)
	subs[0] = "mutated"
	assert.Equal(t, "Fresh", Subcategories(CategoryFood)[0])
}

func TestPaymentMethodsAndPresets(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(PaymentUPI))
	assert.False(t, IsValidPaymentMethod("Barter"))

	assert.True(t, IsPresetWeight(0.25))
	assert.True(t, IsPresetWeight(2))
	assert.False(t, IsPresetWeight(0.3))
}
