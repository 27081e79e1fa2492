package models

import "slices"

// categoryOrder fixes the display order of the taxonomy.
var categoryOrder = []Category{
	CategoryFood,
	CategoryPharmacy,
	CategoryToiletry,
	CategoryBills,
	CategoryExtra,
	CategoryTransport,
	CategoryElectronics,
	CategoryClothes,
}

// subcategories maps each category to its allowed subcategories. The last
// entry of every list is the catch-all option.
var subcategories = map[Category][]string{
	CategoryFood:        {"Fresh", "Grain", "Spice", "Snack", "Other"},
	CategoryPharmacy:    {"Medicine", "Other"},
	CategoryToiletry:    {"Soap", "Toothpaste", "Shampoo", "Other"},
	CategoryBills:       {"Electricity", "Water", "Internet", "Other"},
	CategoryExtra:       {"Gifts", "Repairs", "Miscellaneous"},
	CategoryTransport:   {"Auto", "Uber", "Bus", "Train", "Other"},
	CategoryElectronics: {"Charger", "Earphones", "Cable", "Battery", "Other"},
	CategoryClothes:     {"Shirt", "Pants", "Fabric", "Accessories", "Other"},
}

var paymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentUPI,
	PaymentCard,
	PaymentNetBanking,
	PaymentWallet,
	PaymentOther,
}

// WeightPresets are the weights offered without entering a custom value, in kg.
var WeightPresets = []float64{0.1, 0.25, 0.5, 1, 2}

// Categories returns every category in display order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// Subcategories returns the allowed subcategories of c, or nil for an
// unknown category.
func Subcategories(c Category) []string {
	return slices.Clone(subcategories[c])
}

// IsValidCategory reports whether c is part of the taxonomy.
func IsValidCategory(c Category) bool {
	_, ok := subcategories[c]
	return ok
}

// IsValidSubcategory reports whether sub is allowed under c.
func IsValidSubcategory(c Category, sub string) bool {
	return slices.Contains(subcategories[c], sub)
}

// PaymentMethods returns the accepted payment methods.
func PaymentMethods() []PaymentMethod {
	return slices.Clone(paymentMethods)
}

// IsValidPaymentMethod reports whether p is an accepted payment method.
func IsValidPaymentMethod(p PaymentMethod) bool {
	return slices.Contains(paymentMethods, p)
}

// IsPresetWeight reports whether w is one of WeightPresets.
func IsPresetWeight(w float64) bool {
	return slices.Contains(WeightPresets, w)
}
