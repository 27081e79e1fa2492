// Package currencyutils parses user-entered amounts and formats money and
// weights for display.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`(?i)CHF|INR|Rs\.?|[€$£¥₹\s]`)

// ParseAmount parses a user-entered amount into a decimal value.
// It handles formats like "1,234.56", "1.234,56", "1234,56", "1'234.5" and
// amounts carrying a currency symbol such as "₹120".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, errors.New("empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts the supported amount formats to one that
// decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")

	// Apostrophes are always thousands separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	lastComma := strings.LastIndex(amountStr, ",")
	lastDot := strings.LastIndex(amountStr, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastDot < lastComma {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// English format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	case lastComma >= 0:
		// A single comma followed by at most two digits is a decimal separator
		if strings.Count(amountStr, ",") == 1 && len(amountStr)-lastComma-1 <= 2 {
			amountStr = strings.Replace(amountStr, ",", ".", 1)
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// FormatWhole formats an amount rounded to whole units behind the symbol,
// e.g. "₹150".
func FormatWhole(amount float64, symbol string) string {
	return symbol + decimal.NewFromFloat(amount).StringFixed(0)
}

// FormatExact formats an amount in its shortest exact decimal form, so 45
// prints as "45" and 0.25 as "0.25".
func FormatExact(amount float64) string {
	return decimal.NewFromFloat(amount).String()
}

// FormatWeight formats a weight in kilograms with one decimal, e.g. "1.5kg".
func FormatWeight(kg float64) string {
	return decimal.NewFromFloat(kg).StringFixed(1) + "kg"
}
