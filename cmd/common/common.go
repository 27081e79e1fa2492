// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/household-tracker/internal/aggregate"
	"fjacquet/household-tracker/internal/container"
	"fjacquet/household-tracker/internal/currencyutils"
	"fjacquet/household-tracker/internal/dateutils"
	"fjacquet/household-tracker/internal/logging"
)

// ResolveNow returns the reference instant for a command: the given
// YYYY-MM-DD day at local noon when set, otherwise the container clock.
func ResolveNow(c *container.Container, day string) (time.Time, error) {
	if strings.TrimSpace(day) == "" {
		return c.Now(), nil
	}
	d, err := dateutils.ParseRecordDate(day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference date %q: %w", day, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local), nil
}

// Persist saves the collection and logs the outcome.
func Persist(ctx context.Context, c *container.Container, operation string) error {
	logger := c.GetLogger().WithField(logging.FieldOperation, operation)
	if err := c.Save(ctx); err != nil {
		logger.WithError(err).Error("Failed to persist records")
		return err
	}
	logger.Debug("Persisted records", logging.F(logging.FieldCount, c.GetRecords().Len()))
	return nil
}

// Money formats an amount with the configured currency symbol and no
// decimals, the way totals are shown.
func Money(c *container.Container, amount float64) string {
	return currencyutils.FormatWhole(amount, c.GetConfig().Report.CurrencySymbol)
}

// Kilograms formats a weight with one decimal.
func Kilograms(weight float64) string {
	return currencyutils.FormatWeight(weight)
}

// PrintTotals writes a one-line totals summary.
func PrintTotals(w io.Writer, c *container.Container, label string, t aggregate.Totals) {
	fmt.Fprintf(w, "%s: %s, %s, %d items\n", label, Money(c, t.TotalPrice), Kilograms(t.TotalWeight), t.Count)
}
