// Package categories handles printing the category taxonomy
package categories

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/household-tracker/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories, subcategories and payment methods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout())
	},
}

func run(out io.Writer) error {
	for _, c := range models.Categories() {
		fmt.Fprintf(out, "%s: %s\n", c, strings.Join(models.Subcategories(c), ", "))
	}

	payments := make([]string, 0, len(models.PaymentMethods()))
	for _, p := range models.PaymentMethods() {
		payments = append(payments, string(p))
	}
	fmt.Fprintf(out, "\nPayment methods: %s\n", strings.Join(payments, ", "))

	weights := make([]string, 0, len(models.WeightPresets))
	for _, w := range models.WeightPresets {
		weights = append(weights, fmt.Sprintf("%gkg", w))
	}
	fmt.Fprintf(out, "Weight presets: %s\n", strings.Join(weights, ", "))
	return nil
}
