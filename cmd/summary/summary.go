// Package summary handles the spending summary command
package summary

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fjacquet/household-tracker/cmd/common"
	"fjacquet/household-tracker/cmd/root"
	"fjacquet/household-tracker/internal/aggregate"
	"fjacquet/household-tracker/internal/container"
	"fjacquet/household-tracker/internal/filter"
	"fjacquet/household-tracker/internal/logging"

	"github.com/spf13/cobra"
)

var (
	window string
	today  string
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize spending for a time window",
	Long: `Summarize spending for a time window: totals, a per-category breakdown
with price and weight shares, and today's totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		now, err := common.ResolveNow(c, today)
		if err != nil {
			return err
		}
		w, err := filter.ParseWindow(window)
		if err != nil {
			return err
		}
		return run(c, cmd.OutOrStdout(), w, now)
	},
}

func init() {
	Cmd.Flags().StringVarP(&window, "window", "w", string(filter.Day), "Time window ("+filter.Names()+")")
	Cmd.Flags().StringVarP(&today, "today", "t", "", "Reference date YYYY-MM-DD (default: now)")
}

func run(c *container.Container, out io.Writer, w filter.Window, now time.Time) error {
	all := c.GetRecords().All()
	selected := filter.Apply(all, w, now)
	totals := aggregate.ComputeTotals(selected)
	breakdown := aggregate.ByCategory(selected)

	c.GetLogger().Debug("Computed summary",
		logging.F(logging.FieldWindow, string(w)),
		logging.F(logging.FieldCount, totals.Count))

	fmt.Fprintf(out, "Window: %s (as of %s)\n", w, now.Format("2006-01-02"))
	common.PrintTotals(out, c, "Total", totals)

	if len(breakdown) > 0 {
		fmt.Fprintln(out)
		priceShares := aggregate.Shares(breakdown, aggregate.ByPrice)
		weightShares := aggregate.Shares(breakdown, aggregate.ByWeight)

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tPRICE\tSHARE\tWEIGHT\tSHARE")
		for i, ct := range breakdown {
			fmt.Fprintf(tw, "%s\t%s\t%s%%\t%s\t%s%%\n",
				ct.Category,
				common.Money(c, ct.Price),
				priceShares[i].Percent.StringFixed(1),
				common.Kilograms(ct.Weight),
				weightShares[i].Percent.StringFixed(1))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	fmt.Fprintln(out)
	common.PrintTotals(out, c, "Today", aggregate.Today(all, now))
	return nil
}
