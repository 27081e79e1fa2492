// Package trips handles listing shopping trips
package trips

import (
	"fmt"
	"io"

	"fjacquet/household-tracker/cmd/common"
	"fjacquet/household-tracker/cmd/root"
	"fjacquet/household-tracker/internal/container"
	"fjacquet/household-tracker/internal/dateutils"
	tripgroup "fjacquet/household-tracker/internal/trips"

	"github.com/spf13/cobra"
)

var (
	limit   int
	details bool
)

// Cmd represents the trips command
var Cmd = &cobra.Command{
	Use:   "trips",
	Short: "List shopping trips, newest first",
	Long: `List shopping trips, newest first. A trip is every purchase sharing the
same date; trips are numbered from 1 (oldest) to N (newest).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(root.GetContainer(), cmd.OutOrStdout(), limit, details)
	},
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show at most this many trips (0: all)")
	Cmd.Flags().BoolVar(&details, "details", false, "List the items of every trip")
}

func run(c *container.Container, out io.Writer, max int, withItems bool) error {
	trips := c.GetGrouper().Group(c.GetRecords().All())
	if len(trips) == 0 {
		fmt.Fprintln(out, "No trips recorded yet.")
		return nil
	}

	if span := tripgroup.Span(trips).String(); span != "" {
		fmt.Fprintf(out, "%d trips (%s)\n", len(trips), span)
	} else {
		fmt.Fprintf(out, "%d trips\n", len(trips))
	}

	if max > 0 && max < len(trips) {
		trips = trips[:max]
	}

	for _, trip := range trips {
		fmt.Fprintf(out, "Trip %d - %s: %d items, %s, %s\n",
			trip.Number,
			dateutils.FormatShort(trip.Date),
			trip.Count(),
			common.Money(c, trip.TotalPrice()),
			common.Kilograms(trip.TotalWeight()))

		if !withItems {
			continue
		}
		for _, rec := range trip.Records {
			fmt.Fprintf(out, "  %s (%s / %s) %s\n", rec.Name, rec.Category, rec.Subcategory, common.Money(c, rec.Price))
		}
	}
	return nil
}
