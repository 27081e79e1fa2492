// Package suggest handles item name autocomplete
package suggest

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/household-tracker/cmd/root"
	"fjacquet/household-tracker/internal/autocomplete"
	"fjacquet/household-tracker/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest <partial>",
	Short: "Suggest previously used item names",
	Long: `Suggest up to five previously used item names containing the partial
text, ignoring case. At least two characters are needed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(root.GetContainer(), cmd.OutOrStdout(), strings.Join(args, " "))
	},
}

func run(c *container.Container, out io.Writer, partial string) error {
	for _, name := range autocomplete.Suggest(c.GetRecords().All(), partial) {
		fmt.Fprintln(out, name)
	}
	return nil
}
