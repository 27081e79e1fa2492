// Package importer handles restoring purchases from a JSON backup
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fjacquet/household-tracker/cmd/common"
	"fjacquet/household-tracker/cmd/root"
	"fjacquet/household-tracker/internal/container"
	"fjacquet/household-tracker/internal/fileutils"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/trackererror"
	"fjacquet/household-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var inputFile string

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Replace all purchases with a JSON backup",
	Long: `Replace all purchases with the contents of a JSON backup produced by
"export --format json". The current data is kept when the file is rejected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), root.GetContainer(), cmd.OutOrStdout(), inputFile)
	},
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "JSON backup file")
	_ = Cmd.MarkFlagRequired("input")
}

func run(ctx context.Context, c *container.Container, out io.Writer, path string) error {
	logger := c.GetLogger().WithField(logging.FieldFile, path)

	if err := validation.IsValidImportFile(path); err != nil {
		return err
	}

	data, err := fileutils.ReadFile(path)
	if err != nil {
		return err
	}

	if err := c.GetRecords().ReplaceAll(data); err != nil {
		var importErr *trackererror.ImportError
		if errors.As(err, &importErr) {
			logger.WithError(err).Warn("Backup rejected")
		}
		return fmt.Errorf("import of %s failed: %w", path, err)
	}

	if err := common.Persist(ctx, c, "import"); err != nil {
		return err
	}

	logger.Info("Backup imported", logging.F(logging.FieldCount, c.GetRecords().Len()))
	fmt.Fprintf(out, "Imported %d purchases from %s\n", c.GetRecords().Len(), path)
	return nil
}
