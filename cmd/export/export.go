// Package export handles writing backups and reports to disk
package export

import (
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/household-tracker/cmd/root"
	"fjacquet/household-tracker/internal/container"
	exportfmt "fjacquet/household-tracker/internal/export"
	"fjacquet/household-tracker/internal/fileutils"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"
	"fjacquet/household-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export all purchases to a timestamped file",
	Long: `Export all purchases to household-tracker-<unix-ms>.<ext>. The json format
is a full backup that the import command restores; text is the printable
trip report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(root.GetContainer(), cmd.OutOrStdout(), format, outputDir)
	},
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", string(exportfmt.FormatJSON), "Export format (json, text, csv, yaml)")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: export.directory)")
}

// run writes the export and returns its path through out.
func run(c *container.Container, out io.Writer, fmtName, dir string) error {
	if err := validation.IsValidExportFormat(fmtName); err != nil {
		return err
	}
	f := exportfmt.Format(fmtName)

	if dir == "" {
		dir = c.GetConfig().Export.Directory
	}

	now := c.Now()
	data, err := c.GetExporter().Generate(c.GetRecords().All(), f, now)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, exportfmt.FileName(f, now))
	if err := fileutils.WriteFile(path, data, models.PermissionReportFile); err != nil {
		c.GetLogger().WithError(err).Error("Failed to write export")
		return err
	}

	c.GetLogger().Info("Export written",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldFormat, fmtName),
		logging.F(logging.FieldCount, c.GetRecords().Len()))
	fmt.Fprintln(out, path)
	return nil
}
