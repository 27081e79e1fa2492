// Package export renders the record collection for backup and review:
// canonical JSON, a plain-text trip report, CSV and YAML.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fjacquet/household-tracker/internal/currencyutils"
	"fjacquet/household-tracker/internal/dateutils"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"
	"fjacquet/household-tracker/internal/trips"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format identifies an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// DefaultCurrencySymbol prefixes every amount in the text report.
const DefaultCurrencySymbol = "₹"

const (
	reportTitle     = "HOUSEHOLD TRACKER"
	reportRuleWidth = 50
	fileNamePrefix  = "household-tracker"
)

var extensions = map[Format]string{
	FormatJSON: "json",
	FormatText: "txt",
	FormatCSV:  "csv",
	FormatYAML: "yaml",
}

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatText, FormatCSV, FormatYAML}
}

// Extension returns the file extension used for a format.
func (f Format) Extension() string {
	return extensions[f]
}

// FileName returns the timestamped file name for an export taken at now.
func FileName(format Format, now time.Time) string {
	return fmt.Sprintf("%s-%d.%s", fileNamePrefix, now.UnixMilli(), format.Extension())
}

// csvRow is the flat CSV shape of an expense record.
type csvRow struct {
	ID          int64   `csv:"id"`
	Date        string  `csv:"date"`
	Shop        string  `csv:"shop"`
	Category    string  `csv:"category"`
	Subcategory string  `csv:"subcategory"`
	Name        string  `csv:"name"`
	Price       float64 `csv:"price"`
	Weight      float64 `csv:"weight"`
	Payment     string  `csv:"payment"`
	Comments    string  `csv:"comments"`
	Timestamp   string  `csv:"timestamp"`
}

// Generator renders record collections in the supported formats.
type Generator struct {
	logger   logging.Logger
	grouper  *trips.Grouper
	currency string
}

// NewGenerator creates a Generator. An empty currency falls back to
// DefaultCurrencySymbol.
func NewGenerator(logger logging.Logger, grouper *trips.Grouper, currency string) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if grouper == nil {
		grouper = trips.NewGrouper(logger)
	}
	if currency == "" {
		currency = DefaultCurrencySymbol
	}
	return &Generator{
		logger:   logger.WithField(logging.FieldComponent, "ExportGenerator"),
		grouper:  grouper,
		currency: currency,
	}
}

// Generate renders recs in the given format. generated is the date printed
// in the text report header.
func (g *Generator) Generate(recs []models.ExpenseRecord, format Format, generated time.Time) ([]byte, error) {
	g.logger.Debug("Generating export",
		logging.F(logging.FieldFormat, string(format)),
		logging.F(logging.FieldCount, len(recs)))

	switch format {
	case FormatJSON:
		return g.ToJSON(recs)
	case FormatText:
		return []byte(g.ToReport(recs, generated)), nil
	case FormatCSV:
		return g.ToCSV(recs)
	case FormatYAML:
		return g.ToYAML(recs)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ToJSON encodes the full collection in store order with a two-space indent.
// The output is accepted unchanged by records.Store.ReplaceAll.
func (g *Generator) ToJSON(recs []models.ExpenseRecord) ([]byte, error) {
	data, err := MarshalRecords(recs)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON export")
		return nil, fmt.Errorf("failed to marshal JSON export: %w", err)
	}
	return data, nil
}

// MarshalRecords is the canonical JSON form of a collection, shared by the
// export and the JSON data file. Item names such as "M&M" are written as
// typed, without HTML escaping.
func MarshalRecords(recs []models.ExpenseRecord) ([]byte, error) {
	if recs == nil {
		recs = []models.ExpenseRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ToReport renders the human-readable trip report.
func (g *Generator) ToReport(recs []models.ExpenseRecord, generated time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s - %s\n", reportTitle, generated.Format("1/2/2006"))
	sb.WriteString(strings.Repeat("=", reportRuleWidth))
	sb.WriteString("\n\n")

	for _, trip := range g.grouper.Group(recs) {
		fmt.Fprintf(&sb, "TRIP %d - %s (%d items, %s, %s)\n",
			trip.Number,
			dateutils.FormatShort(trip.Date),
			trip.Count(),
			currencyutils.FormatWhole(trip.TotalPrice(), g.currency),
			currencyutils.FormatWeight(trip.TotalWeight()))
		sb.WriteString(strings.Repeat("-", reportRuleWidth))
		sb.WriteString("\n")

		for _, rec := range trip.Records {
			sb.WriteString(g.reportLine(rec))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (g *Generator) reportLine(rec models.ExpenseRecord) string {
	line := strings.Join([]string{
		rec.Shop,
		string(rec.Category),
		rec.Subcategory,
		rec.Name,
		g.currency + currencyutils.FormatExact(rec.Price),
		currencyutils.FormatExact(rec.Weight) + "kg",
		string(rec.Payment),
	}, " | ")
	if rec.HasComments() {
		line += " | " + rec.Comments
	}
	return line
}

// ToCSV encodes the collection as CSV with a header row.
func (g *Generator) ToCSV(recs []models.ExpenseRecord) ([]byte, error) {
	rows := make([]csvRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, csvRow{
			ID:          rec.ID,
			Date:        rec.Date,
			Shop:        rec.Shop,
			Category:    string(rec.Category),
			Subcategory: rec.Subcategory,
			Name:        rec.Name,
			Price:       rec.Price,
			Weight:      rec.Weight,
			Payment:     string(rec.Payment),
			Comments:    rec.Comments,
			Timestamp:   rec.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV export")
		return nil, fmt.Errorf("failed to marshal CSV export: %w", err)
	}
	return buf.Bytes(), nil
}

// ToYAML encodes the collection as a YAML sequence.
func (g *Generator) ToYAML(recs []models.ExpenseRecord) ([]byte, error) {
	if recs == nil {
		recs = []models.ExpenseRecord{}
	}
	data, err := yaml.Marshal(recs)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML export")
		return nil, fmt.Errorf("failed to marshal YAML export: %w", err)
	}
	return data, nil
}
