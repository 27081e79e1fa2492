// Package add handles recording a new purchase
package add

import (
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/household-tracker/cmd/common"
	"fjacquet/household-tracker/cmd/root"
	"fjacquet/household-tracker/internal/container"
	"fjacquet/household-tracker/internal/currencyutils"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"

	"github.com/spf13/cobra"
)

// Options holds the add command flags
type Options struct {
	Name        string
	Category    string
	Subcategory string
	Price       string
	Weight      string
	Shop        string
	Payment     string
	Date        string
	Comments    string
	FromTrip    int
}

var opts = Options{}

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a purchase",
	Long: `Record a purchase with its category, price and weight. The date defaults
to today and the subcategory to the first one of the chosen category.

With --from-trip N the first purchase of trip N fills every flag that was
not given explicitly, so repeating a past purchase only needs the changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		o := opts
		if o.FromTrip != 0 {
			if err := prefill(c, &o, cmd.Flags().Changed); err != nil {
				return err
			}
		}
		if o.Name == "" || o.Price == "" {
			return fmt.Errorf("--name and --price are required unless --from-trip is given")
		}
		return run(cmd.Context(), c, cmd.OutOrStdout(), o)
	},
}

func init() {
	Cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Item name")
	Cmd.Flags().StringVarP(&opts.Category, "category", "c", string(models.CategoryFood), "Category")
	Cmd.Flags().StringVarP(&opts.Subcategory, "subcategory", "b", "", "Subcategory (default: first of the category)")
	Cmd.Flags().StringVarP(&opts.Price, "price", "p", "", "Price paid")
	Cmd.Flags().StringVarP(&opts.Weight, "weight", "w", "1", "Weight in kg")
	Cmd.Flags().StringVar(&opts.Shop, "shop", "", "Shop name")
	Cmd.Flags().StringVar(&opts.Payment, "payment", string(models.PaymentCash), "Payment method")
	Cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Purchase date YYYY-MM-DD (default: today)")
	Cmd.Flags().StringVar(&opts.Comments, "comments", "", "Free-text comments")
	Cmd.Flags().IntVar(&opts.FromTrip, "from-trip", 0, "Prefill unset flags from the first purchase of trip N")
}

func run(ctx context.Context, c *container.Container, out io.Writer, o Options) error {
	logger := c.GetLogger()

	draft, err := buildDraft(c, o)
	if err != nil {
		return err
	}

	rec, err := c.GetRecords().NewRecord(draft)
	if err != nil {
		logger.WithError(err).Warn("Purchase rejected")
		return err
	}

	if err := common.Persist(ctx, c, "add"); err != nil {
		return err
	}

	logger.Info("Purchase recorded",
		logging.F(logging.FieldRecordID, rec.ID),
		logging.F(logging.FieldCategory, string(rec.Category)))

	weightNote := ""
	if !models.IsPresetWeight(rec.Weight) {
		weightNote = " (custom)"
	}
	fmt.Fprintf(out, "Added %s: %s / %s, %s, %gkg%s on %s\n",
		rec.Name, rec.Category, rec.Subcategory, common.Money(c, rec.Price), rec.Weight, weightNote, rec.Date)
	return nil
}

func buildDraft(c *container.Container, o Options) (models.ExpenseRecord, error) {
	category := models.Category(strings.TrimSpace(o.Category))
	subcategory := strings.TrimSpace(o.Subcategory)
	if subcategory == "" {
		if subs := models.Subcategories(category); len(subs) > 0 {
			subcategory = subs[0]
		}
	}

	payment := models.PaymentMethod(strings.TrimSpace(o.Payment))
	if !models.IsValidPaymentMethod(payment) {
		return models.ExpenseRecord{}, fmt.Errorf("unknown payment method %q", o.Payment)
	}

	b := models.NewRecordBuilder().
		WithName(strings.TrimSpace(o.Name)).
		WithCategory(category, subcategory).
		WithPriceString(o.Price).
		WithWeightString(o.Weight).
		WithShop(strings.TrimSpace(o.Shop)).
		WithPayment(payment).
		WithComments(strings.TrimSpace(o.Comments))

	if strings.TrimSpace(o.Date) == "" {
		b = b.WithDateFromTime(c.Now())
	} else {
		b = b.WithDate(strings.TrimSpace(o.Date))
	}

	return b.Build()
}

// prefill copies the first record of the requested trip into every option
// the user left unset.
func prefill(c *container.Container, o *Options, changed func(string) bool) error {
	var tmpl models.ExpenseRecord
	found := false
	for _, trip := range c.GetGrouper().Group(c.GetRecords().All()) {
		if trip.Number == o.FromTrip {
			tmpl, found = trip.Template()
			break
		}
	}
	if !found {
		return fmt.Errorf("trip %d does not exist", o.FromTrip)
	}

	set := func(flag string, dst *string, value string) {
		if !changed(flag) {
			*dst = value
		}
	}
	set("name", &o.Name, tmpl.Name)
	if !changed("category") {
		o.Category = string(tmpl.Category)
		set("subcategory", &o.Subcategory, tmpl.Subcategory)
	}
	set("price", &o.Price, currencyutils.FormatExact(tmpl.Price))
	set("weight", &o.Weight, currencyutils.FormatExact(tmpl.Weight))
	set("shop", &o.Shop, tmpl.Shop)
	set("payment", &o.Payment, string(tmpl.Payment))
	set("date", &o.Date, tmpl.Date)
	set("comments", &o.Comments, tmpl.Comments)

	c.GetLogger().Debug("Prefilled purchase from trip", logging.F(logging.FieldTrip, o.FromTrip))
	return nil
}
