package trips

import (
	"bytes"
	"testing"

	"fjacquet/household-tracker/internal/config"
	"fjacquet/household-tracker/internal/container"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"
	"fjacquet/household-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedContainer(t *testing.T, recs []models.ExpenseRecord) *container.Container {
	t.Helper()
	cfg := &config.Config{
		Log:     config.LogConfig{Level: "info", Format: "text"},
		Storage: config.StorageConfig{Backend: "json", RetryAttempts: 1},
		Report:  config.ReportConfig{CurrencySymbol: "₹"},
		Export:  config.ExportConfig{Directory: "."},
	}
	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithPersistence(&store.MockPersistence{Records: recs}))
	require.NoError(t, err)
	require.NoError(t, c.Load(t.Context()))
	return c
}

func scenarioRecords() []models.ExpenseRecord {
	return []models.ExpenseRecord{
		{ID: 1, Name: "Apple", Category: models.CategoryFood, Subcategory: "Fresh", Date: "2024-01-01", Price: 100, Weight: 1},
		{ID: 2, Name: "Rice", Category: models.CategoryFood, Subcategory: "Grain", Date: "2024-01-01", Price: 50, Weight: 0.5},
		{ID: 3, Name: "Soap", Category: models.CategoryToiletry, Subcategory: "Soap", Date: "2024-01-02", Price: 30, Weight: 0.25},
	}
}

func TestTripsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "trips", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
	assert.Equal(t, "l", Cmd.Flags().Lookup("limit").Shorthand)
	assert.Equal(t, "false", Cmd.Flags().Lookup("details").DefValue)
}

func TestTripsCommand_List(t *testing.T) {
	c := loadedContainer(t, scenarioRecords())

	var out bytes.Buffer
	require.NoError(t, run(c, &out, 0, false))

	assert.Equal(t,
		"2 trips (2024-01-01_2024-01-02)\n"+
			"Trip 2 - Jan 2: 1 items, ₹30, 0.3kg\n"+
			"Trip 1 - Jan 1: 2 items, ₹150, 1.5kg\n",
		out.String())
}

func TestTripsCommand_LimitAndDetails(t *testing.T) {
	c := loadedContainer(t, scenarioRecords())

	var out bytes.Buffer
	require.NoError(t, run(c, &out, 1, true))

	assert.Equal(t,
		"2 trips (2024-01-01_2024-01-02)\n"+
			"Trip 2 - Jan 2: 1 items, ₹30, 0.3kg\n"+
			"  Soap (Toiletry / Soap) ₹30\n",
		out.String())
}

func TestTripsCommand_Empty(t *testing.T) {
	c := loadedContainer(t, nil)

	var out bytes.Buffer
	require.NoError(t, run(c, &out, 0, false))
	assert.Equal(t, "No trips recorded yet.\n", out.String())
}
