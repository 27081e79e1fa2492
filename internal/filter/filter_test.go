package filter

import (
	"testing"
	"time"

	"fjacquet/household-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dated(id int64, date string) models.ExpenseRecord {
	return models.ExpenseRecord{ID: id, Name: "item", Date: date, Category: models.CategoryFood}
}

func ids(recs []models.ExpenseRecord) []int64 {
	out := make([]int64, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestParseWindow(t *testing.T) {
	for _, name := range []string{"day", "Week", " MONTH ", "year", "all"} {
		_, err := ParseWindow(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseWindow("fortnight")
	assert.EqualError(t, err, `unknown window "fortnight" (expected day, week, month, year, all)`)
	assert.Len(t, Windows(), 5)
	assert.Equal(t, "day, week, month, year, all", Names())
}

func TestApply_MonthAcrossYearBoundary(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	recs := []models.ExpenseRecord{
		dated(1, "2023-12-31"),
		dated(2, "2024-01-01"),
		dated(3, "2023-12-01"),
		dated(4, "2024-01-15"),
		dated(5, "2023-01-20"),
	}

	assert.Equal(t, []int64{2, 4}, ids(Apply(recs, Month, now)))
}

func TestApply_Day(t *testing.T) {
	now := time.Date(2024, time.January, 15, 23, 59, 0, 0, time.UTC)
	recs := []models.ExpenseRecord{
		dated(1, "2024-01-14"),
		dated(2, "2024-01-15"),
		dated(3, "2024-01-16"),
		dated(4, "2024-01-15"),
	}

	assert.Equal(t, []int64{2, 4}, ids(Apply(recs, Day, now)))
}

func TestApply_WeekLowerBoundInclusiveNoUpperBound(t *testing.T) {
	now := time.Date(2024, time.March, 3, 8, 0, 0, 0, time.UTC)
	recs := []models.ExpenseRecord{
		dated(1, "2024-02-24"), // eight days back
		dated(2, "2024-02-25"), // exactly seven days back
		dated(3, "2024-03-03"),
		dated(4, "2024-03-20"), // future still passes
		dated(5, "2025-01-01"),
	}

	assert.Equal(t, []int64{2, 3, 4, 5}, ids(Apply(recs, Week, now)))
}

func TestApply_Year(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	recs := []models.ExpenseRecord{
		dated(1, "2023-12-31"),
		dated(2, "2024-01-01"),
		dated(3, "2024-12-31"),
		dated(4, "2025-01-01"),
	}

	assert.Equal(t, []int64{2, 3}, ids(Apply(recs, Year, now)))
}

func TestApply_FutureRecordsInMonth(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	recs := []models.ExpenseRecord{dated(1, "2024-01-30")}

	assert.Len(t, Apply(recs, Month, now), 1)
	assert.Len(t, Apply(recs, Year, now), 1)
	assert.Len(t, Apply(recs, Week, now), 1)
	assert.Empty(t, Apply(recs, Day, now))
}

func TestApply_UsesLocalCalendarDayOfNow(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, time.February, 1, 0, 15, 0, 0, ist) // still Jan 31 in UTC

	recs := []models.ExpenseRecord{dated(1, "2024-01-31"), dated(2, "2024-02-01")}
	assert.Equal(t, []int64{2}, ids(Apply(recs, Day, now)))
	assert.Equal(t, []int64{2}, ids(Apply(recs, Month, now)))
}

func TestApply_UnparseableDates(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	recs := []models.ExpenseRecord{dated(1, "not a date"), dated(2, "")}

	for _, w := range []Window{Day, Week, Month, Year} {
		assert.Empty(t, Apply(recs, w, now), string(w))
	}
	assert.Len(t, Apply(recs, All, now), 2)
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	recs := []models.ExpenseRecord{dated(1, "2024-01-15"), dated(2, "2020-01-01")}
	snapshot := append([]models.ExpenseRecord(nil), recs...)

	out := Apply(recs, Day, now)
	require.Len(t, out, 1)
	out[0].Name = "changed"

	assert.Equal(t, snapshot, recs)
}

func TestApply_Empty(t *testing.T) {
	out := Apply(nil, Month, time.Now())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
