package records

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/models"
	"fjacquet/household-tracker/internal/trackererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id int64, name string, date string, price, weight float64) models.ExpenseRecord {
	return models.ExpenseRecord{
		ID:          id,
		Name:        name,
		Category:    models.CategoryFood,
		Subcategory: "Fresh",
		Price:       price,
		Weight:      weight,
		Shop:        "Market",
		Payment:     models.PaymentCash,
		Date:        date,
		Timestamp:   time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC),
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStore_AppendAndAll(t *testing.T) {
	store := NewStore(logging.NewMockLogger())

	require.NoError(t, store.Append(record(1, "Apple", "2024-01-01", 100, 1)))
	require.NoError(t, store.Append(record(2, "Banana", "2024-01-02", 50, 0.5)))

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Apple", all[0].Name)
	assert.Equal(t, "Banana", all[1].Name)
	assert.Equal(t, 2, store.Len())

	// All hands out a copy
	all[0].Name = "mutated"
	assert.Equal(t, "Apple", store.All()[0].Name)
}

func TestStore_AllEmpty(t *testing.T) {
	store := NewStore(nil)
	all := store.All()
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestStore_AppendInvalidSubcategory(t *testing.T) {
	store := NewStore(logging.NewMockLogger())
	require.NoError(t, store.Append(record(1, "Apple", "2024-01-01", 100, 1)))
	before := store.All()

	bad := record(2, "Thing", "2024-01-01", 10, 1)
	bad.Subcategory = "Electronics-only-value"

	err := store.Append(bad)
	var ve *trackererror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "subcategory", ve.Field)
	assert.Equal(t, before, store.All())
}

func TestStore_AppendRejectsBadNumbers(t *testing.T) {
	store := NewStore(nil)

	negative := record(1, "Apple", "2024-01-01", -5, 1)
	assert.True(t, trackererror.IsValidation(store.Append(negative)))

	zeroWeight := record(2, "Apple", "2024-01-01", 5, 0)
	assert.True(t, trackererror.IsValidation(store.Append(zeroWeight)))

	bitcoin := record(3, "Apple", "2024-01-01", 5, 1)
	bitcoin.Payment = "Bitcoin"
	err := store.Append(bitcoin)
	var ve *trackererror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "payment", ve.Field)

	assert.Equal(t, 0, store.Len())
}

func TestStore_AppendDuplicateID(t *testing.T) {
	store := NewStore(nil)
	require.NoError(t, store.Append(record(7, "Apple", "2024-01-01", 1, 1)))

	err := store.Append(record(7, "Pear", "2024-01-01", 1, 1))
	var ve *trackererror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "id", ve.Field)
	assert.Equal(t, 1, store.Len())
}

func TestStore_NewRecord(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)
	store := NewStore(nil, WithClock(fixedClock(now)))

	draft := record(0, "Apple", "2024-01-15", 10, 1)
	draft.Timestamp = time.Time{}

	first, err := store.NewRecord(draft)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), first.ID)
	assert.True(t, now.Equal(first.Timestamp))

	// Same millisecond: the ID is bumped instead of colliding
	second, err := store.NewRecord(draft)
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)

	third, err := store.NewRecord(draft)
	require.NoError(t, err)
	assert.Equal(t, first.ID+2, third.ID)
	assert.Equal(t, 3, store.Len())
}

func TestStore_NewRecordAfterImportKeepsIDsMonotonic(t *testing.T) {
	now := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)
	store := NewStore(nil, WithClock(fixedClock(now)))

	future := record(now.UnixMilli()+1000, "Apple", "2024-01-15", 10, 1)
	store.Replace([]models.ExpenseRecord{future})

	rec, err := store.NewRecord(record(0, "Pear", "2024-01-15", 5, 1))
	require.NoError(t, err)
	assert.Equal(t, future.ID+1, rec.ID)
}

func TestStore_NewRecordInvalid(t *testing.T) {
	store := NewStore(nil)
	draft := record(0, "", "2024-01-15", 10, 1)

	_, err := store.NewRecord(draft)
	assert.True(t, trackererror.IsValidation(err))
	assert.Equal(t, 0, store.Len())
}

func TestStore_ReplaceAll(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		kind     trackererror.ImportErrorKind
		wantErr  bool
		wantSize int
	}{
		{name: "string payload", payload: `"not an array"`, kind: trackererror.NotAnArray, wantErr: true},
		{name: "object payload", payload: `{"id":1}`, kind: trackererror.NotAnArray, wantErr: true},
		{name: "null payload", payload: `null`, kind: trackererror.NotAnArray, wantErr: true},
		{name: "number payload", payload: `42`, kind: trackererror.NotAnArray, wantErr: true},
		{name: "broken json", payload: `[{"id":1`, kind: trackererror.InvalidJSON, wantErr: true},
		{name: "empty payload", payload: ``, kind: trackererror.InvalidJSON, wantErr: true},
		{name: "wrong field type", payload: `[{"id":1,"price":"cheap"}]`, kind: trackererror.MalformedRecord, wantErr: true},
		{name: "quoted price in second element", payload: `[{"id":1,"name":"Rice"},{"id":2,"price":"100"}]`, kind: trackererror.MalformedRecord, wantErr: true},
		{name: "empty array", payload: `[]`, wantSize: 0},
		{name: "records outside the taxonomy are accepted", payload: `[{"id":1,"name":"x","category":"Toys","subcategory":"Lego","price":-3,"weight":0,"date":"garbage"}]`, wantSize: 1},
		{name: "partial record", payload: ` [ {"id": 5, "name": "Milk"} ] `, wantSize: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(logging.NewMockLogger())
			require.NoError(t, store.Append(record(99, "Existing", "2024-01-01", 1, 1)))
			before := store.All()

			err := store.ReplaceAll([]byte(tt.payload))
			if tt.wantErr {
				var ie *trackererror.ImportError
				require.ErrorAs(t, err, &ie)
				assert.Equal(t, tt.kind, ie.Kind)
				assert.Equal(t, before, store.All(), "store must be unchanged on failure")
				return
			}
			require.NoError(t, err)
			assert.Len(t, store.All(), tt.wantSize)
		})
	}
}

func TestStore_ReplaceAllNotAnArraySentinel(t *testing.T) {
	store := NewStore(nil)
	err := store.ReplaceAll([]byte(`"not an array"`))
	assert.True(t, errors.Is(err, trackererror.ErrNotAnArray))
}

func TestStore_JSONRoundTrip(t *testing.T) {
	store := NewStore(nil)
	original := []models.ExpenseRecord{
		record(1, "Apple", "2024-01-01", 100, 1),
		record(2, "Banana", "2024-01-01", 50.75, 0.25),
		record(3, "Soap", "2024-01-02", 30, 0.1),
	}
	original[1].Comments = "ripe"
	for _, rec := range original {
		require.NoError(t, store.Append(rec))
	}

	payload, err := json.MarshalIndent(store.All(), "", "  ")
	require.NoError(t, err)

	restored := NewStore(nil)
	require.NoError(t, restored.ReplaceAll(payload))
	assert.Equal(t, original, restored.All())
}

func TestStore_JSONRoundTripLocalTimestamp(t *testing.T) {
	store := NewStore(nil)
	rec := record(1, "Apple", "2024-01-01", 100, 1)
	rec.Timestamp = time.Now()
	require.NoError(t, store.Append(rec))

	original := store.All()
	assert.Equal(t, time.UTC, original[0].Timestamp.Location())

	payload, err := json.MarshalIndent(original, "", "  ")
	require.NoError(t, err)

	restored := NewStore(nil)
	require.NoError(t, restored.ReplaceAll(payload))
	assert.Equal(t, original, restored.All())
}

func TestStore_ReplaceLogsDuplicates(t *testing.T) {
	mock := logging.NewMockLogger()
	store := NewStore(mock)

	store.Replace([]models.ExpenseRecord{
		record(1, "Apple", "2024-01-01", 1, 1),
		record(1, "Apple again", "2024-01-01", 1, 1),
	})

	assert.Equal(t, 2, store.Len())
	assert.True(t, mock.HasEntry("WARN", "Replaced collection contains duplicate record IDs"))
}
