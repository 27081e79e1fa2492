package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_SharedSink(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldComponent, "store").WithError(errors.New("boom"))

	mock.Info("parent")
	child.Warn("child", F(FieldCount, 2))

	entries := mock.GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "parent", entries[0].Message)
	assert.Nil(t, entries[0].Error)

	assert.Equal(t, "WARN", entries[1].Level)
	assert.EqualError(t, entries[1].Error, "boom")
	assert.Equal(t, []Field{F(FieldComponent, "store"), F(FieldCount, 2)}, entries[1].Fields)
}

func TestMockLogger_Helpers(t *testing.T) {
	mock := NewMockLogger()
	mock.Debug("a")
	mock.Debug("b")
	mock.Error("c")
	mock.Fatalf("code %d", 7)

	assert.Len(t, mock.GetEntriesByLevel("DEBUG"), 2)
	assert.True(t, mock.HasEntry("ERROR", "c"))
	assert.True(t, mock.HasEntry("FATAL", "code 7"))
	assert.False(t, mock.HasEntry("INFO", "a"))

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLogger_ZeroValue(t *testing.T) {
	var mock MockLogger
	mock.Info("works")
	assert.True(t, mock.HasEntry("INFO", "works"))
}
