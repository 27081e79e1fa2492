package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.txt")

	require.NoError(t, WriteFile(path, []byte("hello"), 0644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "items.json")

	require.NoError(t, WriteFileAtomic(path, []byte("[1]"), 0600))
	require.NoError(t, WriteFileAtomic(path, []byte("[1,2]"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}
