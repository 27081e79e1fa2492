package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/household-tracker/internal/export"
	"fjacquet/household-tracker/internal/models"
)

// IsValidImportFile checks that path names an existing regular JSON file.
func IsValidImportFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}

	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return fmt.Errorf("import file must have a .json extension: %s", path)
	}

	return nil
}

// IsValidExportFormat checks if the given format is supported.
func IsValidExportFormat(format string) error {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		if string(f) == format {
			return nil
		}
		names = append(names, "'"+string(f)+"'")
	}
	return fmt.Errorf("unsupported export format: %s. Supported formats are %s", format, strings.Join(names, ", "))
}

// IsValidStorageBackend checks if the given persistence backend is supported.
func IsValidStorageBackend(backend string) error {
	switch backend {
	case models.StorageBackendJSON, models.StorageBackendSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported storage backend: %s. Supported backends are '%s', '%s'",
			backend, models.StorageBackendJSON, models.StorageBackendSQLite)
	}
}

// IsValidFilePermissions checks if the given file mode is valid for the data file.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 { // Check if 'others' have any permissions
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.String())
	}
	return nil
}
