// Package trackererror defines the typed errors returned by the expense engine.
package trackererror

import (
	"errors"
	"fmt"
)

// ErrNotAnArray is matched by errors.Is for an ImportError of kind NotAnArray.
var ErrNotAnArray = errors.New("import payload is not an array")

// ValidationError represents a record that failed validation on append
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s='%s': %s", e.Field, e.Value, e.Reason)
}

// ImportErrorKind classifies why an import payload was rejected.
type ImportErrorKind string

const (
	NotAnArray      ImportErrorKind = "not_an_array"
	InvalidJSON     ImportErrorKind = "invalid_json"
	MalformedRecord ImportErrorKind = "malformed_record"
)

// ImportError represents a rejected bulk import. The store is left untouched
// whenever one is returned.
type ImportError struct {
	Kind  ImportErrorKind
	Index int // position of the offending element, -1 when not applicable
	Err   error
}

func (e *ImportError) Error() string {
	switch e.Kind {
	case NotAnArray:
		return ErrNotAnArray.Error()
	case MalformedRecord:
		return fmt.Sprintf("import failed: record %d is malformed: %v", e.Index, e.Err)
	default:
		return fmt.Sprintf("import failed: %v", e.Err)
	}
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Is reports NotAnArray imports as ErrNotAnArray.
func (e *ImportError) Is(target error) bool {
	return target == ErrNotAnArray && e.Kind == NotAnArray
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
