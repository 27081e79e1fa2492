package logging

// Standardized field names for structured logging.
const (
	FieldFile      = "file_path"
	FieldBackend   = "backend"
	FieldRecordID  = "record_id"
	FieldCategory  = "category"
	FieldWindow    = "window"
	FieldFormat    = "format"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldTrips     = "trips"
	FieldTrip      = "trip"
	FieldAttempt   = "attempt"
	FieldComponent = "component"
)
