// Package logging is the logging port of the tracker. Components depend on
// Logger; main wires a LogrusAdapter and tests a MockLogger.
package logging

// Logger is the structured logger every component receives.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger

	// Fatal and Fatalf exit the process after logging.
	Fatal(msg string, fields ...Field)
	Fatalf(msg string, args ...interface{})
}

// Field is one key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
