package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter is the Logger used outside tests.
type LogrusAdapter struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewLogrusAdapter builds a logrus-backed Logger. An unknown level falls back
// to info; any format other than "json" gives timestamped text.
func NewLogrusAdapter(level, format string) Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return NewLogrusAdapterFromLogger(logger)
}

// NewLogrusAdapterFromLogger wraps an already configured logrus.Logger.
func NewLogrusAdapterFromLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.New()
	}
	return &LogrusAdapter{logger: logger, entry: logrus.NewEntry(logger)}
}

// NewDiscardLogger is the fallback for components built without a logger.
func NewDiscardLogger() Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewLogrusAdapterFromLogger(logger)
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) { l.with(fields).Debug(msg) }
func (l *LogrusAdapter) Info(msg string, fields ...Field)  { l.with(fields).Info(msg) }
func (l *LogrusAdapter) Warn(msg string, fields ...Field)  { l.with(fields).Warn(msg) }
func (l *LogrusAdapter) Error(msg string, fields ...Field) { l.with(fields).Error(msg) }
func (l *LogrusAdapter) Fatal(msg string, fields ...Field) { l.with(fields).Fatal(msg) }

func (l *LogrusAdapter) Fatalf(msg string, args ...interface{}) {
	l.entry.Fatalf(msg, args...)
}

func (l *LogrusAdapter) WithError(err error) Logger {
	return l.derive(l.entry.WithError(err))
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return l.derive(l.entry.WithField(key, value))
}

func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return l.derive(l.with(fields))
}

func (l *LogrusAdapter) derive(entry *logrus.Entry) *LogrusAdapter {
	return &LogrusAdapter{logger: l.logger, entry: entry}
}

func (l *LogrusAdapter) with(fields []Field) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	converted := make(logrus.Fields, len(fields))
	for _, f := range fields {
		converted[f.Key] = f.Value
	}
	return l.entry.WithFields(converted)
}
