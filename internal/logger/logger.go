package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger writing structured JSON to
// stderr. It ensures that the logger is initialized only once.
func Init() {
	once.Do(func() {
		defaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	})
}

// Get returns the initialized default logger.
func Get() zerolog.Logger {
	Init()
	return defaultLogger
}

// Info logs an informational message with optional key/value fields.
func Info(msg string, fields map[string]any) {
	l := Get()
	event := l.Info()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Warn logs a warning message with optional key/value fields.
func Warn(msg string, fields map[string]any) {
	l := Get()
	event := l.Warn()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Error logs an error with optional key/value fields.
func Error(msg string, err error, fields map[string]any) {
	l := Get()
	event := l.Error().Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Debug logs a debug message with optional key/value fields.
func Debug(msg string, fields map[string]any) {
	l := Get()
	event := l.Debug()
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
