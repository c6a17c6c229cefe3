package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger writing human-readable output to
// stderr. It ensures that the logger is initialized only once.
func Init() {
	once.Do(func() {
		defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	})
}

// SetLevel adjusts the global log level ("debug", "info", "warn", "error").
// Unrecognized names keep the info level.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Get returns the initialized default logger.
func Get() zerolog.Logger {
	Init()
	return defaultLogger
}

// Info logs an informational message using the default logger.
func Info(msg string) {
	l := Get()
	l.Info().Msg(msg)
}

// Infof logs a formatted informational message.
func Infof(format string, args ...any) {
	l := Get()
	l.Info().Msgf(format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(msg string) {
	l := Get()
	l.Warn().Msg(msg)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...any) {
	l := Get()
	l.Warn().Msgf(format, args...)
}

// Error logs an error message with an optional error value.
func Error(msg string, err error) {
	l := Get()
	l.Error().Err(err).Msg(msg)
}

// Debug logs a debug message using the default logger.
func Debug(msg string) {
	l := Get()
	l.Debug().Msg(msg)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	l := Get()
	l.Debug().Msgf(format, args...)
}
