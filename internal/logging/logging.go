// Package logging configures the zerolog logger used for the audit trace.
// The checker is deliberately chatty: everything it finds, filters and
// compares is logged so CI log readers can follow the verdict.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var defaultLogger zerolog.Logger

func init() {
	defaultLogger = newLogger()
}

func newLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
	return zerolog.New(writer).
		Level(levelFromEnv()).
		With().
		Timestamp().
		Logger()
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Default returns the shared logger.
func Default() zerolog.Logger {
	return defaultLogger
}

// SetVerbose lowers the level to debug for --verbose runs.
func SetVerbose(verbose bool) {
	if verbose {
		defaultLogger = defaultLogger.Level(zerolog.DebugLevel)
	}
}
