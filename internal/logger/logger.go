// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// Init sets up the global logger. Development gets a human console
// writer, production plain JSON to stdout.
func Init(production bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if production {
		Log = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	Log = zerolog.New(out).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
