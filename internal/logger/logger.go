// Package logger constructs the zerolog logger used by the vault CLI.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr. Results go to stdout
// via fmt so they stay pipeable; the logger carries progress and errors.
func New() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).With().Timestamp().Logger()
}
