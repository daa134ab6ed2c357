// Package logging holds the package-wide structured logger used by the event
// and propbag packages. It defaults to a disabled logger; the root package's
// SetLogger installs a real one.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// Set installs l as the shared logger.
func Set(l zerolog.Logger) { logger = l }

// L returns the shared logger.
func L() *zerolog.Logger { return &logger }

// New builds a logger writing to w. format is "console" or "json"; level is
// any level zerolog can parse.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	switch format {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %s", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
