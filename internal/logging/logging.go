// Package logging builds the zerolog logger used by the rose CLI.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/rose/pkg/types"
)

// New returns a logger writing to w at the given level and format. The
// "console" format is human-readable; "json" writes one JSON object per
// line. An empty format means console.
//
// The level parameter can be one of: trace, debug, info, warn, error, fatal,
// panic, disabled. An empty level means warn.
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	if level == "" {
		level = types.DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: %q", types.ErrInvalidLogLevel, level)
	}

	switch format {
	case "", types.LogFormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	case types.LogFormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", types.ErrInvalidLogFormat, format)
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}
