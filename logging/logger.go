// Package logging builds the process logger.
//
// Logs always go to stderr by default: stdout carries the MCP protocol
// stream and must not receive anything else.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configures New.
type Options struct {
	Level     string
	Format    string
	Writer    io.Writer
	Component string
}

// New returns a zerolog logger. Unknown levels fall back to info and
// unknown formats to JSON.
func New(opts Options) zerolog.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	if strings.EqualFold(strings.TrimSpace(opts.Format), FormatConsole) {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339, NoColor: true}
	}

	lg := zerolog.New(writer).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
	if c := strings.TrimSpace(opts.Component); c != "" {
		lg = lg.With().Str("component", c).Logger()
	}
	return lg
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "warning":
		return zerolog.WarnLevel
	case "":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
