// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a JSON logger on stdout, or a console logger when env is
// "development". Unknown levels fall back to info.
func New(env, level string) zerolog.Logger {
	return NewWithWriter(os.Stdout, env, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(out io.Writer, env, level string) zerolog.Logger {
	if strings.EqualFold(env, "development") {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("service", "notegen").
		Logger()
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
