// Package logging configures zerolog for the application: console
// output for humans, optional JSON or file output, and component-
// scoped child loggers carried through context.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes the desired logger setup.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Invalid or
	// empty values fall back to info.
	Level string

	// Format is FormatConsole or FormatJSON. Defaults to console.
	Format string

	// File, when set, receives log output instead of stderr.
	File string

	// Caller adds caller annotations when true.
	Caller bool
}

// New builds a logger from cfg. When cfg.File cannot be opened the
// logger falls back to stderr and reports the problem through the
// returned logger itself rather than failing startup.
func New(cfg Config) zerolog.Logger {
	logger, _ := NewWithCloser(cfg)
	return logger
}

// NewWithCloser is New plus an io.Closer for the log file, nil when
// logging to stderr.
func NewWithCloser(cfg Config) (zerolog.Logger, io.Closer) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	var closer io.Closer
	var openErr error

	if cfg.File != "" {
		file, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			openErr = fmt.Errorf("failed to open log file %s: %w", cfg.File, fileErr)
		} else {
			out = file
			closer = file
		}
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	logger := ctx.Logger()

	if openErr != nil {
		logger.Warn().Err(openErr).Msg("log file unavailable, writing to stderr")
	}

	return logger, closer
}

// ComponentLogger returns a child of base tagged with a component name.
func ComponentLogger(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
