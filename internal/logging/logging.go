// Package logging builds the structured logger shared by every component.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configure the logger.
type Options struct {
	Level string    // zerolog level name; empty means info
	Path  string    // log file; empty discards output
	Out   io.Writer // overrides Path when set
}

// New builds a console-formatted logger with RFC3339 timestamps. The returned
// closer releases the log file, if one was opened.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if name := strings.TrimSpace(opts.Level); name != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	switch {
	case opts.Out != nil:
		out = opts.Out
	case strings.TrimSpace(opts.Path) != "":
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		out = file
		closer = file
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).With().Timestamp().Logger().Level(level)
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
