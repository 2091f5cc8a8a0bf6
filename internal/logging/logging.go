// Package logging builds the application logger.
//
// The game owns the terminal while it runs, so log output goes to a rotating
// file, to stderr for non-interactive commands, or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Stderr is the file name that selects standard error instead of a file.
const Stderr = "-"

// Options configures New.
type Options struct {
	File       string // Log file path; "" discards, "-" writes to stderr
	Level      string // debug, info, warn, error
	MaxSizeMB  int    // Rotate after this many megabytes
	MaxBackups int    // Rotated files to keep
}

// DefaultOptions returns options that discard everything below info.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger. The returned closer flushes and closes the log
// file, if one was opened.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	switch opts.File {
	case "":
	case Stderr:
		w = os.Stderr
	default:
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    max(opts.MaxSizeMB, 1),
			MaxBackups: opts.MaxBackups,
			MaxAge:     7,
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
		Level:           level,
	})
	return logger, closer, nil
}
