// Package logger builds the slog logger used for sentinel's own
// diagnostics. Console output goes to stderr so it never mixes with the
// teed child stdout; an optional file destination rotates via
// lumberjack.
package logger

import (
	"io"
	"log/slog"
	"os"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults, lumberjack semantics.
const (
	DefaultMaxSizeMB  = 10 // MB
	DefaultMaxBackups = 3  // number of backup files
	DefaultMaxAgeDays = 7  // days
)

// Config describes the diagnostic log destinations.
type Config struct {
	Level      slog.Level
	Color      bool   // ANSI colors on the console handler
	File       string // optional rotating log file; empty disables
	MaxSizeMB  int    // megabytes before rotation (default 10)
	MaxBackups int    // number of backups to keep (default 3)
	MaxAgeDays int    // days to keep (default 7)
	Compress   bool   // gzip rotated files
}

// New builds the logger. The returned closer owns the rotating file
// writer and is nil when no file is configured.
func New(c Config) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stderr
	var closer io.Closer
	if c.File != "" {
		f := &lj.Logger{
			Filename:   c.File,
			MaxSize:    valOr(c.MaxSizeMB, DefaultMaxSizeMB),
			MaxBackups: valOr(c.MaxBackups, DefaultMaxBackups),
			MaxAge:     valOr(c.MaxAgeDays, DefaultMaxAgeDays),
			Compress:   c.Compress,
		}
		closer = f
		w = io.MultiWriter(os.Stderr, f)
	}
	return slog.New(newHandler(w, c)), closer
}

func newHandler(w io.Writer, c Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.Level}
	if c.Color {
		return newColorTextHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func valOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
