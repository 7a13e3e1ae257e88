// Package log holds the process-wide loggers. Before Initialize is called
// every logger discards its output, so library code and tests can log freely.
package log

import (
	"context"
	"fmt"
	"io"
	golog "log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kastheco/axl/internal/sentry"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLog    = golog.New(io.Discard, "", 0)
	WarningLog = golog.New(io.Discard, "", 0)
	ErrorLog   = golog.New(io.Discard, "", 0)
	DebugLog   = golog.New(io.Discard, "", 0)

	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	level   = new(slog.LevelVar)
	mu      sync.Mutex
	closeFn = func() error { return nil }
)

type Options struct {
	// File is the log file path. Empty disables the file sink.
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	// Verbose mirrors every record to stderr at debug level.
	Verbose bool
	Version string
}

// Initialize wires the loggers to a rotating log file and, in verbose mode,
// to stderr as well.
func Initialize(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	var writers []io.Writer
	closers := []func() error{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return fmt.Errorf("log: create dir: %w", err)
		}
		rot := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 5),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     14,
			Compress:   true,
		}
		writers = append(writers, rot)
		closers = append(closers, rot.Close)
	}
	if opts.Verbose {
		writers = append(writers, os.Stderr)
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	level.Set(ParseLevel(opts.Level))
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	}
	logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})).
		With(slog.Int("pid", os.Getpid()))
	if opts.Version != "" {
		logger = logger.With(slog.String("version", opts.Version))
	}
	slog.SetDefault(logger)

	InfoLog = golog.New(sentry.NewWriter(levelWriter{level: slog.LevelInfo}, sentry.LevelInfo), "", 0)
	WarningLog = golog.New(sentry.NewWriter(levelWriter{level: slog.LevelWarn}, sentry.LevelWarning), "", 0)
	ErrorLog = golog.New(sentry.NewWriter(levelWriter{level: slog.LevelError}, sentry.LevelError), "", 0)
	DebugLog = golog.New(levelWriter{level: slog.LevelDebug}, "", 0)

	closeFn = func() error {
		var first error
		for _, c := range closers {
			if err := c(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	return nil
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if err := closeFn(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
	closeFn = func() error { return nil }
}

// Logger returns the structured logger behind the *log.Logger wrappers.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Loggers are level loggers for one subsystem. Their records carry a
// category attribute and their sentry breadcrumbs use it as the category.
type Loggers struct {
	Info    *golog.Logger
	Warning *golog.Logger
	Error   *golog.Logger
	Debug   *golog.Logger
}

// For returns the loggers for category. They write through whatever handler
// is current, so packages may create them before Initialize runs.
func For(category string) *Loggers {
	attr := []any{slog.String("category", category)}
	return &Loggers{
		Info:    golog.New(sentry.NewWriter(levelWriter{slog.LevelInfo, attr}, sentry.LevelInfo).WithCategory(category), "", 0),
		Warning: golog.New(sentry.NewWriter(levelWriter{slog.LevelWarn, attr}, sentry.LevelWarning).WithCategory(category), "", 0),
		Error:   golog.New(sentry.NewWriter(levelWriter{slog.LevelError, attr}, sentry.LevelError).WithCategory(category), "", 0),
		Debug:   golog.New(levelWriter{slog.LevelDebug, attr}, "", 0),
	}
}

// levelWriter adapts the printf-style loggers to slog records.
type levelWriter struct {
	level slog.Level
	attrs []any
}

func (w levelWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	Logger().Log(context.Background(), w.level, msg, w.attrs...)
	return len(p), nil
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
