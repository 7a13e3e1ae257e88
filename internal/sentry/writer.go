package sentry

import (
	"io"
	"strings"

	gosentry "github.com/getsentry/sentry-go"
)

// Level represents the severity level for the sentry writer.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Writer wraps an io.Writer and forwards log lines to Sentry.
// Errors become Sentry events; warnings and info become breadcrumbs.
type Writer struct {
	inner    io.Writer
	level    Level
	category string
}

// NewWriter creates a Writer that tees to inner and forwards to Sentry.
func NewWriter(inner io.Writer, level Level) *Writer {
	return &Writer{inner: inner, level: level, category: "log"}
}

// WithCategory sets the breadcrumb category, e.g. "tmux" or "picker".
func (w *Writer) WithCategory(category string) *Writer {
	w.category = category
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)

	if !enabled {
		return n, err
	}

	msg := strings.TrimSpace(string(p))
	if msg == "" {
		return n, err
	}

	switch w.level {
	case LevelError:
		gosentry.CaptureMessage(msg)
	case LevelWarning:
		w.breadcrumb(gosentry.LevelWarning, msg)
	case LevelInfo:
		w.breadcrumb(gosentry.LevelInfo, msg)
	}

	return n, err
}

func (w *Writer) breadcrumb(level gosentry.Level, msg string) {
	gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
		Level:    level,
		Category: w.category,
		Message:  msg,
	})
}
