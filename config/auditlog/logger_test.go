package auditlog_test

import (
	"testing"

	"github.com/kastheco/axl/config/auditlog"
	"github.com/stretchr/testify/assert"
)

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "session_opened", auditlog.EventSessionOpened.String())
	assert.Equal(t, "project_added", auditlog.EventProjectAdded.String())
}

func TestNewEvent(t *testing.T) {
	e := auditlog.NewEvent(auditlog.EventSessionOpened, "opened test1",
		auditlog.WithProject("test1", "/p/test1", "git@github.com:user/test1.git"),
		auditlog.WithSession("test1", "tmux"),
		auditlog.WithLevel("warn"),
	)

	assert.Equal(t, auditlog.EventSessionOpened, e.Kind)
	assert.Equal(t, "opened test1", e.Message)
	assert.Equal(t, "/p/test1", e.Path)
	assert.Equal(t, "tmux", e.Multiplexer)
	assert.Equal(t, "warn", e.Level)
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	l := auditlog.NopLogger()
	assert.NotPanics(t, func() {
		l.Emit(auditlog.Event{Kind: auditlog.EventSessionOpened})
	})
	events, err := l.Query(auditlog.QueryFilter{})
	assert.NoError(t, err)
	assert.Empty(t, events)
}
