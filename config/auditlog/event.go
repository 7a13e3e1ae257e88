package auditlog

import "time"

// EventKind identifies the type of history event.
type EventKind string

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Session events.
const (
	EventSessionOpened EventKind = "session_opened"
	EventSessionKilled EventKind = "session_killed"
	EventScratchOpened EventKind = "scratch_opened"
	EventSessionFailed EventKind = "session_failed"
)

// Projects file events.
const (
	EventProjectAdded  EventKind = "project_added"
	EventProjectCloned EventKind = "project_cloned"
)

// Kinds lists every known event kind, in display order.
func Kinds() []EventKind {
	return []EventKind{
		EventSessionOpened,
		EventSessionKilled,
		EventScratchOpened,
		EventSessionFailed,
		EventProjectAdded,
		EventProjectCloned,
	}
}

// Event is a single history entry.
type Event struct {
	ID          int64     `json:"id" yaml:"id"`
	Kind        EventKind `json:"kind" yaml:"kind"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Project     string    `json:"project,omitempty" yaml:"project,omitempty"`
	Session     string    `json:"session,omitempty" yaml:"session,omitempty"`
	Path        string    `json:"path,omitempty" yaml:"path,omitempty"`
	Remote      string    `json:"remote,omitempty" yaml:"remote,omitempty"`
	Multiplexer string    `json:"multiplexer,omitempty" yaml:"multiplexer,omitempty"`
	Message     string    `json:"message,omitempty" yaml:"message,omitempty"`
	Level       string    `json:"level" yaml:"level"` // info, warn, error
}
