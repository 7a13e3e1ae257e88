package auditlog

import "time"

// QueryFilter specifies criteria for querying history events.
type QueryFilter struct {
	Project string
	Session string
	Kinds   []EventKind
	Limit   int
	Before  time.Time
	After   time.Time
}

// Logger is the interface for emitting and querying history events.
type Logger interface {
	Emit(event Event)
	Query(filter QueryFilter) ([]Event, error)
	Close() error
}

// EventOption is a functional option for configuring optional Event fields.
type EventOption func(*Event)

// WithProject sets the Project, Path and Remote fields on the event.
func WithProject(name, path, remote string) EventOption {
	return func(e *Event) {
		e.Project = name
		e.Path = path
		e.Remote = remote
	}
}

// WithSession sets the Session and Multiplexer fields on the event.
func WithSession(name, multiplexer string) EventOption {
	return func(e *Event) {
		e.Session = name
		e.Multiplexer = multiplexer
	}
}

// WithLevel sets the Level field on the event (info, warn, error).
func WithLevel(level string) EventOption {
	return func(e *Event) { e.Level = level }
}

// NewEvent builds an event of kind with message and options applied.
func NewEvent(kind EventKind, message string, opts ...EventOption) Event {
	e := Event{Kind: kind, Message: message}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// nopLogger is a no-op Logger used when history is disabled.
type nopLogger struct{}

// NopLogger returns a Logger that discards all events.
func NopLogger() Logger {
	return &nopLogger{}
}

func (n *nopLogger) Emit(_ Event) {}

func (n *nopLogger) Query(_ QueryFilter) ([]Event, error) {
	return nil, nil
}

func (n *nopLogger) Close() error {
	return nil
}
