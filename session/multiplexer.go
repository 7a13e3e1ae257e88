package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSessionsFound is returned when the multiplexer reports no sessions.
	ErrNoSessionsFound = errors.New("no sessions found")
	// ErrCouldNotCreateSession marks a session creation that the multiplexer
	// refused. It is reported to the user but does not abort the command.
	ErrCouldNotCreateSession = errors.New("could not create session")
)

// ProjectPathDoesNotExistError is returned when a session is requested for a
// directory that is not on disk.
type ProjectPathDoesNotExistError struct {
	Path string
}

func (e *ProjectPathDoesNotExistError) Error() string {
	return fmt.Sprintf("project path does not exist: %s", e.Path)
}

// Multiplexer is a terminal multiplexer able to host one session per project.
type Multiplexer interface {
	// Open attaches to the session called name, creating it rooted at path
	// when it does not exist yet.
	Open(path, name string) error
	// OpenExisting attaches to or switches to an already running session.
	OpenExisting(name string) error
	// ListSessions returns the names of all running sessions.
	ListSessions() ([]string, error)
	// CurrentSession returns the session this process runs in, or "" when
	// it runs outside the multiplexer.
	CurrentSession() (string, error)
	// KillSessions kills every named session. current, when among them, is
	// killed last so the client survives long enough to finish the others.
	KillSessions(names []string, current string) error
	// UniqueSession opens a scratch session rooted at home under the first
	// free single-digit name.
	UniqueSession(home string) error
	// Name identifies the multiplexer in logs and history records.
	Name() string
}
