package project

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteNotParsable is returned when a remote names no hosted repository.
	ErrRemoteNotParsable = errors.New("remote is not a parsable git uri")
	// ErrNoProjectSelected is returned when the user picks nothing.
	ErrNoProjectSelected = errors.New("no project was selected")
	// ErrCyclicInclude is returned when a group file includes itself,
	// directly or through other group files.
	ErrCyclicInclude = errors.New("cyclic group file include")
	// ErrAborted is returned when the user declines a proposed change.
	ErrAborted = errors.New("changes were not accepted")
)

// ConfigIOError is returned when a projects or group file is missing,
// unreadable or malformed.
type ConfigIOError struct {
	Path string
	Err  error
}

func (e *ConfigIOError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *ConfigIOError) Unwrap() error {
	return e.Err
}
