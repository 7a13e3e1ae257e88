// Package picker asks the user to choose among text candidates.
package picker

import "errors"

var (
	// ErrNoItemSelected is returned when the user aborts a single pick or
	// the picker returns nothing.
	ErrNoItemSelected = errors.New("no item selected")
	// ErrNoItemsFound is returned when there is nothing to choose from.
	ErrNoItemsFound = errors.New("could not find any items to choose from")
)

// Picker presents candidates one per line. Candidates must not contain
// newlines.
type Picker interface {
	// PickOne returns exactly one candidate.
	PickOne(candidates []string) (string, error)
	// PickMany returns zero or more candidates. An aborted pick is an empty
	// selection, not an error.
	PickMany(candidates []string) ([]string, error)
}
