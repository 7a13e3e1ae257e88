package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}

// HuhConfirmer asks through a huh confirm field. The answer defaults to no
// and ctrl+c counts as no.
type HuhConfirmer struct{}

func (HuhConfirmer) Confirm(title, description string) (bool, error) {
	accepted := false
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&accepted).
		WithTheme(ThemeRosePine()).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return accepted, nil
}

// AlwaysConfirm answers yes without asking, for --yes.
type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(string, string) (bool, error) {
	return true, nil
}
