package project

import (
	"errors"
	"fmt"

	"github.com/kastheco/axl/picker"
)

// PickProject asks the user for one project by name.
func PickProject(p picker.Picker, projects []ResolvedProject) (ResolvedProject, error) {
	name, err := p.PickOne(Names(projects))
	if err != nil {
		if errors.Is(err, picker.ErrNoItemSelected) {
			return ResolvedProject{}, fmt.Errorf("%w: %w", ErrNoProjectSelected, err)
		}
		return ResolvedProject{}, err
	}
	for _, project := range projects {
		if project.Name == name {
			return project, nil
		}
	}
	return ResolvedProject{}, ErrNoProjectSelected
}

// PickConfigProjects asks the user for any number of entries by remote.
func PickConfigProjects(p picker.Picker, projects []ConfigProject) ([]ConfigProject, error) {
	remotes := make([]string, len(projects))
	for i, project := range projects {
		remotes[i] = project.Remote
	}
	chosen, err := p.PickMany(remotes)
	if err != nil {
		return nil, err
	}
	picked := keep(projects, chosen, func(p ConfigProject) string { return p.Remote })
	if len(picked) == 0 {
		return nil, ErrNoProjectSelected
	}
	return picked, nil
}

// keep returns the items whose key was chosen, in their original order.
func keep[T any](items []T, chosen []string, key func(T) string) []T {
	set := make(map[string]struct{}, len(chosen))
	for _, c := range chosen {
		set[c] = struct{}{}
	}
	var out []T
	for _, item := range items {
		if _, ok := set[key(item)]; ok {
			out = append(out, item)
		}
	}
	return out
}
