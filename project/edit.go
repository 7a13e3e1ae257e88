package project

import (
	"slices"
)

// Proposal is a pending rewrite of the root projects file.
type Proposal struct {
	Updated *ConfigProjectDirectory
	Before  string
	After   string
}

// Changed reports whether the rewrite differs from the file contents.
func (p Proposal) Changed() bool {
	return p.Before != p.After
}

// Commit writes the rewritten root file.
func (p Proposal) Commit() error {
	return p.Updated.Save()
}

// ProposeAddition appends projects to the root include list. Nothing is
// written until Commit. Before is the current file rendered by the same
// encoder, so the diff only shows the appended entries.
func ProposeAddition(root *ConfigProjectDirectory, projects []ConfigProject) (Proposal, error) {
	before, err := root.Marshal()
	if err != nil {
		return Proposal{}, err
	}

	updated := &ConfigProjectDirectory{
		SourcePath:        root.SourcePath,
		ProjectsDirectory: root.ProjectsDirectory,
		Include:           slices.Clone(root.Include),
	}
	for _, p := range projects {
		updated.Include = append(updated.Include, p)
	}

	after, err := updated.Marshal()
	if err != nil {
		return Proposal{}, err
	}
	return Proposal{Updated: updated, Before: string(before), After: string(after)}, nil
}
