package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kastheco/axl/session/git"
)

// SafeName turns a project name into a session name: every "." becomes "_".
func SafeName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

// NewResolvedProject derives a project's identity from its remote.
func NewResolvedProject(root, remote string, tags TagSet) (ResolvedProject, error) {
	return newResolvedProject(root, "", remote, tags)
}

// Resolve materialises the entry under root. A configured Name wins over the
// repository name.
func (p ConfigProject) Resolve(root string) (ResolvedProject, error) {
	return newResolvedProject(root, p.Name, p.Remote, p.Tags)
}

func newResolvedProject(root, name, remote string, tags TagSet) (ResolvedProject, error) {
	uri, err := git.ParseURI(remote)
	if err != nil {
		return ResolvedProject{}, fmt.Errorf("%w: %q: %v", ErrRemoteNotParsable, remote, err)
	}
	if name == "" {
		name = uri.Name
	}
	return ResolvedProject{
		Name:              name,
		SafeName:          SafeName(name),
		ProjectFolderPath: root,
		Path:              filepath.Join(root, name),
		Remote:            remote,
		GitURI:            uri,
		Tags:              NewTagSet(tags...),
	}, nil
}

// ResolvedProjects materialises every project of the directory. One bad
// remote fails the whole call.
func (d *ResolvedProjectDirectory) ResolvedProjects() ([]ResolvedProject, error) {
	out := make([]ResolvedProject, 0, len(d.Projects))
	for _, p := range d.Projects {
		rp, err := p.Resolve(d.ProjectsDirectory)
		if err != nil {
			return nil, err
		}
		out = append(out, rp)
	}
	return out, nil
}

// Names returns the project names in order.
func Names(projects []ResolvedProject) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}
