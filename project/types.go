package project

import (
	"slices"
	"strings"

	"github.com/kastheco/axl/session/git"
)

// TagSet is a sorted set of tags. Use NewTagSet or Union to build one; a
// TagSet decoded straight from a file may still hold duplicates.
type TagSet []string

func NewTagSet(tags ...string) TagSet {
	out := make(TagSet, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Union returns a new set holding the tags of both. Neither operand is modified.
func (s TagSet) Union(other TagSet) TagSet {
	all := make([]string, 0, len(s)+len(other))
	all = append(all, s...)
	all = append(all, other...)
	return NewTagSet(all...)
}

func (s TagSet) Contains(tag string) bool {
	return slices.Contains(s, tag)
}

// Intersects reports whether any of tags is in the set.
func (s TagSet) Intersects(tags []string) bool {
	for _, t := range tags {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// ConfigProject is a project entry as written in a projects or group file.
type ConfigProject struct {
	Remote string `yaml:"remote" toml:"remote" json:"remote"`
	// Name overrides the repository name derived from Remote.
	Name string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Tags TagSet `yaml:"tags,omitempty" toml:"tags,omitempty" json:"tags,omitempty"`
}

// GroupItem is one entry of an include list: either a GroupFile or a
// ConfigProject.
type GroupItem interface {
	groupItem()
}

// GroupFile references another group file. Relative paths are resolved
// against the directory of the file that includes it.
type GroupFile string

func (GroupFile) groupItem()     {}
func (ConfigProject) groupItem() {}

// Include is an ordered list of group items.
type Include []GroupItem

// ProjectGroupFile is a file whose tags are inherited by everything it
// transitively includes.
type ProjectGroupFile struct {
	SourcePath string  `yaml:"-" toml:"-" json:"-"`
	Tags       TagSet  `yaml:"tags,omitempty" toml:"tags,omitempty" json:"tags,omitempty"`
	Include    Include `yaml:"include" toml:"include" json:"include"`
}

// ConfigProjectDirectory is the root projects file.
type ConfigProjectDirectory struct {
	SourcePath        string  `yaml:"-" toml:"-" json:"-"`
	ProjectsDirectory string  `yaml:"projects_directory" toml:"projects_directory" json:"projects_directory"`
	Include           Include `yaml:"include" toml:"include" json:"include"`
}

// ResolvedProject is a project with its on-disk location and identity
// derived from the remote.
type ResolvedProject struct {
	Name              string  `json:"name" yaml:"name"`
	SafeName          string  `json:"safe_name" yaml:"safe_name"`
	ProjectFolderPath string  `json:"project_folder_path" yaml:"project_folder_path"`
	Path              string  `json:"path" yaml:"path"`
	Remote            string  `json:"remote" yaml:"remote"`
	GitURI            git.URI `json:"git_uri" yaml:"git_uri"`
	Tags              TagSet  `json:"tags" yaml:"tags"`
}

func (p ResolvedProject) String() string {
	return p.Name
}

// ResolvedProjectDirectory is the flattened include tree of a root file.
type ResolvedProjectDirectory struct {
	ResolvedFromPath  string          `json:"resolved_from_path" yaml:"resolved_from_path"`
	ProjectsDirectory string          `json:"projects_directory" yaml:"projects_directory"`
	Projects          []ConfigProject `json:"projects" yaml:"projects"`
}
