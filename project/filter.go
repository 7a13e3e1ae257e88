package project

import "slices"

// FilterByTags keeps the projects carrying at least one of tags. No tags
// means no filtering. A filter nothing matches yields an empty list.
func FilterByTags(projects []ConfigProject, tags []string) []ConfigProject {
	if len(tags) == 0 {
		return slices.Clone(projects)
	}
	out := []ConfigProject{}
	for _, p := range projects {
		if p.Tags.Intersects(tags) {
			out = append(out, p)
		}
	}
	return out
}

// Filter returns a copy of the directory restricted to tags.
func (d *ResolvedProjectDirectory) Filter(tags []string) *ResolvedProjectDirectory {
	return &ResolvedProjectDirectory{
		ResolvedFromPath:  d.ResolvedFromPath,
		ProjectsDirectory: d.ProjectsDirectory,
		Projects:          FilterByTags(d.Projects, tags),
	}
}

// Tags returns every tag used by the directory's projects, sorted.
func (d *ResolvedProjectDirectory) Tags() TagSet {
	var all TagSet
	for _, p := range d.Projects {
		all = all.Union(p.Tags)
	}
	return all
}

// HasRemote reports whether any project tracks remote.
func (d *ResolvedProjectDirectory) HasRemote(remote string) bool {
	return slices.ContainsFunc(d.Projects, func(p ConfigProject) bool {
		return p.Remote == remote
	})
}
