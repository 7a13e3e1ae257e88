package project

import "slices"

// Report compares the projects directory on disk with the tracked projects.
// Tracking is decided by name, not by remote.
type Report struct {
	ProjectsDirectory string            `json:"projects_directory" yaml:"projects_directory"`
	FileSystem        []ResolvedProject `json:"file_system" yaml:"file_system"`
	Config            []ResolvedProject `json:"config" yaml:"config"`
	Untracked         []ResolvedProject `json:"untracked" yaml:"untracked"`
	Ignored           []string          `json:"ignored" yaml:"ignored"`
}

func BuildReport(dir string, configured []ResolvedProject, scan ScanResult) Report {
	tracked := make(map[string]struct{}, len(configured))
	for _, p := range configured {
		tracked[p.Name] = struct{}{}
	}
	untracked := []ResolvedProject{}
	for _, p := range scan.Projects {
		if _, ok := tracked[p.Name]; !ok {
			untracked = append(untracked, p)
		}
	}
	return Report{
		ProjectsDirectory: dir,
		FileSystem:        slices.Clone(scan.Projects),
		Config:            slices.Clone(configured),
		Untracked:         untracked,
		Ignored:           slices.Clone(scan.Ignored),
	}
}

// UntrackedRemotes returns the scanned checkouts whose remote d does not
// track yet, as entries ready to be appended to the root file. Checkouts are
// matched by remote, and two checkouts of one remote yield one entry.
func UntrackedRemotes(scan ScanResult, d *ResolvedProjectDirectory) []ConfigProject {
	var out []ConfigProject
	seen := make(map[string]struct{})
	for _, p := range scan.Projects {
		if _, ok := seen[p.Remote]; ok || d.HasRemote(p.Remote) {
			continue
		}
		seen[p.Remote] = struct{}{}
		out = append(out, ConfigProject{Remote: p.Remote})
	}
	return out
}
