package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kastheco/axl/log"
	"github.com/kastheco/axl/session/git"
)

// RemoteReader returns the origin URL of the repository at dir.
type RemoteReader func(dir string) (string, error)

// ScanResult is what a projects directory holds on disk.
type ScanResult struct {
	Projects []ResolvedProject `json:"projects" yaml:"projects"`
	// Ignored lists directories without a readable, parsable origin.
	Ignored []string `json:"ignored" yaml:"ignored"`
}

// Total is the number of directories scanned.
func (s ScanResult) Total() int {
	return len(s.Projects) + len(s.Ignored)
}

// ScanProjects inspects every immediate subdirectory of root. A directory
// without a usable origin is recorded in Ignored; only an unreadable root
// fails the scan. Projects are named after their directory.
func ScanProjects(root string, readRemote RemoteReader) (ScanResult, error) {
	if readRemote == nil {
		readRemote = git.OriginURL
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return ScanResult{}, fmt.Errorf("failed to read projects directory %s: %w", root, err)
	}

	res := ScanResult{Projects: []ResolvedProject{}, Ignored: []string{}}
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if !isDir(entry, dir) {
			continue
		}
		remote, err := readRemote(dir)
		if err != nil {
			log.WarningLog.Printf("skipping %s: %v", dir, err)
			res.Ignored = append(res.Ignored, dir)
			continue
		}
		p, err := newResolvedProject(root, entry.Name(), remote, nil)
		if err != nil {
			log.WarningLog.Printf("skipping %s: %v", dir, err)
			res.Ignored = append(res.Ignored, dir)
			continue
		}
		res.Projects = append(res.Projects, p)
	}
	return res, nil
}

// isDir follows symlinks so linked checkouts are scanned too.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
