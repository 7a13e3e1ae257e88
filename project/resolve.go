package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kastheco/axl/internal/userpath"
	"github.com/kastheco/axl/log"
)

// Resolver flattens a root projects file into an ordered project list.
type Resolver struct {
	home string
	load func(path string) (*ProjectGroupFile, error)
}

// NewResolver returns a Resolver that expands "~" against home.
func NewResolver(home string) *Resolver {
	return &Resolver{home: home, load: LoadProjectGroupFile}
}

// Resolve walks the include tree depth first. Each project ends up with its
// own tags plus the tags of every group file on the path to it. A group file
// reached through two paths is read and walked twice; a group file that
// includes itself fails with ErrCyclicInclude.
func (r *Resolver) Resolve(root *ConfigProjectDirectory) (*ResolvedProjectDirectory, error) {
	base := filepath.Dir(root.SourcePath)
	var stack []string
	if root.SourcePath != "" {
		stack = append(stack, canonicalPath(root.SourcePath))
	}

	projects, err := r.resolveInclude(root.Include, base, nil, stack)
	if err != nil {
		return nil, err
	}
	log.DebugLog.Printf("resolved %d projects from %s", len(projects), root.SourcePath)

	return &ResolvedProjectDirectory{
		ResolvedFromPath:  root.SourcePath,
		ProjectsDirectory: userpath.Resolve(root.ProjectsDirectory, r.home, base),
		Projects:          projects,
	}, nil
}

// resolveInclude receives tags and stack by value: callers never see what a
// nested call appends.
func (r *Resolver) resolveInclude(include Include, base string, tags TagSet, stack []string) ([]ConfigProject, error) {
	projects := []ConfigProject{}
	for _, item := range include {
		switch item := item.(type) {
		case GroupFile:
			path := userpath.Resolve(string(item), r.home, base)
			key := canonicalPath(path)
			if i := slices.Index(stack, key); i >= 0 {
				chain := append(slices.Clone(stack[i:]), key)
				return nil, fmt.Errorf("%w: %s", ErrCyclicInclude, strings.Join(chain, " -> "))
			}

			group, err := r.load(path)
			if err != nil {
				return nil, err
			}
			nested, err := r.resolveInclude(group.Include, filepath.Dir(path), tags.Union(group.Tags), append(slices.Clip(stack), key))
			if err != nil {
				return nil, err
			}
			projects = append(projects, nested...)
		case ConfigProject:
			item.Tags = item.Tags.Union(tags)
			projects = append(projects, item)
		default:
			return nil, fmt.Errorf("unknown include item %T", item)
		}
	}
	return projects, nil
}

// canonicalPath identifies a file for cycle detection, following symlinks
// where it can.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}

// ResolveFile loads the root projects file at path and resolves it.
func (r *Resolver) ResolveFile(path string) (*ConfigProjectDirectory, *ResolvedProjectDirectory, error) {
	root, err := LoadConfigProjectDirectory(path)
	if err != nil {
		return nil, nil, err
	}
	resolved, err := r.Resolve(root)
	if err != nil {
		return nil, nil, err
	}
	return root, resolved, nil
}
