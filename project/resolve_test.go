package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// scenarioRoot writes a root file including one group file and one project.
func scenarioRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "group.yml", `tags: ['grouped']
include:
  - remote: git@github.com:user/test3.git
    tags: ['test3']
`)
	return writeFile(t, dir, "projects.yml", `projects_directory: "/test/projects/dir"
include:
  - group.yml
  - remote: git@github.com:user/test1.git
    tags:
      - tester_repo
      - prod
`)
}

func resolveFile(t *testing.T, path string) *ResolvedProjectDirectory {
	t.Helper()
	_, resolved, err := NewResolver("/home/tester").ResolveFile(path)
	require.NoError(t, err)
	return resolved
}

func TestResolveScenario(t *testing.T) {
	path := scenarioRoot(t)

	resolved := resolveFile(t, path)

	assert.Equal(t, path, resolved.ResolvedFromPath)
	assert.Equal(t, "/test/projects/dir", resolved.ProjectsDirectory)
	assert.Equal(t, []ConfigProject{
		{Remote: "git@github.com:user/test3.git", Tags: TagSet{"grouped", "test3"}},
		{Remote: "git@github.com:user/test1.git", Tags: TagSet{"prod", "tester_repo"}},
	}, resolved.Projects)

	projects, err := resolved.ResolvedProjects()
	require.NoError(t, err)
	assert.Equal(t, []string{"test3", "test1"}, Names(projects))
}

func TestResolveIsDeterministic(t *testing.T) {
	path := scenarioRoot(t)

	first := resolveFile(t, path)
	second := resolveFile(t, path)

	assert.Equal(t, first, second)
}

func TestResolveAccumulatesTagsAlongEachPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shared.yml", `tags: [shared]
include:
  - remote: git@github.com:user/lib.git
    tags: [own]
`)
	writeFile(t, dir, "work/team.yml", `tags: [team]
include:
  - ../shared.yml
`)
	writeFile(t, dir, "work.yml", `tags: [work]
include:
  - work/team.yml
`)
	root := writeFile(t, dir, "projects.yml", `projects_directory: /p
include:
  - work.yml
  - shared.yml
`)

	resolved := resolveFile(t, root)

	require.Len(t, resolved.Projects, 2)
	// same group file, reached through two paths, carries different tags
	assert.Equal(t, TagSet{"own", "shared", "team", "work"}, resolved.Projects[0].Tags)
	assert.Equal(t, TagSet{"own", "shared"}, resolved.Projects[1].Tags)
}

func TestResolveDoesNotShareTagsBetweenSiblings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yml", "tags: [a]\ninclude:\n  - remote: git@github.com:user/one.git\n")
	writeFile(t, dir, "b.yml", "tags: [b]\ninclude:\n  - remote: git@github.com:user/two.git\n")
	root := writeFile(t, dir, "projects.yml", "projects_directory: /p\ninclude:\n  - a.yml\n  - b.yml\n  - remote: git@github.com:user/three.git\n")

	resolved := resolveFile(t, root)

	assert.Equal(t, TagSet{"a"}, resolved.Projects[0].Tags)
	assert.Equal(t, TagSet{"b"}, resolved.Projects[1].Tags)
	assert.Empty(t, resolved.Projects[2].Tags)
}

func TestResolveExpandsHome(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, "groups/dotfiles.yml", "include:\n  - remote: git@github.com:user/dotfiles.git\n")
	root := writeFile(t, t.TempDir(), "projects.yml", "projects_directory: ~/projects\ninclude:\n  - ~/groups/dotfiles.yml\n")

	_, resolved, err := NewResolver(home).ResolveFile(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "projects"), resolved.ProjectsDirectory)
	require.Len(t, resolved.Projects, 1)
	assert.Equal(t, "git@github.com:user/dotfiles.git", resolved.Projects[0].Remote)
}

func TestResolveCycles(t *testing.T) {
	t.Run("mutual include", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yml", "include:\n  - b.yml\n")
		writeFile(t, dir, "b.yml", "include:\n  - a.yml\n")
		root := writeFile(t, dir, "projects.yml", "projects_directory: /p\ninclude:\n  - a.yml\n")

		_, _, err := NewResolver("/home/tester").ResolveFile(root)
		require.ErrorIs(t, err, ErrCyclicInclude)
		assert.Contains(t, err.Error(), "a.yml -> ")
	})

	t.Run("root includes itself", func(t *testing.T) {
		dir := t.TempDir()
		root := writeFile(t, dir, "projects.yml", "projects_directory: /p\ninclude:\n  - projects.yml\n")

		_, _, err := NewResolver("/home/tester").ResolveFile(root)
		assert.ErrorIs(t, err, ErrCyclicInclude)
	})
}

func TestResolveErrors(t *testing.T) {
	t.Run("missing group file carries its path", func(t *testing.T) {
		dir := t.TempDir()
		root := writeFile(t, dir, "projects.yml", "projects_directory: /p\ninclude:\n  - missing.yml\n")

		_, _, err := NewResolver("/home/tester").ResolveFile(root)
		var ioErr *ConfigIOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, filepath.Join(dir, "missing.yml"), ioErr.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing root file", func(t *testing.T) {
		_, err := LoadConfigProjectDirectory(filepath.Join(t.TempDir(), "projects.yml"))
		var ioErr *ConfigIOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		root := writeFile(t, t.TempDir(), "projects.yml", "projects_directory: [\n")

		_, err := LoadConfigProjectDirectory(root)
		var ioErr *ConfigIOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("include entries must be a path or a project", func(t *testing.T) {
		root := writeFile(t, t.TempDir(), "projects.yml", "projects_directory: /p\ninclude:\n  - [a, b]\n")

		_, err := LoadConfigProjectDirectory(root)
		assert.ErrorContains(t, err, "include entries must be a path or a project")
	})

	t.Run("project without remote", func(t *testing.T) {
		root := writeFile(t, t.TempDir(), "projects.yml", "projects_directory: /p\ninclude:\n  - name: nope\n")

		_, err := LoadConfigProjectDirectory(root)
		assert.ErrorContains(t, err, "missing a remote")
	})
}

func TestFilterByTags(t *testing.T) {
	resolved := resolveFile(t, scenarioRoot(t))

	t.Run("prod yields test1 only", func(t *testing.T) {
		projects, err := resolved.Filter([]string{"prod"}).ResolvedProjects()
		require.NoError(t, err)
		assert.Equal(t, []string{"test1"}, Names(projects))
	})

	t.Run("no tags is identity", func(t *testing.T) {
		assert.Equal(t, resolved.Projects, resolved.Filter(nil).Projects)
	})

	t.Run("a filter matching everything keeps everything", func(t *testing.T) {
		assert.Equal(t, resolved.Projects, resolved.Filter([]string{"prod", "grouped"}).Projects)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, resolved.Filter([]string{"nothing"}).Projects)
	})

	t.Run("filtering never mutates the source", func(t *testing.T) {
		before := len(resolved.Projects)
		_ = resolved.Filter([]string{"prod"})
		assert.Len(t, resolved.Projects, before)
	})
}

func TestDirectoryTagsAndRemotes(t *testing.T) {
	resolved := resolveFile(t, scenarioRoot(t))

	assert.Equal(t, TagSet{"grouped", "prod", "test3", "tester_repo"}, resolved.Tags())
	assert.True(t, resolved.HasRemote("git@github.com:user/test1.git"))
	assert.False(t, resolved.HasRemote("git@github.com:user/test9.git"))
}
