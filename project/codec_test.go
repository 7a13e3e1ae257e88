package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("projects.yml"))
	assert.Equal(t, FormatYAML, FormatOf("projects.yaml"))
	assert.Equal(t, FormatTOML, FormatOf("projects.TOML"))
}

func TestYAMLRoundTrip(t *testing.T) {
	path := scenarioRoot(t)
	root, err := LoadConfigProjectDirectory(path)
	require.NoError(t, err)

	require.Equal(t, Include{
		GroupFile("group.yml"),
		ConfigProject{Remote: "git@github.com:user/test1.git", Tags: TagSet{"tester_repo", "prod"}},
	}, root.Include)

	data, err := root.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `projects_directory: /test/projects/dir
include:
  - group.yml
  - remote: git@github.com:user/test1.git
    tags:
      - tester_repo
      - prod
`, string(data))

	out := filepath.Join(t.TempDir(), "copy.yml")
	require.NoError(t, os.WriteFile(out, data, 0o644))
	again, err := LoadConfigProjectDirectory(out)
	require.NoError(t, err)
	assert.Equal(t, root.Include, again.Include)
}

func TestYAMLUnknownProjectKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "projects.yml", `projects_directory: /p
include:
  - remote: git@github.com:user/a.git
    tgas: [prod]
`)

	_, err := LoadConfigProjectDirectory(path)
	assert.ErrorContains(t, err, `line 4: unknown project key "tgas"`)
}

func TestTOMLFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "group.toml", `tags = ["grouped"]
include = [{ remote = "git@github.com:user/test3.git", tags = ["test3"] }]
`)
	path := writeFile(t, dir, "projects.toml", `projects_directory = "/test/projects/dir"
include = [
  "group.toml",
  { remote = "git@github.com:user/test1.git", tags = ["tester_repo", "prod"] },
]
`)

	t.Run("resolves like the yaml scenario", func(t *testing.T) {
		resolved := resolveFile(t, path)
		assert.Equal(t, []ConfigProject{
			{Remote: "git@github.com:user/test3.git", Tags: TagSet{"grouped", "test3"}},
			{Remote: "git@github.com:user/test1.git", Tags: TagSet{"prod", "tester_repo"}},
		}, resolved.Projects)
	})

	t.Run("array of tables form", func(t *testing.T) {
		p := writeFile(t, dir, "tables.toml", `projects_directory = "/p"

[[include]]
remote = "git@github.com:user/a.git"
name = "alpha"
`)
		root, err := LoadConfigProjectDirectory(p)
		require.NoError(t, err)
		assert.Equal(t, Include{ConfigProject{Remote: "git@github.com:user/a.git", Name: "alpha"}}, root.Include)
	})

	t.Run("marshal and reload", func(t *testing.T) {
		root, err := LoadConfigProjectDirectory(path)
		require.NoError(t, err)

		data, err := root.Marshal()
		require.NoError(t, err)

		out := writeFile(t, t.TempDir(), "again.toml", string(data))
		again, err := LoadConfigProjectDirectory(out)
		require.NoError(t, err)
		assert.Equal(t, root.ProjectsDirectory, again.ProjectsDirectory)
		assert.Equal(t, root.Include, again.Include)
	})

	t.Run("unknown project keys are rejected", func(t *testing.T) {
		p := writeFile(t, dir, "bad.toml", `projects_directory = "/p"
include = [{ remote = "git@github.com:user/a.git", remtoe = "typo" }]
`)
		_, err := LoadConfigProjectDirectory(p)
		assert.ErrorContains(t, err, `unknown project key "remtoe"`)
	})
}

func TestSaveKeepsPermissions(t *testing.T) {
	path := scenarioRoot(t)
	require.NoError(t, os.Chmod(path, 0o600))
	root, err := LoadConfigProjectDirectory(path)
	require.NoError(t, err)

	require.NoError(t, root.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
