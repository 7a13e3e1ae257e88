package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestEnvFromOS(t *testing.T) {
	t.Run("falls back to XDG defaults under home", func(t *testing.T) {
		env := EnvFromOS(fakeEnv(map[string]string{"HOME": "/home/tester"}))

		assert.Equal(t, "/home/tester", env.Home)
		assert.Equal(t, "/home/tester/.config", env.XDGConfigHome)
		assert.Equal(t, "/home/tester/.local/state", env.XDGStateHome)
		assert.Equal(t, "/home/tester/.config/axl/projects.yml", env.DefaultProjectsConfigPath())
		assert.Equal(t, "/home/tester/.config/axl/config.toml", env.ConfigFilePath())
		assert.False(t, env.InMultiplexerSession())
	})

	t.Run("honours explicit XDG dirs and TMUX", func(t *testing.T) {
		env := EnvFromOS(fakeEnv(map[string]string{
			"HOME":               "/home/tester",
			"XDG_CONFIG_HOME":    "/cfg",
			"XDG_STATE_HOME":     "/state",
			"TMUX":               "/tmp/tmux-1000/default,1234,0",
			ProjectsConfigEnvKey: "/elsewhere/projects.yml",
		}))

		assert.Equal(t, "/cfg/axl", env.ConfigDir())
		assert.Equal(t, "/state/axl", env.StateDir())
		assert.Equal(t, "/elsewhere/projects.yml", env.ProjectsConfigPath)
		assert.True(t, env.InMultiplexerSession())
	})
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "config.toml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.False(t, cfg.IsTelemetryEnabled())
		assert.True(t, cfg.IsHistoryEnabled())
	})

	t.Run("parses values and keeps defaults for missing keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
projects_config_path = "~/dotfiles/projects.yml"
telemetry_enabled = true
history_enabled = false

[picker]
args = ["--height", "40%"]

[log]
level = "debug"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfigFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "~/dotfiles/projects.yml", cfg.ProjectsConfigPath)
		assert.Equal(t, MultiplexerTmux, cfg.Multiplexer)
		assert.Equal(t, "fzf", cfg.Picker.Command)
		assert.Equal(t, []string{"--height", "40%"}, cfg.Picker.Args)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 5, cfg.Log.MaxSizeMB)
		assert.True(t, cfg.IsTelemetryEnabled())
		assert.False(t, cfg.IsHistoryEnabled())
	})

	t.Run("malformed TOML is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("multiplexer = \n"), 0o644))

		_, err := LoadConfigFrom(path)
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("mulitplexer = \"tmux\"\n"), 0o644))

		_, err := LoadConfigFrom(path)
		assert.ErrorContains(t, err, "mulitplexer")
	})
}

func TestLoadConfigReadsEncodedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	enabled := true
	cfg := DefaultConfig()
	cfg.TelemetryEnabled = &enabled
	cfg.Picker.Args = []string{"--reverse"}

	var buf bytes.Buffer
	require.NoError(t, toml.NewEncoder(&buf).Encode(cfg))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolveProjectsConfigPath(t *testing.T) {
	env := Env{Home: "/home/tester", XDGConfigHome: "/home/tester/.config", XDGStateHome: "/home/tester/.local/state"}
	cfg := DefaultConfig()

	assert.Equal(t, "/home/tester/.config/axl/projects.yml", ResolveProjectsConfigPath("", env, cfg))

	cfg.ProjectsConfigPath = "work.yml"
	assert.Equal(t, "/home/tester/.config/axl/work.yml", ResolveProjectsConfigPath("", env, cfg))

	env.ProjectsConfigPath = "~/env.yml"
	assert.Equal(t, "/home/tester/env.yml", ResolveProjectsConfigPath("", env, cfg))

	assert.Equal(t, "/flag.yml", ResolveProjectsConfigPath("/flag.yml", env, cfg))
}

func TestLogAndHistoryPaths(t *testing.T) {
	env := Env{Home: "/home/tester", XDGStateHome: "/state"}
	cfg := DefaultConfig()

	assert.Equal(t, "/state/axl/axl.log", cfg.LogFilePath(env))
	assert.Equal(t, "/state/axl/history.db", cfg.HistoryPath(env))

	cfg.Log.File = "~/logs/axl.log"
	assert.Equal(t, "/home/tester/logs/axl.log", cfg.LogFilePath(env))
}
