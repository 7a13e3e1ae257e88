package config

import (
	"os"
	"path/filepath"
)

const (
	AppName = "axl"

	// ProjectsConfigEnvKey overrides the location of the root projects file.
	ProjectsConfigEnvKey = "AXL_PROJECTS_CONFIG_PATH"
)

// Env is the process environment axl cares about, captured once at start-up
// so nothing downstream reads os.Getenv directly.
type Env struct {
	Home          string
	XDGConfigHome string
	XDGStateHome  string
	// ProjectsConfigPath is the value of AXL_PROJECTS_CONFIG_PATH, if set.
	ProjectsConfigPath string
	// Tmux is the value of $TMUX. Non-empty means we run inside a session.
	Tmux string
}

// EnvFromOS captures the environment through getenv. home is used when
// $HOME is unset.
func EnvFromOS(getenv func(string) string) Env {
	home := getenv("HOME")
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	env := Env{
		Home:               home,
		XDGConfigHome:      getenv("XDG_CONFIG_HOME"),
		XDGStateHome:       getenv("XDG_STATE_HOME"),
		ProjectsConfigPath: getenv(ProjectsConfigEnvKey),
		Tmux:               getenv("TMUX"),
	}
	if env.XDGConfigHome == "" {
		env.XDGConfigHome = filepath.Join(home, ".config")
	}
	if env.XDGStateHome == "" {
		env.XDGStateHome = filepath.Join(home, ".local", "state")
	}
	return env
}

// ConfigDir is $XDG_CONFIG_HOME/axl.
func (e Env) ConfigDir() string {
	return filepath.Join(e.XDGConfigHome, AppName)
}

// StateDir is $XDG_STATE_HOME/axl. Logs and the history database live here.
func (e Env) StateDir() string {
	return filepath.Join(e.XDGStateHome, AppName)
}

func (e Env) ConfigFilePath() string {
	return filepath.Join(e.ConfigDir(), ConfigFileName)
}

func (e Env) DefaultProjectsConfigPath() string {
	return filepath.Join(e.ConfigDir(), DefaultProjectsFileName)
}

// InMultiplexerSession reports whether the current process runs inside tmux.
func (e Env) InMultiplexerSession() bool {
	return e.Tmux != ""
}
