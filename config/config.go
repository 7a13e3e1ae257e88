package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kastheco/axl/internal/userpath"
)

const (
	ConfigFileName          = "config.toml"
	DefaultProjectsFileName = "projects.yml"

	LogFileName     = "axl.log"
	HistoryFileName = "history.db"

	MultiplexerTmux = "tmux"
	defaultPicker   = "fzf"
)

// Config is the application configuration stored in
// $XDG_CONFIG_HOME/axl/config.toml. Every field is optional.
type Config struct {
	// ProjectsConfigPath points at the root projects file. Relative paths are
	// resolved against the config directory.
	ProjectsConfigPath string `toml:"projects_config_path,omitempty" json:"projects_config_path,omitempty"`
	Multiplexer        string `toml:"multiplexer" json:"multiplexer"`

	Picker PickerConfig `toml:"picker" json:"picker"`
	Log    LogConfig    `toml:"log" json:"log"`

	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to false when not set.
	TelemetryEnabled *bool  `toml:"telemetry_enabled,omitempty" json:"telemetry_enabled,omitempty"`
	SentryDSN        string `toml:"sentry_dsn,omitempty" json:"sentry_dsn,omitempty"`
	// HistoryEnabled controls the sqlite event history. Defaults to true.
	HistoryEnabled *bool `toml:"history_enabled,omitempty" json:"history_enabled,omitempty"`
}

type PickerConfig struct {
	Command string   `toml:"command" json:"command"`
	Args    []string `toml:"args,omitempty" json:"args,omitempty"`
}

type LogConfig struct {
	Level      string `toml:"level" json:"level"`
	File       string `toml:"file,omitempty" json:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" json:"max_backups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Multiplexer: MultiplexerTmux,
		Picker: PickerConfig{
			Command: defaultPicker,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to false when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return false
	}
	return *c.TelemetryEnabled
}

// IsHistoryEnabled returns whether events are recorded to the history store.
// Defaults to true when the field is not set.
func (c *Config) IsHistoryEnabled() bool {
	if c.HistoryEnabled == nil {
		return true
	}
	return *c.HistoryEnabled
}

// LogFilePath returns the configured log file or the default under the state dir.
func (c *Config) LogFilePath(env Env) string {
	if c.Log.File != "" {
		return userpath.Resolve(c.Log.File, env.Home, env.StateDir())
	}
	return filepath.Join(env.StateDir(), LogFileName)
}

func (c *Config) HistoryPath(env Env) string {
	return filepath.Join(env.StateDir(), HistoryFileName)
}

// LoadConfig reads the config file from the env's config directory. A missing
// file yields DefaultConfig.
func LoadConfig(env Env) (*Config, error) {
	return LoadConfigFrom(env.ConfigFilePath())
}

// LoadConfigFrom reads a TOML config file. Keys missing from the file keep
// their default values.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Multiplexer == "" {
		cfg.Multiplexer = MultiplexerTmux
	}
	if cfg.Picker.Command == "" {
		cfg.Picker.Command = defaultPicker
	}
	return cfg, nil
}

// ResolveProjectsConfigPath picks the root projects file. Precedence: the
// --projects-file flag, then $AXL_PROJECTS_CONFIG_PATH, then the config file,
// then $XDG_CONFIG_HOME/axl/projects.yml.
func ResolveProjectsConfigPath(flag string, env Env, cfg *Config) string {
	cwd, _ := os.Getwd()
	switch {
	case flag != "":
		return userpath.Resolve(flag, env.Home, cwd)
	case env.ProjectsConfigPath != "":
		return userpath.Resolve(env.ProjectsConfigPath, env.Home, cwd)
	case cfg != nil && cfg.ProjectsConfigPath != "":
		return userpath.Resolve(cfg.ProjectsConfigPath, env.Home, env.ConfigDir())
	default:
		return env.DefaultProjectsConfigPath()
	}
}
