package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kastheco/axl/app"
	"github.com/kastheco/axl/config"
	initcmd "github.com/kastheco/axl/internal/initcmd"
	sentrypkg "github.com/kastheco/axl/internal/sentry"
	"github.com/kastheco/axl/internal/userpath"
	"github.com/kastheco/axl/log"
	"github.com/kastheco/axl/picker"
	"github.com/kastheco/axl/project"
	"github.com/kastheco/axl/ui"
	"github.com/spf13/cobra"
)

var (
	version          = "0.3.0"
	configFlag       string
	projectsFileFlag string
	verboseFlag      bool
	rootCmd          = &cobra.Command{
		Use:   "axl",
		Short: "axl - Open tmux sessions for your git projects.",
		Long: `axl binds tmux sessions to project checkouts. Projects are listed in a
projects file that includes group files; group tags apply to every project
they include.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cfg, done, err := startup("debug")
			if err != nil {
				return err
			}
			defer done()

			info := struct {
				Env          config.Env     `json:"env"`
				ConfigFile   string         `json:"config_file"`
				ProjectsFile string         `json:"projects_file"`
				LogFile      string         `json:"log_file"`
				HistoryFile  string         `json:"history_file"`
				Telemetry    bool           `json:"telemetry_active"`
				Config       *config.Config `json:"config"`
			}{
				Env:          env,
				ConfigFile:   configPath(env),
				ProjectsFile: config.ResolveProjectsConfigPath(projectsFileFlag, env, cfg),
				LogFile:      cfg.LogFilePath(env),
				HistoryFile:  cfg.HistoryPath(env),
				Telemetry:    sentrypkg.IsEnabled(),
				Config:       cfg,
			}
			data, _ := json.MarshalIndent(info, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of axl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "axl version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "https://github.com/kastheco/axl/releases/tag/v%s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Path to config.toml (default $XDG_CONFIG_HOME/axl/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&projectsFileFlag, "projects-file", "f", "",
		"Root projects file (overrides $"+config.ProjectsConfigEnvKey+" and the config file)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Mirror debug logs to stderr")

	var forceFlag bool
	setupCmd := &cobra.Command{
		Use:     "setup",
		Aliases: []string{"init"},
		Short:   "Write a starter config and projects file",
		Long: `Ask for the projects directory and projects file, then write:
  1. ~/.config/axl/config.toml
  2. the projects file and an example group file next to it
Existing files are kept unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initcmd.Run(initcmd.Options{
				Force: forceFlag,
				Env:   config.EnvFromOS(os.Getenv),
				Out:   cmd.OutOrStdout(),
			})
		},
	}
	setupCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing files")

	projectCmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Open, list and track projects",
	}
	projectCmd.AddCommand(newProjectCmds()...)

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(newProjectCmds()...)
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func configPath(env config.Env) string {
	if configFlag != "" {
		return userpath.Expand(configFlag, env.Home)
	}
	return env.ConfigFilePath()
}

// startup loads the config and wires logging and crash reporting. done must
// be called before exit.
func startup(command string) (config.Env, *config.Config, func(), error) {
	env := config.EnvFromOS(os.Getenv)
	cfg, err := config.LoadConfigFrom(configPath(env))
	if err != nil {
		return env, nil, func() {}, err
	}

	if err := log.Initialize(log.Options{
		File:       cfg.LogFilePath(env),
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Verbose:    verboseFlag,
		Version:    version,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}

	if err := sentrypkg.Init(version, cfg.IsTelemetryEnabled(), cfg.SentryDSN); err != nil {
		// Non-fatal: sentry failure should not prevent startup
		log.WarningLog.Printf("failed to init sentry: %v", err)
	}
	sentrypkg.SetCommand(command, cfg.Multiplexer, env.InMultiplexerSession())
	log.Logger().Debug("starting",
		slog.String("command", command),
		slog.String("config", configPath(env)),
		slog.Bool("in_multiplexer", env.InMultiplexerSession()))

	return env, cfg, func() {
		sentrypkg.Flush()
		log.Close()
	}, nil
}

// runApp builds the App for cmd and runs fn with it.
func runApp(cmd *cobra.Command, fn func(*app.App) error) error {
	env, cfg, done, err := startup(cmd.Name())
	if err != nil {
		return err
	}
	defer done()

	a, err := app.New(env, cfg, app.Options{ProjectsFile: projectsFileFlag})
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.WarningLog.Printf("failed to close history: %v", err)
		}
	}()
	a.Out = cmd.OutOrStdout()
	a.Err = cmd.ErrOrStderr()

	err = fn(a)
	switch {
	case err == nil:
	case isUserAbort(err):
		log.InfoLog.Printf("%s: %v", cmd.CommandPath(), err)
	default:
		log.WarningLog.Printf("%s failed: %v", cmd.CommandPath(), err)
		sentrypkg.CaptureError(err)
	}
	return err
}

// isUserAbort reports errors that are the user's choice rather than a fault.
func isUserAbort(err error) bool {
	return errors.Is(err, project.ErrNoProjectSelected) ||
		errors.Is(err, project.ErrAborted) ||
		errors.Is(err, picker.ErrNoItemSelected)
}

func main() {
	defer sentrypkg.RecoverPanic()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUnhealthy) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", ui.ErrorStyle.Render("[CMD ERROR]"), err)
		}
		sentrypkg.Flush()
		os.Exit(1)
	}
}
