// Package app implements the axl commands on top of the resolver, the picker
// and the multiplexer. Every collaborator is a field so tests can swap it.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/kastheco/axl/cmd"
	"github.com/kastheco/axl/config"
	"github.com/kastheco/axl/config/auditlog"
	"github.com/kastheco/axl/log"
	"github.com/kastheco/axl/picker"
	"github.com/kastheco/axl/project"
	"github.com/kastheco/axl/session"
	"github.com/kastheco/axl/session/tmux"
	"github.com/kastheco/axl/session/zoxide"
	"github.com/kastheco/axl/ui"
)

// DirFinder looks up directories from keywords.
type DirFinder interface {
	Query(keywords string) (string, error)
	QueryInteractive(keywords string) (string, error)
}

type App struct {
	Env    config.Env
	Config *config.Config
	// ProjectsFile is the root projects file after flag, env and config
	// precedence has been applied.
	ProjectsFile string

	Exec    cmd.Executor
	Picker  picker.Picker
	Mux     session.Multiplexer
	Dirs    DirFinder
	History auditlog.Logger
	Confirm ui.Confirmer

	Out io.Writer
	Err io.Writer
}

// Options are the global flags shared by every command.
type Options struct {
	ConfigPath   string
	ProjectsFile string
}

// New builds an App wired to the real tmux, fzf and zoxide binaries.
func New(env config.Env, cfg *config.Config, opts Options) (*App, error) {
	if cfg.Multiplexer != "" && cfg.Multiplexer != config.MultiplexerTmux {
		return nil, fmt.Errorf("unsupported multiplexer %q", cfg.Multiplexer)
	}

	exec := cmd.MakeExecutor()
	inSession := env.InMultiplexerSession()

	a := &App{
		Env:          env,
		Config:       cfg,
		ProjectsFile: config.ResolveProjectsConfigPath(opts.ProjectsFile, env, cfg),
		Exec:         exec,
		Picker:       picker.NewFzf(cfg.Picker.Command, cfg.Picker.Args, exec),
		Mux:          tmux.NewWithDeps(exec, inSession, os.Stderr),
		Dirs:         zoxide.New(exec, inSession),
		History:      auditlog.NopLogger(),
		Confirm:      ui.HuhConfirmer{},
		Out:          os.Stdout,
		Err:          os.Stderr,
	}

	if cfg.IsHistoryEnabled() {
		history, err := auditlog.NewSQLiteLogger(cfg.HistoryPath(env))
		if err != nil {
			// History is a convenience; a broken database must not block sessions.
			log.WarningLog.Printf("history disabled: %v", err)
		} else {
			a.History = history
		}
	}
	return a, nil
}

// Close releases the history database.
func (a *App) Close() error {
	if a.History == nil {
		return nil
	}
	return a.History.Close()
}

func (a *App) resolver() *project.Resolver {
	return project.NewResolver(a.Env.Home)
}

// load reads and resolves the root projects file.
func (a *App) load() (*project.ConfigProjectDirectory, *project.ResolvedProjectDirectory, error) {
	log.DebugLog.Printf("loading projects file %s", a.ProjectsFile)
	return a.resolver().ResolveFile(a.ProjectsFile)
}

// projects resolves the projects file, keeps those matching tags and
// materializes them.
func (a *App) projects(tags []string) (*project.ResolvedProjectDirectory, []project.ResolvedProject, error) {
	_, resolved, err := a.load()
	if err != nil {
		return nil, nil, err
	}
	filtered := resolved.Filter(tags)
	projects, err := filtered.ResolvedProjects()
	if err != nil {
		return nil, nil, err
	}
	return filtered, projects, nil
}

func (a *App) muxName() string {
	if a.Mux == nil {
		return ""
	}
	return a.Mux.Name()
}
