package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/kastheco/axl/config/auditlog"
	"github.com/kastheco/axl/internal/userpath"
	"github.com/kastheco/axl/log"
	"github.com/kastheco/axl/picker"
	"github.com/kastheco/axl/project"
	"github.com/kastheco/axl/session"
)

// DefaultScratchName is the session name used by Scratch without --name.
const DefaultScratchName = "scratch"

type OpenOptions struct {
	Tags []string
	// Name skips the picker and opens the project with exactly this name.
	Name string
}

// Open picks a tracked project and opens a session in its checkout.
func (a *App) Open(opts OpenOptions) error {
	_, projects, err := a.projects(opts.Tags)
	if err != nil {
		return err
	}

	var p project.ResolvedProject
	if opts.Name != "" {
		p, err = findProject(projects, opts.Name)
	} else {
		p, err = project.PickProject(a.Picker, projects)
	}
	if err != nil {
		return err
	}

	if err := a.Mux.Open(p.Path, p.SafeName); err != nil {
		return a.openFailed(err,
			auditlog.WithProject(p.Name, p.Path, p.Remote),
			auditlog.WithSession(p.SafeName, a.muxName()))
	}
	a.History.Emit(auditlog.NewEvent(auditlog.EventSessionOpened, "opened "+p.Name,
		auditlog.WithProject(p.Name, p.Path, p.Remote),
		auditlog.WithSession(p.SafeName, a.muxName())))
	return nil
}

func findProject(projects []project.ResolvedProject, name string) (project.ResolvedProject, error) {
	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}
	return project.ResolvedProject{}, fmt.Errorf("%w: no project named %q", project.ErrNoProjectSelected, name)
}

type ScratchOptions struct {
	Name string
	// Dir is a directory, or zoxide keywords when no such directory exists.
	Dir         string
	Interactive bool
}

// Scratch opens a session that is not tied to a tracked project.
func (a *App) Scratch(opts ScratchOptions) error {
	name := opts.Name
	if name == "" {
		name = DefaultScratchName
	}
	dir, err := a.scratchDir(opts)
	if err != nil {
		return err
	}

	safe := project.SafeName(name)
	if err := a.Mux.Open(dir, safe); err != nil {
		return a.openFailed(err,
			auditlog.WithProject("", dir, ""),
			auditlog.WithSession(safe, a.muxName()))
	}
	a.History.Emit(auditlog.NewEvent(auditlog.EventScratchOpened, "opened scratch session in "+dir,
		auditlog.WithProject("", dir, ""),
		auditlog.WithSession(safe, a.muxName())))
	return nil
}

func (a *App) scratchDir(opts ScratchOptions) (string, error) {
	if opts.Dir == "" {
		if opts.Interactive {
			return a.Dirs.QueryInteractive("")
		}
		return a.Env.Home, nil
	}

	dir := userpath.Expand(opts.Dir, a.Env.Home)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, nil
	}
	log.DebugLog.Printf("%s is not a directory, asking zoxide", dir)
	if opts.Interactive {
		return a.Dirs.QueryInteractive(opts.Dir)
	}
	return a.Dirs.Query(opts.Dir)
}

// Kill lets the user choose running sessions and kills them.
func (a *App) Kill() error {
	sessions, err := a.Mux.ListSessions()
	if err != nil {
		return err
	}
	picked, err := a.Picker.PickMany(sessions)
	if err != nil {
		if errors.Is(err, picker.ErrNoItemsFound) {
			return err
		}
		return fmt.Errorf("failed to pick sessions: %w", err)
	}
	if len(picked) == 0 {
		log.InfoLog.Printf("no sessions picked, nothing to kill")
		return nil
	}

	current, err := a.Mux.CurrentSession()
	if err != nil {
		return err
	}
	// Record before killing: killing the current session ends this process.
	for _, name := range picked {
		a.History.Emit(auditlog.NewEvent(auditlog.EventSessionKilled, "killed "+name,
			auditlog.WithSession(name, a.muxName())))
	}
	return a.Mux.KillSessions(picked, current)
}

// Home opens a session in the home directory under the lowest free number.
func (a *App) Home() error {
	if err := a.Mux.UniqueSession(a.Env.Home); err != nil {
		return a.openFailed(err,
			auditlog.WithProject("", a.Env.Home, ""),
			auditlog.WithSession("", a.muxName()))
	}
	return nil
}

// openFailed records a session that did not open. A session the multiplexer
// refused to create has already been reported on stderr and is not an error.
func (a *App) openFailed(err error, opts ...auditlog.EventOption) error {
	opts = append(opts, auditlog.WithLevel("error"))
	a.History.Emit(auditlog.NewEvent(auditlog.EventSessionFailed, err.Error(), opts...))
	if errors.Is(err, session.ErrCouldNotCreateSession) {
		log.InfoLog.Printf("session not opened: %v", err)
		return nil
	}
	return err
}
