package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kastheco/axl/config/auditlog"
	"github.com/kastheco/axl/internal/userpath"
	"github.com/kastheco/axl/log"
	"github.com/kastheco/axl/project"
	"github.com/kastheco/axl/session/git"
	"github.com/kastheco/axl/ui"
)

type ListOptions struct {
	Tags   []string
	Output OutputFormat
}

// List prints the tracked projects.
func (a *App) List(opts ListOptions) error {
	_, projects, err := a.projects(opts.Tags)
	if err != nil {
		return err
	}
	return writeProjects(a.Out, opts.Output, projects)
}

// ListTags prints every tag used by the tracked projects.
func (a *App) ListTags(opts ListOptions) error {
	_, resolved, err := a.load()
	if err != nil {
		return err
	}
	return writeTags(a.Out, opts.Output, resolved.Filter(opts.Tags).Tags())
}

// Report compares the projects directory with the tracked projects.
func (a *App) Report(opts ListOptions) error {
	resolved, configured, err := a.projects(opts.Tags)
	if err != nil {
		return err
	}
	scan, err := project.ScanProjects(resolved.ProjectsDirectory, nil)
	if err != nil {
		return err
	}
	report := project.BuildReport(resolved.ProjectsDirectory, configured, scan)

	if done, err := writeStructured(a.Out, opts.Output, report); done {
		return err
	}
	return renderReport(a.Out, report, a.Env.Home)
}

func renderReport(w io.Writer, r project.Report, home string) error {
	fmt.Fprintln(w, ui.HeaderStyle.Render(fmt.Sprintf("PROJECTS REPORT (%s)", userpath.Shorten(r.ProjectsDirectory, home))))
	fmt.Fprintf(w, "  %-14s %d\n", "file system:", len(r.FileSystem))
	fmt.Fprintf(w, "  %-14s %d\n", "config list:", len(r.Config))
	fmt.Fprintf(w, "  %-14s %d\n", "not tracked:", len(r.Untracked))
	fmt.Fprintf(w, "  %-14s %d\n", "ignored:", len(r.Ignored))

	if len(r.Untracked) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.WarningStyle.Render("Not tracked:"))
		for _, p := range r.Untracked {
			fmt.Fprintf(w, "  %s %s\n", p.Name, ui.MutedStyle.Render(p.Remote))
		}
	}
	if len(r.Ignored) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.MutedStyle.Render("Ignored (no origin remote):"))
		for _, dir := range r.Ignored {
			fmt.Fprintf(w, "  %s\n", userpath.Shorten(dir, home))
		}
	}
	return nil
}

type ImportOptions struct {
	// Directory defaults to the projects directory of the root file.
	Directory string
}

// Import offers the checkouts whose remote is not tracked yet and appends
// the chosen ones to the root projects file.
func (a *App) Import(opts ImportOptions) error {
	root, resolved, err := a.load()
	if err != nil {
		return err
	}

	dir := resolved.ProjectsDirectory
	if opts.Directory != "" {
		dir = userpath.Resolve(opts.Directory, a.Env.Home, workingDir())
	}
	scan, err := project.ScanProjects(dir, nil)
	if err != nil {
		return err
	}

	candidates := project.UntrackedRemotes(scan, resolved)
	if len(candidates) == 0 {
		fmt.Fprintf(a.Out, "No untracked projects in %s\n", userpath.Shorten(dir, a.Env.Home))
		return nil
	}

	picked, err := project.PickConfigProjects(a.Picker, candidates)
	if err != nil {
		return err
	}
	return a.addProjects(root, picked)
}

type NewOptions struct {
	Remote string
	// Init creates an empty repository instead of cloning.
	Init bool
}

// New checks out a project and starts tracking it.
func (a *App) New(opts NewOptions) error {
	root, resolved, err := a.load()
	if err != nil {
		return err
	}
	if resolved.HasRemote(opts.Remote) {
		fmt.Fprintf(a.Out, "Project %s already exists in %s\n", opts.Remote, userpath.Shorten(root.SourcePath, a.Env.Home))
		return nil
	}

	p, err := project.NewResolvedProject(resolved.ProjectsDirectory, opts.Remote, nil)
	if err != nil {
		return err
	}

	if opts.Init {
		if err := initRepository(p.Path, p.Remote); err != nil {
			return err
		}
	} else {
		if _, err := os.Stat(p.Path); err == nil {
			return fmt.Errorf("cannot clone %s: %s already exists", p.Remote, p.Path)
		}
		if err := git.Clone(a.Exec, p.Remote, p.Path); err != nil {
			return err
		}
		a.History.Emit(auditlog.NewEvent(auditlog.EventProjectCloned, "cloned "+p.Name,
			auditlog.WithProject(p.Name, p.Path, p.Remote)))
	}

	return a.addProjects(root, []project.ConfigProject{{Remote: opts.Remote}})
}

// initRepository leaves an existing checkout alone.
func initRepository(path, remote string) error {
	_, err := git.OriginURL(path)
	switch {
	case err == nil:
		log.InfoLog.Printf("%s is already a repository, skipping init", path)
		return nil
	case errors.Is(err, git.ErrNotRepository):
		return git.InitWithOrigin(path, remote)
	default:
		return err
	}
}

// addProjects shows the rewrite of the root file as a diff and saves it once
// a.Confirm agrees.
func (a *App) addProjects(root *project.ConfigProjectDirectory, projects []project.ConfigProject) error {
	proposal, err := project.ProposeAddition(root, projects)
	if err != nil {
		return err
	}
	if !proposal.Changed() {
		return nil
	}

	path := userpath.Shorten(root.SourcePath, a.Env.Home)
	fmt.Fprint(a.Out, ui.RenderDiff(path, proposal.Before, proposal.After))

	ok, err := a.Confirm.Confirm(
		fmt.Sprintf("Save changes to %s?", path),
		fmt.Sprintf("%d project(s) will be added.", len(projects)),
	)
	if err != nil {
		return err
	}
	if !ok {
		return project.ErrAborted
	}

	if err := proposal.Commit(); err != nil {
		return err
	}
	for _, p := range projects {
		a.History.Emit(auditlog.NewEvent(auditlog.EventProjectAdded, "added "+p.Remote,
			auditlog.WithProject(p.Name, "", p.Remote)))
	}
	fmt.Fprintln(a.Out, ui.SuccessStyle.Render(fmt.Sprintf("✓ %s updated", path)))
	return nil
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
