package initcmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/kastheco/axl/config"
	"github.com/kastheco/axl/internal/initcmd/scaffold"
	"github.com/kastheco/axl/internal/userpath"
	"github.com/kastheco/axl/ui"
)

// Options holds the CLI flags for axl setup.
type Options struct {
	Force bool // overwrite existing files
	Env   config.Env
	Out   io.Writer
	// Ask fills in the answers. Defaults to an interactive form.
	Ask func(*Answers) error
}

// Answers are what setup asks the user.
type Answers struct {
	ProjectsDirectory string
	ProjectsFile      string
}

// DefaultAnswers pre-fills the form.
func DefaultAnswers(env config.Env) Answers {
	return Answers{
		ProjectsDirectory: "~/projects",
		ProjectsFile:      userpath.Shorten(env.DefaultProjectsConfigPath(), env.Home),
	}
}

// Run executes the axl setup workflow.
func Run(opts Options) error {
	ask := opts.Ask
	if ask == nil {
		ask = askInteractive
	}

	answers := DefaultAnswers(opts.Env)
	if err := ask(&answers); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	values := scaffold.Values{
		ProjectsDirectory: userpath.Resolve(answers.ProjectsDirectory, opts.Env.Home, opts.Env.Home),
		ProjectsFile:      userpath.Resolve(answers.ProjectsFile, opts.Env.Home, opts.Env.ConfigDir()),
	}

	fmt.Fprintln(opts.Out, "\nWriting config...")
	results, err := scaffold.ScaffoldAll(opts.Env.ConfigDir(), values, opts.Force)
	if err != nil {
		return err
	}
	for _, r := range results {
		status := ui.SuccessStyle.Render("OK")
		if !r.Created {
			status = ui.MutedStyle.Render("SKIP (exists)")
		}
		fmt.Fprintf(opts.Out, "  %-40s %s\n", userpath.Shorten(r.Path, opts.Env.Home), status)
	}

	fmt.Fprintln(opts.Out, "\nDone! Edit the projects file, then run 'axl open'.")
	return nil
}

func askInteractive(a *Answers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Projects directory").
				Description("Where your checkouts live. Each project is cloned into <dir>/<name>.").
				Value(&a.ProjectsDirectory).
				Validate(notEmpty),
			huh.NewInput().
				Title("Projects file").
				Description("Root file listing your projects and group files.").
				Value(&a.ProjectsFile).
				Validate(yamlOrTOML),
		),
	).WithTheme(ui.ThemeRosePine()).Run()
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func yamlOrTOML(s string) error {
	switch filepath.Ext(s) {
	case ".yml", ".yaml", ".toml":
		return nil
	}
	return fmt.Errorf("must end in .yml, .yaml or .toml")
}
