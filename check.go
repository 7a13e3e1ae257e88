package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/kastheco/axl/config"
	"github.com/kastheco/axl/internal/check"
	"github.com/kastheco/axl/internal/userpath"
	"github.com/kastheco/axl/ui"
	"github.com/spf13/cobra"
)

// errUnhealthy is returned when health < 100% to signal exit code 1 without printing a message.
var errUnhealthy = errors.New("unhealthy")

// lookPath is swapped in tests.
var lookPath func(string) (string, error)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Audit the tools and files axl needs",
		Long: `Checks that the external programs axl drives are installed and that the
projects file loads:

  1. Tools    (tmux, the picker and git are required; zoxide is optional)
  2. Projects (projects file resolves, projects directory exists)

Exit code 0 if 100% healthy, exit code 1 otherwise.`,
		RunE: runCheck,
		// Suppress usage on error: health failures are not usage errors.
		SilenceUsage: true,
		// Suppress cobra's "Error: ..." line for the unhealthy sentinel.
		SilenceErrors: true,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	env, cfg, done, err := startup("check")
	if err != nil {
		return err
	}
	defer done()

	projectsFile := config.ResolveProjectsConfigPath(projectsFileFlag, env, cfg)
	result := check.Audit(check.Tools(cfg.Picker.Command), projectsFile, env.Home, lookPath)

	out := cmd.OutOrStdout()
	renderEntries(out, "Tools:", result.Tools, env.Home)
	renderEntries(out, "Projects:", result.Projects, env.Home)

	ok, total := result.Summary()
	pct := 0
	if total > 0 {
		pct = ok * 100 / total
	}

	fmt.Fprintf(out, "\nHealth: %d/%d OK (%d%%)\n", ok, total, pct)

	if pct < 100 {
		return errUnhealthy
	}
	return nil
}

func renderEntries(out io.Writer, title string, entries []check.Entry, home string) {
	fmt.Fprintf(out, "\n%s\n", ui.HeaderStyle.Render(title))
	for _, e := range entries {
		fmt.Fprintf(out, "  %s %-20s %s\n", statusGlyph(e.Status), e.Name, ui.MutedStyle.Render(userpath.Shorten(e.Detail, home)))
	}
}

func statusGlyph(s check.Status) string {
	switch s {
	case check.StatusOK:
		return ui.SuccessStyle.Render("✓")
	case check.StatusSkipped:
		return ui.MutedStyle.Render("–")
	default:
		return ui.ErrorStyle.Render("✗")
	}
}
