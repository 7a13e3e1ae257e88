package main

import (
	"strings"

	"github.com/kastheco/axl/app"
	"github.com/kastheco/axl/ui"
	"github.com/spf13/cobra"
)

func outputFlagUsage() string {
	names := make([]string, 0, len(app.OutputFormats()))
	for _, f := range app.OutputFormats() {
		names = append(names, string(f))
	}
	return "output format (" + strings.Join(names, ", ") + ")"
}

// newProjectCmds builds the project subcommands. It is called once for
// `axl project` and once for the top-level shortcuts, since a cobra command
// can only have one parent.
func newProjectCmds() []*cobra.Command {
	// axl open
	var openTags []string
	var openName string
	openCmd := &cobra.Command{
		Use:   "open",
		Short: "pick a project and open its session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(a *app.App) error {
				return a.Open(app.OpenOptions{Tags: openTags, Name: openName})
			})
		},
	}
	openCmd.Flags().StringSliceVarP(&openTags, "tags", "t", nil, "only offer projects with one of these tags (a,b,c)")
	openCmd.Flags().StringVarP(&openName, "name", "n", "", "open this project without picking")

	// axl scratch
	var scratch app.ScratchOptions
	scratchCmd := &cobra.Command{
		Use:   "scratch",
		Short: "open a session that is not tied to a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(a *app.App) error {
				return a.Scratch(scratch)
			})
		},
	}
	scratchCmd.Flags().StringVarP(&scratch.Name, "name", "n", app.DefaultScratchName, "session name")
	scratchCmd.Flags().StringVarP(&scratch.Dir, "dir", "d", "", "directory, or zoxide keywords (default $HOME)")
	scratchCmd.Flags().BoolVarP(&scratch.Interactive, "interactive", "i", false, "choose the directory with zoxide's picker")

	// axl kill
	killCmd := &cobra.Command{
		Use:   "kill",
		Short: "pick running sessions and kill them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, (*app.App).Kill)
		},
	}

	// axl home
	homeCmd := &cobra.Command{
		Use:   "home",
		Short: "open a numbered session in the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, (*app.App).Home)
		},
	}

	// axl list, axl list-tags, axl report
	listCmd := newListCmd("list", "list tracked projects", (*app.App).List)
	listTagsCmd := newListCmd("list-tags", "list the tags used by tracked projects", (*app.App).ListTags)
	reportCmd := newListCmd("report", "compare the projects directory with tracked projects", (*app.App).Report)
	reportCmd.Flags().Lookup("output").Usage = "json, json-raw or yaml print the full report; anything else prints a summary"

	// axl import
	var importOpts app.ImportOptions
	var importYes bool
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "start tracking checkouts found in the projects directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(a *app.App) error {
				confirmWith(a, importYes)
				return a.Import(importOpts)
			})
		},
	}
	importCmd.Flags().StringVarP(&importOpts.Directory, "directory", "d", "", "directory to scan (default: projects_directory)")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "save without asking")

	// axl new
	var newOpts app.NewOptions
	var newYes bool
	newCmd := &cobra.Command{
		Use:   "new <remote>",
		Short: "clone a repository and start tracking it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newOpts.Remote = args[0]
			return runApp(cmd, func(a *app.App) error {
				confirmWith(a, newYes)
				return a.New(newOpts)
			})
		},
	}
	newCmd.Flags().BoolVar(&newOpts.Init, "init", false, "create an empty repository instead of cloning")
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "save without asking")

	return []*cobra.Command{openCmd, scratchCmd, killCmd, homeCmd, listCmd, listTagsCmd, importCmd, reportCmd, newCmd}
}

// confirmWith makes --yes answer every confirmation.
func confirmWith(a *app.App, yes bool) {
	if yes {
		a.Confirm = ui.AlwaysConfirm{}
	}
}

func newListCmd(use, short string, run func(*app.App, app.ListOptions) error) *cobra.Command {
	var tags []string
	var output string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := app.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			return runApp(cmd, func(a *app.App) error {
				return run(a, app.ListOptions{Tags: tags, Output: format})
			})
		},
	}
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "only include projects with one of these tags (a,b,c)")
	cmd.Flags().StringVarP(&output, "output", "o", string(app.OutputDebug), outputFlagUsage())
	return cmd
}
