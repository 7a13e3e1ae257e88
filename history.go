package main

import (
	"strings"

	"github.com/kastheco/axl/app"
	"github.com/kastheco/axl/config/auditlog"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var opts app.HistoryOptions
	var output string

	kinds := make([]string, 0, len(auditlog.Kinds()))
	for _, k := range auditlog.Kinds() {
		kinds = append(kinds, k.String())
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "show recently opened and killed sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := app.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			opts.Output = format
			return runApp(cmd, func(a *app.App) error {
				return a.PrintHistory(opts)
			})
		},
	}
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 20, "maximum number of events")
	cmd.Flags().StringSliceVarP(&opts.Kinds, "kind", "k", nil, "only these kinds ("+strings.Join(kinds, ", ")+")")
	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "only events for this project")
	cmd.Flags().StringVarP(&output, "output", "o", string(app.OutputDebug), "json, json-raw or yaml; anything else prints a table")
	return cmd
}
