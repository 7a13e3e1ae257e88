package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/kastheco/axl/config/auditlog"
	"github.com/kastheco/axl/ui"
)

type HistoryOptions struct {
	Limit   int
	Kinds   []string
	Project string
	Output  OutputFormat
}

// PrintHistory prints recorded events, newest first.
func (a *App) PrintHistory(opts HistoryOptions) error {
	filter := auditlog.QueryFilter{Project: opts.Project, Limit: opts.Limit}
	for _, k := range opts.Kinds {
		kind, err := parseKind(k)
		if err != nil {
			return err
		}
		filter.Kinds = append(filter.Kinds, kind)
	}

	events, err := a.History.Query(filter)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if events == nil {
		events = []auditlog.Event{}
	}
	if done, err := writeStructured(a.Out, opts.Output, events); done {
		return err
	}

	tw := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	for _, e := range events {
		target := e.Project
		if target == "" {
			target = e.Session
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			ui.MutedStyle.Render(e.Timestamp.Local().Format("2006-01-02 15:04:05")),
			e.Kind, target, e.Message)
	}
	return tw.Flush()
}

func parseKind(s string) (auditlog.EventKind, error) {
	for _, k := range auditlog.Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown history kind %q", s)
}
