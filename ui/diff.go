package ui

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp classifies a line of a line diff.
type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffInsert
	DiffDelete
)

type DiffLine struct {
	Op   DiffOp
	Text string
}

// LineDiff compares before and after line by line.
func LineDiff(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			out = append(out, DiffLine{Op: op, Text: line})
		}
	}
	return out
}

// RenderDiff formats a line diff with +/- gutters under a header naming path.
func RenderDiff(path, before, after string) string {
	var sb strings.Builder
	sb.WriteString(diffHunkStyle.Render("project file diff: "+path) + "\n----\n")
	for _, line := range LineDiff(before, after) {
		switch line.Op {
		case DiffInsert:
			sb.WriteString(diffAddStyle.Render("+" + line.Text))
		case DiffDelete:
			sb.WriteString(diffDeleteStyle.Render("-" + line.Text))
		default:
			sb.WriteString(" " + line.Text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
