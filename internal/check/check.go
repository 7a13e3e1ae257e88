package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/kastheco/axl/project"
)

// Status represents the state of a single audited item.
type Status int

const (
	StatusOK      Status = iota // present and usable
	StatusSkipped               // optional and absent
	StatusMissing               // required and absent
	StatusBroken                // present but unusable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusMissing:
		return "missing"
	case StatusBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Entry is one item's audit result.
type Entry struct {
	Name     string
	Required bool
	Status   Status
	Detail   string // e.g. binary path, error message
}

// Tool is an external program axl drives.
type Tool struct {
	Name     string
	Required bool
	Purpose  string
}

// Tools returns the programs axl shells out to. picker is the configured
// picker command.
func Tools(picker string) []Tool {
	if picker == "" {
		picker = "fzf"
	}
	return []Tool{
		{Name: "tmux", Required: true, Purpose: "sessions"},
		{Name: picker, Required: true, Purpose: "picker"},
		{Name: "git", Required: true, Purpose: "clone"},
		{Name: "zoxide", Required: false, Purpose: "scratch --dir lookups"},
	}
}

// AuditResult is the complete output of axl check.
type AuditResult struct {
	Tools    []Entry
	Projects []Entry
}

// Audit checks every tool and the projects file. lookPath defaults to
// exec.LookPath.
func Audit(tools []Tool, projectsFile, home string, lookPath func(string) (string, error)) *AuditResult {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &AuditResult{
		Tools:    AuditTools(tools, lookPath),
		Projects: AuditProjects(projectsFile, home),
	}
}

func AuditTools(tools []Tool, lookPath func(string) (string, error)) []Entry {
	entries := make([]Entry, 0, len(tools))
	for _, t := range tools {
		e := Entry{Name: t.Name, Required: t.Required}
		path, err := lookPath(t.Name)
		switch {
		case err == nil:
			e.Status = StatusOK
			e.Detail = path
		case t.Required:
			e.Status = StatusMissing
			e.Detail = "needed for " + t.Purpose
		default:
			e.Status = StatusSkipped
			e.Detail = "optional, used for " + t.Purpose
		}
		entries = append(entries, e)
	}
	return entries
}

// AuditProjects loads and resolves the projects file and checks that its
// projects directory exists.
func AuditProjects(projectsFile, home string) []Entry {
	file := Entry{Name: "projects file", Required: true}
	dir := Entry{Name: "projects directory", Required: true}

	_, resolved, err := project.NewResolver(home).ResolveFile(projectsFile)
	if err != nil {
		file.Status = StatusBroken
		file.Detail = err.Error()
		if errors.Is(err, fs.ErrNotExist) {
			file.Status = StatusMissing
			file.Detail = projectsFile + " (run axl setup)"
		}
		dir.Status = StatusSkipped
		dir.Detail = "projects file not readable"
		return []Entry{file, dir}
	}

	file.Status = StatusOK
	file.Detail = fmt.Sprintf("%s (%d projects)", projectsFile, len(resolved.Projects))

	if info, err := os.Stat(resolved.ProjectsDirectory); err != nil {
		dir.Status = StatusMissing
		dir.Detail = resolved.ProjectsDirectory
	} else if !info.IsDir() {
		dir.Status = StatusBroken
		dir.Detail = resolved.ProjectsDirectory + " is not a directory"
	} else {
		dir.Status = StatusOK
		dir.Detail = resolved.ProjectsDirectory
	}
	return []Entry{file, dir}
}

// Summary returns (ok, total) counts across all checks.
func (r *AuditResult) Summary() (int, int) {
	ok, total := 0, 0
	for _, e := range r.Entries() {
		if e.Status == StatusSkipped {
			continue // don't count optional tools
		}
		total++
		if e.Status == StatusOK {
			ok++
		}
	}
	return ok, total
}

func (r *AuditResult) Entries() []Entry {
	return append(append([]Entry{}, r.Tools...), r.Projects...)
}
