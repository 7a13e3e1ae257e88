package tmux

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/kastheco/axl/cmd"
	"github.com/kastheco/axl/log"
	"github.com/kastheco/axl/session"
)

const (
	Name = "tmux"

	// scratchSlots bounds UniqueSession to the names "0" through "9".
	scratchSlots = 10
)

var logs = log.For(Name)

var whiteSpaceRegex = regexp.MustCompile(`\s+`)

// SanitizeName mirrors the renaming tmux applies itself, so has-session and
// switch-client look up the name tmux actually stored.
func SanitizeName(name string) string {
	name = whiteSpaceRegex.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, ".", "_")
	return strings.ReplaceAll(name, ":", "_")
}

// Tmux drives the tmux binary through a cmd.Executor.
type Tmux struct {
	cmdExec cmd.Executor
	// inSession is true when $TMUX was set at start-up.
	inSession bool
	// stderr receives user-facing notices such as failed session creation.
	stderr io.Writer
}

var _ session.Multiplexer = (*Tmux)(nil)

// NewWithDeps creates a Tmux with provided dependencies for testing.
func NewWithDeps(cmdExec cmd.Executor, inSession bool, stderr io.Writer) *Tmux {
	return &Tmux{cmdExec: cmdExec, inSession: inSession, stderr: stderr}
}

func (t *Tmux) Name() string {
	return Name
}

func (t *Tmux) Open(path, name string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &session.ProjectPathDoesNotExistError{Path: path}
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	name = SanitizeName(name)

	if !t.inSession {
		// -A attaches when the session already exists.
		if err := t.cmdExec.Run(attached("new-session", "-A", "-s", name, "-c", path)); err != nil {
			return fmt.Errorf("failed to open session %s: %w", name, err)
		}
		return nil
	}

	if !t.HasSession(name) {
		if err := t.cmdExec.Run(exec.Command("tmux", "new-session", "-d", "-s", name, "-c", path)); err != nil {
			return t.createFailed(name, err)
		}
		logs.Info.Printf("created tmux session %s in %s", name, path)
	}
	return t.switchClient(name)
}

func (t *Tmux) OpenExisting(name string) error {
	if !t.inSession {
		if err := t.cmdExec.Run(attached("attach-session", "-t", name)); err != nil {
			return fmt.Errorf("failed to attach to session %s: %w", name, err)
		}
		return nil
	}
	return t.switchClient(name)
}

func (t *Tmux) ListSessions() ([]string, error) {
	output, err := t.cmdExec.Output(exec.Command("tmux", "ls"))
	if err != nil {
		// Exit code 1 means no server is running, hence no sessions.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, session.ErrNoSessionsFound
		}
		return nil, fmt.Errorf("failed to list tmux sessions: %w", err)
	}

	var names []string
	for _, line := range strings.Split(string(output), "\n") {
		name, _, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, session.ErrNoSessionsFound
	}
	return names, nil
}

func (t *Tmux) CurrentSession() (string, error) {
	if !t.inSession {
		return "", nil
	}
	output, err := t.cmdExec.Output(exec.Command("tmux", "display-message", "-p", "#S"))
	if err != nil {
		return "", fmt.Errorf("failed to read current tmux session: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func (t *Tmux) KillSessions(names []string, current string) error {
	var errs []error
	killCurrent := false
	for _, name := range names {
		if current != "" && name == current {
			killCurrent = true
			continue
		}
		if err := t.kill(name); err != nil {
			errs = append(errs, err)
		}
	}
	// Killing our own session detaches this client, so it goes last.
	if killCurrent {
		if err := t.kill(current); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *Tmux) UniqueSession(home string) error {
	for i := 0; i < scratchSlots; i++ {
		name := strconv.Itoa(i)
		if t.HasSession(name) {
			continue
		}
		if err := t.cmdExec.Run(exec.Command("tmux", "new-session", "-d", "-s", name, "-c", home)); err != nil {
			return t.createFailed(name, err)
		}
		return t.OpenExisting(name)
	}
	logs.Info.Printf("every scratch session 0-%d already exists", scratchSlots-1)
	return nil
}

// HasSession reports whether a session with exactly this name exists.
func (t *Tmux) HasSession(name string) bool {
	// Using "-t name" does a prefix match, which is wrong. `-t=` does an exact match.
	return t.cmdExec.Run(exec.Command("tmux", "has-session", fmt.Sprintf("-t=%s", name))) == nil
}

func (t *Tmux) switchClient(name string) error {
	if err := t.cmdExec.Run(exec.Command("tmux", "switch-client", "-t", name)); err != nil {
		return fmt.Errorf("failed to switch to session %s: %w", name, err)
	}
	return nil
}

func (t *Tmux) kill(name string) error {
	if err := t.cmdExec.Run(exec.Command("tmux", "kill-session", "-t", name)); err != nil {
		logs.Error.Printf("failed to kill tmux session %s: %v", name, err)
		return fmt.Errorf("failed to kill session %s: %w", name, err)
	}
	logs.Info.Printf("killed tmux session %s", name)
	return nil
}

// createFailed tells the user and returns an error wrapping
// session.ErrCouldNotCreateSession.
func (t *Tmux) createFailed(name string, err error) error {
	logs.Warning.Printf("%v %s: %v", session.ErrCouldNotCreateSession, name, err)
	fmt.Fprintln(t.stderr, "Session failed to open.")
	return fmt.Errorf("%w: %s", session.ErrCouldNotCreateSession, name)
}

// attached builds a tmux command that takes over the terminal.
func attached(args ...string) *exec.Cmd {
	c := exec.Command("tmux", args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c
}
