package picker

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kastheco/axl/cmd"
	"github.com/kastheco/axl/log"
)

const DefaultCommand = "fzf"

// Exit codes fzf uses when it ran but nothing was chosen.
const (
	exitNoMatch     = 1
	exitInterrupted = 130
)

var logs = log.For("picker")

// Fzf runs fzf with candidates on stdin and reads the selection from stdout.
// fzf draws its interface on /dev/tty, so piping both ends is safe.
type Fzf struct {
	command string
	args    []string
	cmdExec cmd.Executor
}

func NewFzf(command string, args []string, cmdExec cmd.Executor) *Fzf {
	if command == "" {
		command = DefaultCommand
	}
	return &Fzf{command: command, args: args, cmdExec: cmdExec}
}

var _ Picker = (*Fzf)(nil)

func (f *Fzf) PickOne(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoItemsFound
	}
	out, err := f.run(candidates)
	if err != nil {
		if isAbort(err) {
			return "", ErrNoItemSelected
		}
		return "", err
	}
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", ErrNoItemSelected
}

func (f *Fzf) PickMany(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, ErrNoItemsFound
	}
	out, err := f.run(candidates, "--multi")
	if err != nil {
		if isAbort(err) {
			return []string{}, nil
		}
		return nil, err
	}
	picked := []string{}
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			picked = append(picked, line)
		}
	}
	return picked, nil
}

func (f *Fzf) run(candidates []string, extra ...string) (string, error) {
	args := append(append([]string{}, f.args...), extra...)
	c := exec.Command(f.command, args...)
	c.Stderr = os.Stderr
	logs.Debug.Printf("picking among %d candidates with %s", len(candidates), cmd.ToString(c))

	out, err := f.cmdExec.Pipe(c, strings.Join(candidates, "\n"))
	if err != nil {
		if isAbort(err) {
			logs.Info.Printf("%s ended without a selection: %v", f.command, err)
			return "", err
		}
		logs.Warning.Printf("%s failed: %v", f.command, err)
		return "", fmt.Errorf("failed to run %s: %w", f.command, err)
	}
	return string(out), nil
}

// isAbort reports whether fzf ran but ended without a selection: exit 1 for
// no match, 130 for ctrl-c or esc. Any other exit, such as 2 for bad
// arguments, is a failure.
func isAbort(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	code := exitErr.ExitCode()
	return code == exitNoMatch || code == exitInterrupted
}
