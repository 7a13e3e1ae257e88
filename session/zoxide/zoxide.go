package zoxide

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kastheco/axl/cmd"
)

// ErrNoMatch is returned when zoxide has no directory for the query.
var ErrNoMatch = errors.New("zoxide found no matching directory")

type Zoxide struct {
	cmdExec cmd.Executor
	// inTmux opens the interactive picker in a tmux popup.
	inTmux bool
}

func New(cmdExec cmd.Executor, inTmux bool) *Zoxide {
	return &Zoxide{cmdExec: cmdExec, inTmux: inTmux}
}

// Query returns zoxide's best match for the keywords.
func (z *Zoxide) Query(keywords string) (string, error) {
	args := append([]string{"query", "--"}, strings.Fields(keywords)...)
	out, err := z.cmdExec.Output(exec.Command("zoxide", args...))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %q", ErrNoMatch, keywords)
		}
		return "", fmt.Errorf("failed to query zoxide: %w", err)
	}
	dir := strings.TrimSpace(string(out))
	if dir == "" {
		return "", fmt.Errorf("%w: %q", ErrNoMatch, keywords)
	}
	return dir, nil
}

// QueryInteractive lets the user choose among zoxide's matches through its
// fzf integration, pre-filled with keywords.
func (z *Zoxide) QueryInteractive(keywords string) (string, error) {
	c := exec.Command("zoxide", "query", "--interactive")
	c.Env = append(os.Environ(), "_ZO_FZF_OPTS="+z.fzfOpts(keywords))
	c.Stdin = os.Stdin
	c.Stderr = os.Stderr

	out, err := z.cmdExec.Output(c)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %q", ErrNoMatch, keywords)
		}
		return "", fmt.Errorf("failed to query zoxide: %w", err)
	}
	dir := strings.TrimSpace(string(out))
	if dir == "" {
		return "", fmt.Errorf("%w: %q", ErrNoMatch, keywords)
	}
	return dir, nil
}

func (z *Zoxide) fzfOpts(keywords string) string {
	opts := []string{"--query=" + keywords}
	if z.inTmux {
		opts = append([]string{"--tmux"}, opts...)
	}
	return strings.Join(opts, " ")
}
