package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Executor runs external commands. Every tmux, fzf, zoxide and git
// subprocess goes through it so tests can substitute a mock.
type Executor interface {
	Run(cmd *exec.Cmd) error
	Output(cmd *exec.Cmd) ([]byte, error)
	// Pipe writes input to the command's stdin, closes it, then waits for
	// the command to exit and returns everything it wrote to stdout.
	Pipe(cmd *exec.Cmd, input string) ([]byte, error)
}

// SubprocessError is returned when a command could not be spawned or exited
// unsuccessfully.
type SubprocessError struct {
	Cmd string
	Err error
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Cmd, e.Err)
}

func (e *SubprocessError) Unwrap() error {
	return e.Err
}

type Exec struct{}

func (e Exec) Run(cmd *exec.Cmd) error {
	if err := cmd.Run(); err != nil {
		return &SubprocessError{Cmd: ToString(cmd), Err: err}
	}
	return nil
}

func (e Exec) Output(cmd *exec.Cmd) ([]byte, error) {
	out, err := cmd.Output()
	if err != nil {
		return out, &SubprocessError{Cmd: ToString(cmd), Err: err}
	}
	return out, nil
}

func (e Exec) Pipe(cmd *exec.Cmd, input string) ([]byte, error) {
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &SubprocessError{Cmd: ToString(cmd), Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &SubprocessError{Cmd: ToString(cmd), Err: err}
	}

	// The child only sees EOF once stdin is closed, so the close has to
	// happen before we block in Wait.
	_, writeErr := io.WriteString(stdin, input)
	closeErr := stdin.Close()

	if err := cmd.Wait(); err != nil {
		return stdout.Bytes(), &SubprocessError{Cmd: ToString(cmd), Err: err}
	}
	if writeErr != nil {
		return stdout.Bytes(), &SubprocessError{Cmd: ToString(cmd), Err: writeErr}
	}
	if closeErr != nil {
		return stdout.Bytes(), &SubprocessError{Cmd: ToString(cmd), Err: closeErr}
	}
	return stdout.Bytes(), nil
}

func MakeExecutor() Executor {
	return Exec{}
}

// ToString renders the command line, used in logs and test assertions.
func ToString(cmd *exec.Cmd) string {
	if cmd == nil {
		return "<nil>"
	}
	return strings.Join(cmd.Args, " ")
}
