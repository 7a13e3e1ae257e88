package cmd

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "tmux has-session -t=foo", ToString(exec.Command("tmux", "has-session", "-t=foo")))
	assert.Equal(t, "<nil>", ToString(nil))
}

func TestPipe(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	t.Run("stdin is closed before waiting", func(t *testing.T) {
		out, err := Exec{}.Pipe(exec.Command("cat"), "one\ntwo\n")
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\n", string(out))
	})

	t.Run("exit status is surfaced as a subprocess error", func(t *testing.T) {
		_, err := Exec{}.Pipe(exec.Command("sh", "-c", "cat >/dev/null; exit 3"), "x")
		require.Error(t, err)

		var subErr *SubprocessError
		require.True(t, errors.As(err, &subErr))
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 3, exitErr.ExitCode())
	})
}

func TestRunWrapsSpawnFailure(t *testing.T) {
	err := Exec{}.Run(exec.Command("axl-definitely-not-a-binary"))
	require.Error(t, err)
	var subErr *SubprocessError
	require.True(t, errors.As(err, &subErr))
	assert.Contains(t, subErr.Cmd, "axl-definitely-not-a-binary")
}
