package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggersDiscardBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		InfoLog.Printf("nobody hears this")
		ErrorLog.Printf("nor this")
	})
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "axl.log")

	require.NoError(t, Initialize(Options{File: path, Level: "info"}))
	InfoLog.Printf("opened session %s", "axl")
	DebugLog.Printf("debug lines are filtered at info level")
	WarningLog.Printf("zoxide missing")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "opened session axl")
	assert.Contains(t, content, "level=WARN")
	assert.NotContains(t, content, "debug lines are filtered")
}

func TestInitializeDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axl.log")

	require.NoError(t, Initialize(Options{File: path, Level: "debug"}))
	DebugLog.Printf("tmux has-session -t=axl")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tmux has-session -t=axl")
}

func TestForTagsCategory(t *testing.T) {
	logs := For("picker")
	path := filepath.Join(t.TempDir(), "axl.log")

	require.NoError(t, Initialize(Options{File: path, Level: "info"}))
	logs.Info.Printf("fzf exited with 130")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="fzf exited with 130"`)
	assert.Contains(t, string(data), "category=picker")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
