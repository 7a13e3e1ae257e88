package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kastheco/axl/app"
	"github.com/kastheco/axl/picker"
	"github.com/kastheco/axl/project"
	"github.com/kastheco/axl/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_UsesSetupSubcommand(t *testing.T) {
	setupCmd, _, err := rootCmd.Find([]string{"setup"})
	require.NoError(t, err)
	require.NotNil(t, setupCmd)
	require.Equal(t, "setup", setupCmd.Name())
}

func TestRootCommand_ProjectCommandsAreMirrored(t *testing.T) {
	for _, name := range []string{"open", "scratch", "kill", "home", "list", "list-tags", "import", "report", "new"} {
		top, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, top.Name())

		nested, _, err := rootCmd.Find([]string{"p", name})
		require.NoError(t, err, name)
		assert.Equal(t, name, nested.Name())
		assert.Equal(t, "project", nested.Parent().Name())
		assert.NotSame(t, top, nested)
	}
}

func TestIsUserAbort(t *testing.T) {
	assert.True(t, isUserAbort(project.ErrAborted))
	assert.True(t, isUserAbort(picker.ErrNoItemSelected))
	assert.False(t, isUserAbort(project.ErrCyclicInclude))
}

func TestListCommand(t *testing.T) {
	home := isolateEnv(t)
	writeProjects(t, home)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"list", "--output", "csv"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "name,remote,path,tags\n"+
		"test1,git@github.com:user/test1.git,"+filepath.Join(home, "projects", "test1")+",\n", out.String())
	assert.FileExists(t, filepath.Join(home, ".local", "state", "axl", "history.db"))
}

func TestListCommand_BadOutput(t *testing.T) {
	isolateEnv(t)

	rootCmd.SetArgs([]string{"list", "--output", "xml"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.ErrorContains(t, rootCmd.Execute(), `unknown output format "xml"`)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "axl version "+version)
}

func TestDebugCommand(t *testing.T) {
	home := isolateEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "axl"), 0o755))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"debug"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"projects_file": "`+filepath.Join(home, ".config", "axl", "projects.yml")+`"`)
	assert.Contains(t, out.String(), `"telemetry_active": false`)
}

func TestConfirmWith(t *testing.T) {
	a := &app.App{Confirm: ui.HuhConfirmer{}}
	confirmWith(a, false)
	assert.Equal(t, ui.HuhConfirmer{}, a.Confirm)

	confirmWith(a, true)
	assert.Equal(t, ui.AlwaysConfirm{}, a.Confirm)
}
