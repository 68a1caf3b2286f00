package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/saveactions/internal/storage"
)

// newTestCmd resets every flag on rootCmd and its subcommands and redirects
// its output to fresh buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	resetFlags(rootCmd)
	color.NoColor = true
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// testProject creates a project directory holding settings (if non-empty)
// and isolates the global config directory.
func testProject(t *testing.T, settings string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	if settings != "" {
		writeTestFile(t, dir, storage.FileName, settings)
	}
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// writeGlobal writes the global settings file.
func writeGlobal(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(storage.GlobalDir(), 0o750))
	require.NoError(t, os.WriteFile(storage.GlobalPath(), []byte(content), 0o600))
}

func loadProject(t *testing.T, dir string) *storage.Storage {
	t.Helper()
	s, err := storage.Load(dir)
	require.NoError(t, err)
	return s
}
