package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/session"
	"github.com/davetashner/saveactions/internal/storage"
)

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
	parent := filepath.Dir(path)
	require.NoError(t, os.MkdirAll(parent, 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	return result.Content[0].(*mcp.TextContent).Text
}

func TestHandleShowSettings(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activate, reformat]\nexclusions: [\"**/gen/**\"]\n")

	result, _, err := handleShowSettings(context.Background(), nil, ShowSettingsInput{Path: dir})
	require.NoError(t, err)

	var v session.View
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &v))
	assert.Equal(t, "project", v.Scope)
	assert.Equal(t, []string{"**/gen/**"}, v.Exclusions)
	for _, st := range v.Actions {
		if st.Name == action.Reformat {
			assert.True(t, st.Selected)
			assert.True(t, st.Enabled)
		}
	}
}

func TestHandleShowSettings_Global(t *testing.T) {
	dir := testProject(t, "")
	result, _, err := handleShowSettings(context.Background(), nil, ShowSettingsInput{Path: dir, Global: true})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), `"scope": "global"`)
}

func TestHandleShowSettings_BadPath(t *testing.T) {
	_, _, err := handleShowSettings(context.Background(), nil, ShowSettingsInput{Path: "/nonexistent/path/that/does/not/exist"})
	assert.ErrorContains(t, err, "cannot resolve path")
}

func TestHandleToggleAction(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activate, reformatChangedCode]\n")

	_, _, err := handleToggleAction(context.Background(), nil, ToggleActionInput{Path: dir, Action: "reformat"})
	require.NoError(t, err)

	saved, err := storage.Load(dir)
	require.NoError(t, err)
	assert.True(t, saved.Actions().Equal(action.NewSet(action.Activate, action.Reformat)))

	_, _, err = handleToggleAction(context.Background(), nil, ToggleActionInput{Path: dir, Action: "activate", Off: true})
	require.NoError(t, err)
	saved, err = storage.Load(dir)
	require.NoError(t, err)
	assert.False(t, saved.IsEnabled(action.Activate))
}

func TestHandleToggleAction_Errors(t *testing.T) {
	dir := testProject(t, "first_launch: false\n")

	_, _, err := handleToggleAction(context.Background(), nil, ToggleActionInput{Path: dir, Action: "nope"})
	assert.ErrorContains(t, err, "unknown action")

	_, _, err = handleToggleAction(context.Background(), nil, ToggleActionInput{Path: dir, Action: "compile"})
	assert.ErrorContains(t, err, "compile is disabled")
}

func TestHandleCheckFile(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activate, organizeImports]\ninclusions: [\"*.java\"]\n")

	result, _, err := handleCheckFile(context.Background(), nil, CheckFileInput{Path: dir, File: "src/App.java"})
	require.NoError(t, err)

	var d session.Decision
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &d))
	assert.True(t, d.Run)
	assert.Equal(t, []action.Action{action.OrganizeImports}, d.Actions)
	assert.Equal(t, filepath.Join("src", "App.java"), d.File)

	result, _, err = handleCheckFile(context.Background(), nil, CheckFileInput{Path: dir, File: "README.md"})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), `"run": false`)
}

func TestHandleCheckFile_Errors(t *testing.T) {
	dir := testProject(t, "")

	_, _, err := handleCheckFile(context.Background(), nil, CheckFileInput{Path: dir})
	assert.ErrorContains(t, err, "file is required")

	_, _, err = handleCheckFile(context.Background(), nil, CheckFileInput{Path: dir, File: "A.java", Trigger: "commit"})
	assert.ErrorContains(t, err, "invalid trigger")
}
