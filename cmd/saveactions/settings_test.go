package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/session"
	"github.com/davetashner/saveactions/internal/storage"
)

func TestShow_FirstLaunch(t *testing.T) {
	dir := testProject(t, "")
	out, err := execute(t, "--project", dir, "show")
	require.NoError(t, err)

	assert.Contains(t, out, "project settings: "+filepath.Join(dir, storage.FileName)+" (not saved)")
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "[x] activate ")
	assert.Contains(t, out, "[x] organizeImports ")
	assert.Contains(t, out, "[ ] rearrange ")
	assert.Contains(t, out, "Exclusions:  none")
}

func TestShow_JSON(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [useGlobalConfiguration, reformat]\n")
	out, err := execute(t, "--project", dir, "show", "--json")
	require.NoError(t, err)

	var v session.View
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "clean", v.Status)
	for _, st := range v.Actions {
		switch st.Name {
		case action.UseGlobalConfiguration:
			assert.True(t, st.Selected)
			assert.True(t, st.Enabled)
		case action.Reformat:
			assert.True(t, st.Selected)
			assert.False(t, st.Enabled, "deferring to global disables the project actions")
		}
	}
}

func TestShow_Global(t *testing.T) {
	testProject(t, "")
	out, err := execute(t, "--global", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "global settings: "+storage.GlobalPath())
	assert.NotContains(t, out, "useGlobalConfiguration")
}

func TestToggle(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activate, reformatChangedCode]\n")
	out, err := execute(t, "--project", dir, "toggle", "reformat", "rearrange")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved project settings")

	saved := loadProject(t, dir)
	assert.True(t, saved.Actions().Equal(action.NewSet(action.Activate, action.Reformat, action.Rearrange)),
		"selecting reformat deselects reformatChangedCode")
}

func TestToggle_Off(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activate, reformat]\n")
	_, err := execute(t, "--project", dir, "toggle", "--off", "reformat")
	require.NoError(t, err)
	assert.True(t, loadProject(t, dir).Actions().Equal(action.NewSet(action.Activate)))
}

func TestToggle_InOrderEnablesDependents(t *testing.T) {
	dir := testProject(t, "first_launch: false\n")
	_, err := execute(t, "--project", dir, "toggle", "activateOnBatch", "compile")
	require.NoError(t, err)
	assert.True(t, loadProject(t, dir).Actions().Equal(action.NewSet(action.ActivateOnBatch, action.Compile)))
}

func TestToggle_RefusesDisabled(t *testing.T) {
	tests := []struct {
		name     string
		settings string
		args     []string
		reason   string
	}{
		{"inactive", "first_launch: false\n", []string{"toggle", "reformat"}, "select an activation action first"},
		{"deferring", "first_launch: false\nactions: [activate, useGlobalConfiguration]\n", []string{"toggle", "compile"}, "uses the global configuration"},
		{"global scope", "", []string{"--global", "toggle", "useGlobalConfiguration"}, "only available in project settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testProject(t, tt.settings)
			args := append([]string{"--project", dir}, tt.args...)
			_, err := execute(t, args...)
			var ece *exitCodeError
			require.ErrorAs(t, err, &ece)
			assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
			assert.Contains(t, ece.Error(), tt.reason)
		})
	}
}

func TestMasks(t *testing.T) {
	dir := testProject(t, "first_launch: false\n")
	_, err := execute(t, "--project", dir, "masks", "add", "*.java", "*.kt")
	require.NoError(t, err)
	_, err = execute(t, "--project", dir, "masks", "add", "--exclude", "**/generated/**")
	require.NoError(t, err)
	_, err = execute(t, "--project", dir, "masks", "remove", "*.kt")
	require.NoError(t, err)

	saved := loadProject(t, dir)
	assert.Equal(t, []string{"*.java"}, saved.Inclusions())
	assert.Equal(t, []string{"**/generated/**"}, saved.Exclusions())
}

func TestMasks_RejectsInvalid(t *testing.T) {
	dir := testProject(t, "first_launch: false\n")
	_, err := execute(t, "--project", dir, "masks", "add", "[broken")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Contains(t, ece.Error(), "invalid file mask")
}

func TestQuickLists(t *testing.T) {
	dir := testProject(t, "first_launch: false\n")
	_, err := execute(t, "--project", dir, "quicklists", "b", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, loadProject(t, dir).QuickLists())

	_, err = execute(t, "--project", dir, "quicklists")
	require.NoError(t, err)
	assert.Empty(t, loadProject(t, dir).QuickLists())
}

func TestQuickLists_RejectsDuplicates(t *testing.T) {
	dir := testProject(t, "first_launch: false\n")
	_, err := execute(t, "--project", dir, "quicklists", "a", "a")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitValidationFailed, ece.ExitCode())
	assert.Contains(t, ece.Error(), "duplicate identifier")
}

func TestResetDefaults(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activateOnBatch, compile]\ninclusions: [\"*.java\"]\n")
	_, err := execute(t, "--project", dir, "reset-defaults")
	require.NoError(t, err)

	saved := loadProject(t, dir)
	assert.True(t, saved.Actions().Equal(action.Defaults()))
	assert.False(t, saved.IsFirstLaunch())
	assert.Equal(t, []string{"*.java"}, saved.Inclusions())
}

func TestProfileSet_PreviewsWithoutSaving(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activate]\n")
	writeTestFile(t, dir, "team.toml", "[actions]\ncompile = true\nactivate = false\n")

	out, err := execute(t, "--project", dir, "profile", "set", "team.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "team.toml overrides the saved actions")
	assert.Contains(t, out, "+ compile")
	assert.Contains(t, out, "- activate")

	saved := loadProject(t, dir)
	assert.Equal(t, "team.toml", saved.ConfigurationPath())
	assert.True(t, saved.Actions().Equal(action.NewSet(action.Activate)))
}

func TestProfileImport(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activate]\n")
	writeTestFile(t, dir, "team.yaml", "actions:\n  compile: true\n")

	out, err := execute(t, "--project", dir, "profile", "import", "team.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "+ compile")
	assert.NotContains(t, out, "overrides the saved actions")

	saved := loadProject(t, dir)
	assert.True(t, saved.Actions().Equal(action.NewSet(action.Activate, action.Compile)))
}

func TestProfileImport_NoPath(t *testing.T) {
	dir := testProject(t, "first_launch: false\n")
	_, err := execute(t, "--project", dir, "profile", "import")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Contains(t, ece.Error(), "no profile is set")
}

func TestProfileSet_Unreadable(t *testing.T) {
	dir := testProject(t, "first_launch: false\n")
	_, err := execute(t, "--project", dir, "profile", "set", "missing.epf")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, ece.Error(), "reading profile")
}

func TestProfileClear(t *testing.T) {
	dir := testProject(t, "first_launch: false\nconfiguration_path: team.epf\n")
	_, err := execute(t, "--project", dir, "profile", "clear")
	require.NoError(t, err)
	assert.Empty(t, loadProject(t, dir).ConfigurationPath())
}

func TestProfileImport_KeepsPairsExclusive(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [activate, reformat]\n")
	writeTestFile(t, dir, "team.yaml", "actions:\n  reformatChangedCode: true\n")

	out, err := execute(t, "--project", dir, "profile", "import", "team.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "+ reformatChangedCode")
	assert.Contains(t, out, "- reformat")

	saved := loadProject(t, dir)
	assert.True(t, saved.Actions().Equal(action.NewSet(action.Activate, action.ReformatChangedCode)))
}
