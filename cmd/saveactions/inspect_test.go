package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/session"
	"github.com/davetashner/saveactions/internal/storage"
)

const javaProject = `first_launch: false
actions: [activate, reformat, organizeImports, noActionIfCompileErrors]
inclusions: ["*.java"]
exclusions: ["**/generated/**"]
`

func TestCheck_Runs(t *testing.T) {
	dir := testProject(t, javaProject)
	out, err := execute(t, "--project", dir, "check", filepath.Join(dir, "src", "App.java"))
	require.NoError(t, err)
	assert.Contains(t, out, "run "+filepath.Join("src", "App.java")+" (project settings)")
	assert.Contains(t, out, "  organizeImports\n  reformat\n")
	assert.Contains(t, out, "skipped when the file has compile errors")
}

func TestCheck_Skips(t *testing.T) {
	dir := testProject(t, javaProject)
	out, err := execute(t, "--project", dir, "check", filepath.Join(dir, "src", "generated", "Gen.java"))
	require.NoError(t, err)
	assert.Contains(t, out, "skip ")
	assert.Contains(t, out, "masks")
}

func TestCheck_JSON(t *testing.T) {
	dir := testProject(t, javaProject)
	out, err := execute(t, "--project", dir, "check", "--trigger", "batch", "--json", filepath.Join(dir, "App.java"))
	require.NoError(t, err)

	var d session.Decision
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.False(t, d.Run)
	assert.Equal(t, "save actions are not activated on batch", d.Reason)
}

func TestCheck_InvalidTrigger(t *testing.T) {
	dir := testProject(t, javaProject)
	_, err := execute(t, "--project", dir, "check", "--trigger", "commit", "App.java")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
}

func TestCheck_DoesNotWrite(t *testing.T) {
	dir := testProject(t, "")
	_, err := execute(t, "--project", dir, "check", "App.java")
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, storage.FileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigGet(t *testing.T) {
	dir := testProject(t, javaProject)
	out, err := execute(t, "--project", dir, "config", "get", "inclusions")
	require.NoError(t, err)
	assert.Contains(t, out, "*.java")

	out, err = execute(t, "--project", dir, "config", "get", "first_launch")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestConfigGet_UnknownKey(t *testing.T) {
	dir := testProject(t, javaProject)
	_, err := execute(t, "--project", dir, "config", "get", "colour")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Contains(t, ece.Error(), "valid keys")
}

func TestConfigGet_Global(t *testing.T) {
	dir := testProject(t, "")
	writeGlobal(t, "first_launch: false\nconfiguration_path: team.epf\n")
	out, err := execute(t, "--project", dir, "--global", "config", "get", "configuration_path")
	require.NoError(t, err)
	assert.Equal(t, "team.epf\n", out)
}

func TestConfigSet(t *testing.T) {
	dir := testProject(t, javaProject)
	out, err := execute(t, "--project", dir, "config", "set", "actions", "activate, compile")
	require.NoError(t, err)
	assert.Contains(t, out, "Set actions = activate, compile")

	saved := loadProject(t, dir)
	assert.True(t, saved.Actions().Equal(action.NewSet(action.Activate, action.Compile)))
	assert.Equal(t, []string{"*.java"}, saved.Inclusions(), "other keys are kept")
}

func TestConfigSet_RejectsInvalid(t *testing.T) {
	dir := testProject(t, javaProject)
	_, err := execute(t, "--project", dir, "config", "set", "actions", "activate,bogus")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitValidationFailed, ece.ExitCode())
	assert.Contains(t, ece.Error(), `unknown action "bogus"`)

	assert.True(t, loadProject(t, dir).Actions().Contains(action.Reformat), "file left untouched")
}

func TestConfigList(t *testing.T) {
	dir := testProject(t, javaProject)
	out, err := execute(t, "--project", dir, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "# "+filepath.Join(dir, storage.FileName))
	assert.Contains(t, out, "first_launch = false (project)")
	assert.Contains(t, out, "inclusions = [*.java] (project)")
}

func TestConfigList_DefersToGlobal(t *testing.T) {
	dir := testProject(t, "first_launch: false\nactions: [useGlobalConfiguration]\n")
	writeGlobal(t, "first_launch: false\nactions: [activate]\n")
	out, err := execute(t, "--project", dir, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "# "+storage.GlobalPath())
	assert.Contains(t, out, "actions = [activate] (global)")
}

func TestValidate(t *testing.T) {
	dir := testProject(t, javaProject)
	out, err := execute(t, "--project", dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "skip "+storage.GlobalPath())
	assert.Contains(t, out, "ok "+filepath.Join(dir, storage.FileName))
}

func TestValidate_Failure(t *testing.T) {
	dir := testProject(t, "actions: [activate, bogus]\nquick_lists: [a, a]\n")
	out, err := execute(t, "--project", dir, "validate")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitValidationFailed, ece.ExitCode())
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, `unknown action "bogus"`)
	assert.Contains(t, out, "duplicate identifier")
}

func TestValidate_ParseError(t *testing.T) {
	dir := testProject(t, "")
	writeGlobal(t, "{{nope")
	_, err := execute(t, "--project", dir, "validate")
	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitValidationFailed, ece.ExitCode())
}
