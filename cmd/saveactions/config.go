// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/storage"
)

// configCmd is the parent command for raw settings key subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify raw settings keys",
	Long: `View and modify the keys of a settings file directly.

Keys: first_launch, actions, exclusions, inclusions, quick_lists,
configuration_path. List keys take comma-separated values.

Note: config set does a YAML round-trip and will not preserve comments.
If you need to keep comments, edit the file directly.`,
}

// configGetCmd prints one settings key.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a settings value",
	Long: `Get a settings value from the project settings, or the global settings
with --global.

Examples:
  saveactions config get actions
  saveactions --global config get exclusions`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets one settings key.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a settings value",
	Long: `Set a settings value. The result is validated before it is written.

Examples:
  saveactions config set actions activate,reformat
  saveactions config set exclusions '**/generated/**'
  saveactions config set first_launch false
  saveactions --global config set configuration_path team.epf`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists the effective settings keys with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the effective settings values",
	Long: `List the settings values in effect for the project, annotated with the
file they come from. A project that selects useGlobalConfiguration is
listed from the global settings.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

// settingsPath returns the settings file selected by the global flags.
func settingsPath() (string, error) {
	if useGlobal {
		return storage.GlobalPath(), nil
	}
	root, err := storage.ResolveProjectRoot(projectDir)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "saveactions: %v", err)
	}
	return storage.ProjectPath(root), nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := storage.ValidateKey(args[0]); err != nil {
		return exitError(ExitInvalidArgs, "saveactions: %v", err)
	}
	path, err := settingsPath()
	if err != nil {
		return err
	}
	s, err := storage.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	val, err := storage.GetValue(s, args[0])
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, rawValue := args[0], args[1]
	if err := storage.ValidateKey(key); err != nil {
		return exitError(ExitInvalidArgs, "saveactions: %v", err)
	}
	path, err := settingsPath()
	if err != nil {
		return err
	}

	data, err := storage.LoadRaw(path)
	if err != nil {
		return fmt.Errorf("loading settings file: %w", err)
	}
	if err := storage.SetValue(data, key, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}

	s, err := storage.FromMap(data)
	if err != nil {
		return exitError(ExitValidationFailed, "saveactions: invalid settings after set: %v", err)
	}
	if err := storage.Validate(s); err != nil {
		return exitError(ExitValidationFailed, "saveactions: %v", err)
	}
	if err := storage.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}

	printf(cmd.OutOrStdout(), "Set %s = %s\n", key, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	source := "project"
	if useGlobal {
		source = "global"
	}

	s, err := storage.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s settings: %w", source, err)
	}
	if source == "project" && s.IsEnabled(action.UseGlobalConfiguration) {
		path, source = storage.GlobalPath(), "global"
		if s, err = storage.LoadGlobal(); err != nil {
			return fmt.Errorf("loading global settings: %w", err)
		}
	}

	m, err := storage.ToFlatMap(s)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	w := cmd.OutOrStdout()
	label := formatSource(source)
	printf(w, "# %s\n", path)
	for _, k := range keys {
		printf(w, "%s = %v %s\n", k, m[k], label)
	}
	return nil
}

// printValue outputs a value: scalars as plain text, maps/slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s", data)
	default:
		printf(cmd.OutOrStdout(), "%v\n", v)
	}
	return nil
}

// formatSource returns a colorized source annotation.
func formatSource(source string) string {
	switch source {
	case "global":
		return color.CyanString("(global)")
	case "project":
		return color.GreenString("(project)")
	default:
		return fmt.Sprintf("(%s)", source)
	}
}
