// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/session"
)

// profileCmd is the parent command for external profile subcommands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the external settings profile",
	Long: `Manage the external settings profile (.epf, .yaml or .toml) that can
override the selected actions.

After settings are saved, the profile's actions are shown as unsaved
changes on top of the saved selection. "profile import" saves them.
Relative profile paths are resolved against the project root, or the
global config directory for --global.`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <path>",
	Short: "Set the external profile path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProfile(cmd, args[0], false)
	},
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the external profile path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()
		s.Reconciler.SetConfigurationPath("")
		return commit(cmd, s)
	},
}

var profileImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Save the actions of the external profile",
	Long: `Save the actions of the external profile as the selected actions. With a
path, the profile path is set first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return setProfile(cmd, path, true)
	},
}

func init() {
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileClearCmd)
	profileCmd.AddCommand(profileImportCmd)
}

// setProfile points the session at path ("" keeps the current path) and
// saves. With save, the profile's preview is saved as well.
func setProfile(cmd *cobra.Command, path string, save bool) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if path == "" {
		path = s.Reconciler.Snapshot().ConfigurationPath()
		if path == "" {
			return exitError(ExitInvalidArgs, "saveactions: no profile is set; pass a path")
		}
	}
	before := s.Store.Actions()
	if _, err := s.Profiles.Load(path, before); err != nil {
		return exitError(ExitInvalidArgs, "saveactions: %v", err)
	}
	s.Reconciler.SetConfigurationPath(path)

	if !save {
		if err := commit(cmd, s); err != nil {
			return err
		}
		printChanges(cmd, s, s.Store.Actions())
		return nil
	}

	if _, err := s.Commit(); err != nil {
		return exitError(ExitValidationFailed, "saveactions: %v", err)
	}
	saved := s.Store.Actions()
	if err := commit(cmd, s); err != nil {
		return err
	}
	printChanges(cmd, s, saved)
	return nil
}

// printChanges lists the actions whose working selection differs from base.
func printChanges(cmd *cobra.Command, s *session.Session, base action.Set) {
	out := cmd.OutOrStdout()
	w := s.Reconciler.Snapshot()
	for _, a := range s.Reconciler.Actions() {
		on := w.IsSelected(a)
		if on == base.Contains(a) {
			continue
		}
		if on {
			printf(out, "  %s %s\n", color.GreenString("+"), a)
		} else {
			printf(out, "  %s %s\n", color.RedString("-"), a)
		}
	}
}
