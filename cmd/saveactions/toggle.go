// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/saveactions/internal/action"
)

var toggleOff bool

// toggleCmd selects or deselects actions.
var toggleCmd = &cobra.Command{
	Use:   "toggle <action>...",
	Short: "Select or deselect save actions",
	Long: `Select (or with --off, deselect) save actions and save the settings.

Actions are applied in order, so "toggle activate reformat" first activates
save actions and then selects reformat. Selecting reformat deselects
reformatChangedCode and vice versa; the same holds for
unqualifiedStaticMemberAccess and customUnqualifiedStaticMemberAccess.
Disabled actions are refused.

Examples:
  saveactions toggle activate organizeImports
  saveactions toggle --off rearrange
  saveactions --global toggle reformatChangedCode`,
	Args: cobra.MinimumNArgs(1),
	RunE: runToggle,
}

func init() {
	toggleCmd.Flags().BoolVar(&toggleOff, "off", false, "deselect the actions")
}

func runToggle(cmd *cobra.Command, args []string) error {
	actions := make([]action.Action, 0, len(args))
	for _, name := range args {
		a, err := action.Parse(name)
		if err != nil {
			return exitError(ExitInvalidArgs, "saveactions: %v", err)
		}
		actions = append(actions, a)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	r := s.Reconciler
	for _, a := range actions {
		if !r.IsEnabled(a) {
			return exitError(ExitInvalidArgs, "saveactions: %s is disabled in the %s settings (%s)", a, s.Scope, disabledReason(r.IsEditable(), a))
		}
		r.Toggle(a, !toggleOff)
	}
	return commit(cmd, s)
}

func disabledReason(editable bool, a action.Action) string {
	switch {
	case a == action.UseGlobalConfiguration:
		return "only available in project settings"
	case !editable:
		return "the project uses the global configuration"
	default:
		return "select an activation action first"
	}
}
