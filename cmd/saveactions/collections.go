// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/davetashner/saveactions/internal/mask"
)

var masksExclude bool

// masksCmd is the parent command for file mask subcommands.
var masksCmd = &cobra.Command{
	Use:   "masks",
	Short: "Manage inclusion and exclusion file masks",
	Long: `Manage the file masks that decide which files save actions apply to.

Masks are glob patterns matched against paths relative to the project root.
A mask without a slash also matches the file name in any directory. When
no inclusion masks are set every file is included; exclusions always win.`,
}

var masksAddCmd = &cobra.Command{
	Use:   "add <glob>...",
	Short: "Add file masks",
	Long: `Add inclusion masks, or exclusion masks with --exclude.

Examples:
  saveactions masks add '*.java'
  saveactions masks add --exclude '**/generated/**'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editMasks(cmd, func(masks []string) []string { return append(masks, args...) }, args)
	},
}

var masksRemoveCmd = &cobra.Command{
	Use:   "remove <glob>...",
	Short: "Remove file masks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editMasks(cmd, func(masks []string) []string {
			return slices.DeleteFunc(masks, func(m string) bool { return slices.Contains(args, m) })
		}, nil)
	},
}

// quickListsCmd replaces the quick list identifiers.
var quickListsCmd = &cobra.Command{
	Use:   "quicklists <id>...",
	Short: "Set the quick lists run as actions",
	Long: `Replace the quick list identifiers run by the executeAction save action.
With no arguments the list is cleared. Order is preserved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()
		s.Reconciler.SetQuickLists(args)
		return commit(cmd, s)
	},
}

func init() {
	for _, c := range []*cobra.Command{masksAddCmd, masksRemoveCmd} {
		c.Flags().BoolVar(&masksExclude, "exclude", false, "edit exclusion masks instead of inclusion masks")
	}
	masksCmd.AddCommand(masksAddCmd)
	masksCmd.AddCommand(masksRemoveCmd)
}

func editMasks(cmd *cobra.Command, edit func([]string) []string, added []string) error {
	if err := mask.ValidatePatterns(added); err != nil {
		return exitError(ExitInvalidArgs, "saveactions: %v", err)
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	w := s.Reconciler.Snapshot()
	if masksExclude {
		s.Reconciler.SetExclusions(edit(w.Exclusions()))
	} else {
		s.Reconciler.SetInclusions(edit(w.Inclusions()))
	}
	return commit(cmd, s)
}
