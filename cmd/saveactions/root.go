// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	salog "github.com/davetashner/saveactions/internal/log"
	"github.com/davetashner/saveactions/internal/reconciler"
	"github.com/davetashner/saveactions/internal/session"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	logFormat  string
	useGlobal  bool
	projectDir string
)

// rootCmd is the base command for saveactions.
var rootCmd = &cobra.Command{
	Use:   "saveactions",
	Short: "Edit and inspect save action settings",
	Long: `Saveactions manages the save actions an editor runs when a file is saved:
reformatting, import organization, code cleanups and the file masks that
decide which files they apply to.

Settings live in .saveactions.yaml at the project root. Global settings in
~/.config/saveactions/config.yaml are used by projects that select
useGlobalConfiguration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		if err := salog.Setup(cmd.ErrOrStderr(), salog.Options{Verbose: verbose, Quiet: quiet, Format: logFormat}); err != nil {
			return exitError(ExitInvalidArgs, "saveactions: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", salog.FormatText, "log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&useGlobal, "global", "g", false, "edit the global settings (~/.config/saveactions/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "C", ".", "directory inside the project to edit")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(masksCmd)
	rootCmd.AddCommand(quickListsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetDefaultsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// selectedScope returns the scope chosen by --global.
func selectedScope() reconciler.Scope {
	if useGlobal {
		return reconciler.Global
	}
	return reconciler.Project
}

// openSession opens the scope chosen by the global flags.
func openSession() (*session.Session, error) {
	s, err := session.Open(selectedScope(), projectDir)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "saveactions: %v", err)
	}
	return s, nil
}

// commit saves s and reports the result. A profile that overrides the saved
// selection leaves the session dirty; that is reported, not treated as an
// error.
func commit(cmd *cobra.Command, s *session.Session) error {
	status, err := s.Commit()
	if err != nil {
		return exitError(ExitValidationFailed, "saveactions: %v", err)
	}
	out := cmd.OutOrStdout()
	printf(out, "Saved %s settings to %s\n", s.Scope, s.Path)
	if status == reconciler.Dirty {
		printf(out, "%s %s overrides the saved actions; run 'saveactions profile import' to save them\n",
			color.YellowString("note:"), s.Reconciler.Snapshot().ConfigurationPath())
	}
	return nil
}
