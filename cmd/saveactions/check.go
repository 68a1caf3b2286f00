// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/saveactions/internal/session"
)

var (
	checkTrigger string
	checkJSON    bool
)

// checkCmd reports which save actions would run for a file.
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Show which save actions run for a file",
	Long: `Decide whether save actions run for a file and list the actions that
would run. The project containing --project decides, or the global settings
when the project uses the global configuration. Nothing is written.

Examples:
  saveactions check src/main/java/App.java
  saveactions check --trigger batch src/main/java/App.java`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkTrigger, "trigger", string(session.TriggerSave), "event that runs save actions: save, shortcut, or batch")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the decision as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	trigger, err := session.ParseTrigger(checkTrigger)
	if err != nil {
		return exitError(ExitInvalidArgs, "saveactions: %v", err)
	}
	d, err := session.Check(projectDir, args[0], trigger)
	if err != nil {
		return exitError(ExitInvalidArgs, "saveactions: %v", err)
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	if !d.Run {
		printf(out, "%s %s: %s (%s settings)\n", color.YellowString("skip"), d.File, d.Reason, d.Scope)
		return nil
	}
	printf(out, "%s %s (%s settings)\n", color.GreenString("run"), d.File, d.Scope)
	for _, a := range d.Actions {
		printf(out, "  %s\n", a)
	}
	if d.SkipOnCompileErrors {
		printf(out, "skipped when the file has compile errors\n")
	}
	return nil
}
