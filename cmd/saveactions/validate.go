// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/saveactions/internal/storage"
	"github.com/davetashner/saveactions/internal/testable"
)

// validateCmd checks the settings files without changing them.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate settings files",
	Long: `Validate the global settings file and the project settings file. Missing
files are skipped. Exits with code 2 when a file fails to parse or contains
unknown actions, malformed file masks or bad quick list identifiers. With
--global only the global file is checked.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	paths := []string{storage.GlobalPath()}
	if !useGlobal {
		root, err := storage.ResolveProjectRoot(projectDir)
		if err != nil {
			return exitError(ExitInvalidArgs, "saveactions: %v", err)
		}
		paths = append(paths, storage.ProjectPath(root))
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range paths {
		if _, err := testable.DefaultFS.Stat(path); errors.Is(err, fs.ErrNotExist) {
			printf(out, "%s %s (not found)\n", color.New(color.Faint).Sprint("skip"), path)
			continue
		}
		s, err := storage.LoadFile(path)
		if err == nil {
			err = storage.Validate(s)
		}
		if err != nil {
			failed++
			printf(out, "%s %s\n  %v\n", color.RedString("FAIL"), path, err)
			continue
		}
		printf(out, "%s %s\n", color.GreenString("ok"), path)
	}
	if failed > 0 {
		return exitError(ExitValidationFailed, "saveactions: %d settings file(s) failed validation", failed)
	}
	return nil
}
