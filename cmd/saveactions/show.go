// Copyright 2026 The Saveactions Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/saveactions/internal/action"
	"github.com/davetashner/saveactions/internal/session"
)

var showJSON bool

// showCmd prints the settings of the selected scope.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show save action settings",
	Long: `Show every save action of the selected scope, grouped by section, with
its selection and whether it can currently be edited. Actions that cannot
be edited are marked (disabled): non-activation actions need an activation
action selected, and a project that uses the global configuration cannot
be edited at all.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print settings as JSON")
}

func runShow(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	v := s.View()
	if showJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	renderView(cmd.OutOrStdout(), v)
	return nil
}

func renderView(w io.Writer, v session.View) {
	header := color.New(color.Bold)
	selected := color.New(color.FgGreen)
	disabled := color.New(color.Faint)

	status := ""
	if v.Status == "dirty" {
		status = " " + color.YellowString("(not saved)")
	}
	printf(w, "%s settings: %s%s\n", v.Scope, v.Path, status)

	width := 0
	for _, st := range v.Actions {
		width = max(width, len(st.Name))
	}

	var group action.Group
	for _, st := range v.Actions {
		if st.Group != group {
			group = st.Group
			printf(w, "\n%s\n", header.Sprint(group))
		}
		mark := "[ ]"
		if st.Selected {
			mark = selected.Sprint("[x]")
		}
		line := st.Name.String() + strings.Repeat(" ", width-len(st.Name)) + "  " + st.Text
		if !st.Enabled {
			line = disabled.Sprint(line + " (disabled)")
		}
		printf(w, "  %s %s\n", mark, line)
	}

	printf(w, "\n")
	printf(w, "Exclusions:  %s\n", listOrNone(v.Exclusions))
	printf(w, "Inclusions:  %s\n", listOrNone(v.Inclusions))
	printf(w, "Quick lists: %s\n", listOrNone(v.QuickLists))
	profile := v.ConfigurationPath
	if profile == "" {
		profile = "none"
	}
	printf(w, "Profile:     %s\n", profile)
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
