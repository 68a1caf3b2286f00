package main

import (
	"github.com/spf13/cobra"
)

// resetDefaultsCmd restores the first-launch defaults.
var resetDefaultsCmd = &cobra.Command{
	Use:   "reset-defaults",
	Short: "Restore the default save actions",
	Long: `Replace the selected actions with the defaults (activate, organizeImports
and reformat) and save. File masks, quick lists and the profile path are
kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		s.Store.MarkFirstLaunch()
		s.Reconciler.Reset()
		return commit(cmd, s)
	},
}
