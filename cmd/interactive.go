package cmd

import (
	"raspictl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to browse the schedule, check substitutions, and manage custom courses interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, client, err := openDeps()
		if err != nil {
			return err
		}
		return tui.RunTUI(st, client)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
