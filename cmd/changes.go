package cmd

import (
	"fmt"
	"time"

	"raspictl/pkg/tui"

	"github.com/spf13/cobra"
)

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Check and list recorded substitutions",
	Long: `Fetch the substitution list for a date, merge it into the stored change
history, and print the history for the active profile. Re-checking the
same date replaces its stored entry instead of duplicating it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, client, err := openDeps()
		if err != nil {
			return err
		}

		profile, err := st.ActiveProfile()
		if err != nil {
			return fmt.Errorf("no profile selected yet, run 'raspictl profile' first")
		}

		if offline, _ := cmd.Flags().GetBool("offline"); !offline {
			dateStr, _ := cmd.Flags().GetString("date")
			date := time.Now()
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
				}
			}

			batch, err := client.FetchOverrides(profile.ID, date)
			if err != nil {
				return fmt.Errorf("failed to fetch substitutions: %w", err)
			}
			if err := st.RecordOverrides(profile.ID, batch); err != nil {
				return fmt.Errorf("failed to record substitutions: %w", err)
			}
		}

		tui.PrintHistory(st, profile.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(changesCmd)

	changesCmd.Flags().StringP("date", "d", "", "Date to check (YYYY-MM-DD, default today)")
	changesCmd.Flags().Bool("offline", false, "Only print the stored history, no fetch")
}
