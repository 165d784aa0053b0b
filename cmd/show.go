package cmd

import (
	"fmt"
	"time"

	"raspictl/pkg/api"
	"raspictl/pkg/timetable"
	"raspictl/pkg/tui"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the schedule with today's substitutions applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, client, err := openDeps()
		if err != nil {
			return err
		}

		profile, err := st.ActiveProfile()
		if err != nil {
			return fmt.Errorf("no profile selected yet, run 'raspictl profile' first")
		}

		dateStr, _ := cmd.Flags().GetString("date")
		date := time.Now()
		if dateStr != "" {
			date, err = time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
			}
		}

		data, stale, err := tui.LoadDay(st, client, timetable.NewScheduleStore(), date)
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		if stale {
			fmt.Println("Service unreachable; showing the last saved schedule.")
		}

		display := timetable.ApplyOverrides(data.Schedule, data.Overrides, st.OverridesEnabled(profile.ID))

		week, _ := cmd.Flags().GetInt("week")
		if week < 1 || week > timetable.NumWeeks {
			for w := 0; w < timetable.NumWeeks; w++ {
				fmt.Print(tui.RenderWeek(st, profile, display, w))
			}
		} else {
			fmt.Print(tui.RenderWeek(st, profile, display, week-1))
		}

		for _, e := range api.ActiveEvents(data.Events, date) {
			fmt.Printf("ℹ %s (%s)\n", e.Title, e.Code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("date", "d", "", "Date whose substitutions to apply (YYYY-MM-DD, default today)")
	showCmd.Flags().IntP("week", "w", 0, "Show only week 1 or 2 (default both)")
}
