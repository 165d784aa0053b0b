package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"raspictl/pkg/exporter"
	"raspictl/pkg/timetable"
	"raspictl/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a display week to an ICS file",
	Long:  `Export one week of the active profile's schedule, with the day's substitutions applied, to an ICS calendar file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, client, err := openDeps()
		if err != nil {
			return err
		}

		profile, err := st.ActiveProfile()
		if err != nil {
			return fmt.Errorf("no profile selected yet, run 'raspictl profile' first")
		}

		week, _ := cmd.Flags().GetInt("week")
		if week < 1 || week > timetable.NumWeeks {
			return fmt.Errorf("--week must be 1 or 2")
		}

		startStr, _ := cmd.Flags().GetString("start")
		weekStart := nextMonday(time.Now())
		if startStr != "" {
			weekStart, err = time.Parse("2006-01-02", startStr)
			if err != nil {
				return fmt.Errorf("invalid --start, expected YYYY-MM-DD: %w", err)
			}
			if weekStart.Weekday() != time.Monday {
				return fmt.Errorf("--start must be a Monday")
			}
		}

		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		var display *timetable.Schedule
		var loadErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting week %d for %s to %s...", week, profile.Name, output)).
			Action(func() {
				data, _, err := tui.LoadDay(st, client, timetable.NewScheduleStore(), time.Now())
				if err != nil {
					loadErr = err
					return
				}
				display = timetable.ApplyOverrides(data.Schedule, data.Overrides, st.OverridesEnabled(profile.ID))
			}).
			Run()

		if loadErr != nil {
			return fmt.Errorf("failed to fetch schedule: %w", loadErr)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(display, week-1, weekStart, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported week %d to %s\n", week, output)
		return nil
	},
}

// nextMonday returns the upcoming Monday, or today if it is one.
func nextMonday(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntP("week", "w", 1, "Week number to export (1 or 2)")
	exportCmd.Flags().StringP("start", "s", "", "Monday the exported week begins on (YYYY-MM-DD)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
