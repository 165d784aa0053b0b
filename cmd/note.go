package cmd

import (
	"fmt"

	"raspictl/pkg/store"
	"raspictl/pkg/timetable"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage per-slot notes",
}

// noteSlotKey reads and validates the shared week/day/slot flags.
func noteSlotKey(cmd *cobra.Command) (string, error) {
	week, _ := cmd.Flags().GetInt("week")
	day, _ := cmd.Flags().GetInt("day")
	slot, _ := cmd.Flags().GetInt("slot")

	if week < 1 || week > timetable.NumWeeks {
		return "", fmt.Errorf("--week must be 1 or 2")
	}
	if day < 1 || day > timetable.DaysPerWeek {
		return "", fmt.Errorf("--day must be between 1 and %d", timetable.DaysPerWeek)
	}
	if slot < 1 || slot > timetable.SlotsPerDay {
		return "", fmt.Errorf("--slot must be between 1 and %d", timetable.SlotsPerDay)
	}
	return store.SlotKey(week-1, day-1, slot-1), nil
}

var noteSetCmd = &cobra.Command{
	Use:   "set <text>",
	Short: "Attach a note to a schedule slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openDeps()
		if err != nil {
			return err
		}
		profile, err := st.ActiveProfile()
		if err != nil {
			return fmt.Errorf("no profile selected yet, run 'raspictl profile' first")
		}

		key, err := noteSlotKey(cmd)
		if err != nil {
			return err
		}
		if err := st.SetNote(profile.ID, key, args[0]); err != nil {
			return err
		}
		fmt.Println("Note saved.")
		return nil
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the note attached to a schedule slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openDeps()
		if err != nil {
			return err
		}
		profile, err := st.ActiveProfile()
		if err != nil {
			return fmt.Errorf("no profile selected yet, run 'raspictl profile' first")
		}

		key, err := noteSlotKey(cmd)
		if err != nil {
			return err
		}
		note, ok := st.NoteFor(profile.ID, key)
		if !ok {
			fmt.Println("No note for that slot.")
			return nil
		}
		fmt.Printf("%s (updated %s)\n", note.Text, note.UpdatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

var noteClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the note attached to a schedule slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openDeps()
		if err != nil {
			return err
		}
		profile, err := st.ActiveProfile()
		if err != nil {
			return fmt.Errorf("no profile selected yet, run 'raspictl profile' first")
		}

		key, err := noteSlotKey(cmd)
		if err != nil {
			return err
		}
		if err := st.SetNote(profile.ID, key, ""); err != nil {
			return err
		}
		fmt.Println("Note cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteSetCmd, noteShowCmd, noteClearCmd)

	for _, c := range []*cobra.Command{noteSetCmd, noteShowCmd, noteClearCmd} {
		c.Flags().IntP("week", "w", 0, "Week number (1 or 2)")
		c.Flags().IntP("day", "d", 0, "Day number (1=Monday ... 6=Saturday)")
		c.Flags().IntP("slot", "s", 0, "Slot number (1-5)")
		c.MarkFlagRequired("week")
		c.MarkFlagRequired("day")
		c.MarkFlagRequired("slot")
	}
}
