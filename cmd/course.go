package cmd

import (
	"fmt"
	"time"

	"raspictl/pkg/store"
	"raspictl/pkg/timetable"
	"raspictl/pkg/tui"

	"github.com/spf13/cobra"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Manage custom courses in free schedule slots",
}

var courseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Insert a custom course into a verified-free slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, client, err := openDeps()
		if err != nil {
			return err
		}

		profile, err := st.ActiveProfile()
		if err != nil {
			return fmt.Errorf("no profile selected yet, run 'raspictl profile' first")
		}

		name, _ := cmd.Flags().GetString("name")
		teacher, _ := cmd.Flags().GetString("teacher")
		room, _ := cmd.Flags().GetString("room")
		week, _ := cmd.Flags().GetInt("week")
		day, _ := cmd.Flags().GetInt("day")
		slot, _ := cmd.Flags().GetInt("slot")

		if week < 1 || week > timetable.NumWeeks {
			return fmt.Errorf("--week must be 1 or 2")
		}
		if day < 1 || day > timetable.DaysPerWeek {
			return fmt.Errorf("--day must be between 1 (Monday) and %d (Saturday)", timetable.DaysPerWeek)
		}
		if slot < 1 || slot > timetable.SlotsPerDay {
			return fmt.Errorf("--slot must be between 1 and %d", timetable.SlotsPerDay)
		}
		week, day, slot = week-1, day-1, slot-1

		data, stale, err := tui.LoadDay(st, client, timetable.NewScheduleStore(), time.Now())
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		if stale {
			fmt.Println("Service unreachable; availability is based on the last saved schedule.")
		}

		free := timetable.FreeSlots(data.Schedule, data.Overrides, week, day)
		available := false
		for _, index := range free {
			if index == slot {
				available = true
				break
			}
		}
		if !available {
			return fmt.Errorf("slot %d on %s is not free", slot+1, timetable.DayNames[day])
		}
		for _, c := range st.CoursesFor(profile.ID) {
			if c.WeekIndex == week && c.DayIndex == day && c.LessonIndex == slot {
				return fmt.Errorf("slot %d on %s already has a custom course", slot+1, timetable.DayNames[day])
			}
		}

		course, err := st.AddCustomCourse(store.CustomCourse{
			ProfileID:   profile.ID,
			Name:        name,
			Teacher:     teacher,
			Room:        room,
			WeekIndex:   week,
			DayIndex:    day,
			LessonIndex: slot,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %s on %s, slot %d (id %s)\n", course.Name, timetable.DayNames[day], slot+1, course.ID)
		return nil
	},
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom courses for the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openDeps()
		if err != nil {
			return err
		}

		profile, err := st.ActiveProfile()
		if err != nil {
			return fmt.Errorf("no profile selected yet, run 'raspictl profile' first")
		}

		courses := st.CoursesFor(profile.ID)
		if len(courses) == 0 {
			fmt.Println("No custom courses.")
			return nil
		}
		for _, c := range courses {
			fmt.Printf("%s  week %d, %s, slot %d: %s — %s, %s\n",
				c.ID, c.WeekIndex+1, timetable.DayNames[c.DayIndex], c.LessonIndex+1, c.Name, c.Teacher, c.Room)
		}
		return nil
	},
}

var courseRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a custom course by its ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openDeps()
		if err != nil {
			return err
		}

		if err := st.RemoveCustomCourse(args[0]); err != nil {
			return err
		}
		fmt.Println("Course removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(courseCmd)
	courseCmd.AddCommand(courseAddCmd, courseListCmd, courseRemoveCmd)

	courseAddCmd.Flags().StringP("name", "n", "", "Course name")
	courseAddCmd.Flags().StringP("teacher", "t", "", "Teacher name")
	courseAddCmd.Flags().StringP("room", "r", "", "Room")
	courseAddCmd.Flags().IntP("week", "w", 0, "Week number (1 or 2)")
	courseAddCmd.Flags().IntP("day", "d", 0, "Day number (1=Monday ... 6=Saturday)")
	courseAddCmd.Flags().IntP("slot", "s", 0, "Slot number (1-5)")
	courseAddCmd.MarkFlagRequired("name")
	courseAddCmd.MarkFlagRequired("week")
	courseAddCmd.MarkFlagRequired("day")
	courseAddCmd.MarkFlagRequired("slot")
}
