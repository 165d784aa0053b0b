package tui

import (
	"fmt"
	"strings"
	"time"

	"raspictl/pkg/api"
	"raspictl/pkg/store"
	"raspictl/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// LoadDay fetches the active profile's data for a date and runs the
// bookkeeping that follows every successful fetch: replacing the session's
// base schedule, caching the payload on the profile and recording the
// date's overrides into history. When the service is unreachable it falls
// back to the last cached schedule; the second return reports that
// staleness. The returned DayData's Schedule is always the store's base,
// so overlays read whatever the session currently holds.
func LoadDay(st *store.Store, client *api.Client, schedules *timetable.ScheduleStore, date time.Time) (*api.DayData, bool, error) {
	profile, err := st.ActiveProfile()
	if err != nil {
		return nil, false, err
	}

	var data *api.DayData
	var stale bool
	var loadErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching schedule for %s...", profile.Name)).
		Action(func() {
			data, stale, loadErr = loadDay(st, client, schedules, profile, date)
		}).
		Run()

	return data, stale, loadErr
}

func loadDay(st *store.Store, client *api.Client, schedules *timetable.ScheduleStore, profile store.Profile, date time.Time) (*api.DayData, bool, error) {
	data, fetchErr := client.FetchDay(profile.ID, date)
	if fetchErr != nil {
		if profile.Schedule != nil {
			schedules.Replace(profile.Schedule)
			stale := &api.DayData{Schedule: schedules.Base(), Overrides: profile.Overrides}
			return stale, true, nil
		}
		return nil, false, fetchErr
	}

	schedules.Replace(data.Schedule)
	data.Schedule = schedules.Base()

	if err := st.CacheProfileData(profile.Type, data.Schedule, data.Overrides); err != nil {
		return nil, false, err
	}
	if err := st.RecordOverrides(profile.ID, data.Overrides); err != nil {
		return nil, false, err
	}
	return data, false, nil
}

// RunScheduleTUI shows the display schedule for the active profile with
// the current date's substitutions applied.
func RunScheduleTUI(st *store.Store, client *api.Client) error {
	profile, err := st.ActiveProfile()
	if err == store.ErrNoProfile {
		fmt.Println(errorStyle.Render("No profile selected yet."))
		return RunProfileTUI(st, client)
	}
	if err != nil {
		return err
	}

	schedules := timetable.NewScheduleStore()
	data, stale, err := LoadDay(st, client, schedules, time.Now())
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	if stale {
		fmt.Println(errorStyle.Render("Service unreachable; showing the last saved schedule."))
	}

	var week int
	weekForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which week?").
				Options(
					huh.NewOption("First week", 0),
					huh.NewOption("Second week", 1),
				).
				Value(&week),
		),
	).WithTheme(GetTheme())

	if err := weekForm.Run(); err != nil {
		return err
	}

	display := timetable.ApplyOverrides(data.Schedule, data.Overrides, st.OverridesEnabled(profile.ID))
	fmt.Print(RenderWeek(st, profile, display, week))

	if banner := api.ActiveEvents(data.Events, time.Now()); len(banner) > 0 {
		for _, e := range banner {
			fmt.Println(accentStyle.Render(fmt.Sprintf("ℹ %s (%s)", e.Title, e.Code)))
		}
	}
	return nil
}

// RenderWeek formats one week of a display schedule, overlaying the
// profile's custom courses and note markers.
func RenderWeek(st *store.Store, profile store.Profile, display *timetable.Schedule, week int) string {
	dayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	courses := make(map[string]store.CustomCourse)
	for _, c := range st.CoursesFor(profile.ID) {
		courses[store.SlotKey(c.WeekIndex, c.DayIndex, c.LessonIndex)] = c
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", accentStyle.Render(fmt.Sprintf("--- %s, week %d ---", profile.Name, week+1)))

	for day := 0; day < timetable.DaysPerWeek; day++ {
		fmt.Fprintf(&b, "\n%s\n", dayStyle.Render(timetable.DayNames[day]))

		for slot := 0; slot < timetable.SlotsPerDay; slot++ {
			key := store.SlotKey(week, day, slot)
			lesson := display.Slot(week, day, slot)
			line := formatLesson(lesson)

			if day == timetable.Tuesday && slot == timetable.ClassHourIndex && lesson.IsEmpty() {
				line = faintStyle.Render("Class hour")
			}

			if c, ok := courses[key]; ok && lesson.IsEmpty() {
				line = fmt.Sprintf("%s — %s, %s %s", c.Name, c.Teacher, c.Room, faintStyle.Render("(custom)"))
			}
			if _, ok := st.NoteFor(profile.ID, key); ok {
				line += " 📝"
			}

			fmt.Fprintf(&b, "  %s %s\n", faintStyle.Render(timetable.Bells[slot].Start), line)
		}
	}
	b.WriteString("\n")
	return b.String()
}

func formatLesson(l timetable.Lesson) string {
	if l.IsEmpty() {
		return faintStyle.Render("—")
	}
	if l.Common != nil {
		line := fmt.Sprintf("%s — %s, %s", l.Common.Name, l.Common.Teacher, l.Common.Room)
		if l.Common.Group != "" {
			line += fmt.Sprintf(" (%s)", l.Common.Group)
		}
		return line
	}
	var parts []string
	for _, sub := range l.Subgrouped.Subgroups {
		parts = append(parts, fmt.Sprintf("%d: %s, %s", sub.SubgroupIndex+1, sub.Teacher, sub.Room))
	}
	return fmt.Sprintf("%s [%s]", l.Subgrouped.Name, strings.Join(parts, "; "))
}
