package tui

import (
	"fmt"
	"time"

	"raspictl/pkg/api"
	"raspictl/pkg/store"
	"raspictl/pkg/timetable"

	"github.com/charmbracelet/huh"
)

// RunCourseTUI inserts a custom course into a slot verified free by the
// override engine, or removes an existing one.
func RunCourseTUI(st *store.Store, client *api.Client) error {
	profile, err := st.ActiveProfile()
	if err == store.ErrNoProfile {
		fmt.Println(errorStyle.Render("No profile selected yet."))
		return RunProfileTUI(st, client)
	}
	if err != nil {
		return err
	}

	existing := st.CoursesFor(profile.ID)

	var action = "add"
	if len(existing) > 0 {
		actionForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Custom courses").
					Options(
						huh.NewOption("Add a new course", "add"),
						huh.NewOption("Remove an existing course", "remove"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())
		if err := actionForm.Run(); err != nil {
			return err
		}
	}

	if action == "remove" {
		return removeCourse(st, existing)
	}
	return addCourse(st, client, profile)
}

func removeCourse(st *store.Store, existing []store.CustomCourse) error {
	var options []huh.Option[string]
	for _, c := range existing {
		label := fmt.Sprintf("%s (%s, week %d, slot %d)",
			c.Name, timetable.DayNames[c.DayIndex], c.WeekIndex+1, c.LessonIndex+1)
		options = append(options, huh.NewOption(label, c.ID))
	}

	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Remove which course?").
				Options(options...).
				Value(&id),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if err := st.RemoveCustomCourse(id); err != nil {
		return err
	}
	fmt.Println(accentStyle.Render("Course removed."))
	return nil
}

func addCourse(st *store.Store, client *api.Client, profile store.Profile) error {
	data, stale, err := LoadDay(st, client, timetable.NewScheduleStore(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	if stale {
		fmt.Println(errorStyle.Render("Service unreachable; availability is based on the last saved schedule."))
	}

	var week, day int
	var dayOptions []huh.Option[int]
	for d := 0; d < timetable.DaysPerWeek; d++ {
		dayOptions = append(dayOptions, huh.NewOption(timetable.DayNames[d], d))
	}

	whereForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which week?").
				Options(
					huh.NewOption("First week", 0),
					huh.NewOption("Second week", 1),
				).
				Value(&week),
			huh.NewSelect[int]().
				Title("Which day?").
				Options(dayOptions...).
				Value(&day),
		),
	).WithTheme(GetTheme())

	if err := whereForm.Run(); err != nil {
		return err
	}

	free := timetable.FreeSlots(data.Schedule, data.Overrides, week, day)

	// Slots already taken by another custom course are not free either.
	taken := make(map[int]bool)
	for _, c := range st.CoursesFor(profile.ID) {
		if c.WeekIndex == week && c.DayIndex == day {
			taken[c.LessonIndex] = true
		}
	}

	var slotOptions []huh.Option[int]
	for _, index := range free {
		if taken[index] {
			continue
		}
		bell := timetable.Bells[index]
		slotOptions = append(slotOptions, huh.NewOption(
			fmt.Sprintf("Slot %d (%s–%s)", index+1, bell.Start, bell.End), index))
	}

	if len(slotOptions) == 0 {
		fmt.Println(errorStyle.Render("No free slots on that day."))
		return nil
	}

	var slot int
	var name, teacher, room string

	courseForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Free slot").
				Options(slotOptions...).
				Value(&slot),

			huh.NewInput().
				Title("Course name").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("course name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Title("Teacher").
				Value(&teacher),

			huh.NewInput().
				Title("Room").
				Value(&room),
		),
	).WithTheme(GetTheme())

	if err := courseForm.Run(); err != nil {
		return err
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
		return fmt.Errorf("failed to save course: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Added %s on %s, slot %d.",
		course.Name, timetable.DayNames[day], slot+1)))
	return nil
}
