package tui

import (
	"fmt"
	"time"

	"raspictl/pkg/api"
	"raspictl/pkg/store"
	"raspictl/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunChangesTUI fetches substitutions for a chosen date, records them into
// history and prints the stored change history for the active profile.
func RunChangesTUI(st *store.Store, client *api.Client) error {
	profile, err := st.ActiveProfile()
	if err == store.ErrNoProfile {
		fmt.Println(errorStyle.Render("No profile selected yet."))
		return RunProfileTUI(st, client)
	}
	if err != nil {
		return err
	}

	dateStr := time.Now().Format("2006-01-02")
	dateForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Check substitutions for date").
				Value(&dateStr).
				Validate(func(s string) error {
					_, err := time.Parse("2006-01-02", s)
					return err
				}),
		),
	).WithTheme(GetTheme())

	if err := dateForm.Run(); err != nil {
		return err
	}
	date, _ := time.Parse("2006-01-02", dateStr)

	var batch *timetable.OverridesBatch
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Checking substitutions for %s...", dateStr)).
		Action(func() {
			batch, fetchErr = client.FetchOverrides(profile.ID, date)
		}).
		Run()

	if fetchErr != nil {
		fmt.Println(errorStyle.Render("Could not reach the service; showing saved history only."))
	} else if err := st.RecordOverrides(profile.ID, batch); err != nil {
		return fmt.Errorf("failed to record overrides: %w", err)
	}

	PrintHistory(st, profile.ID)
	return nil
}

// PrintHistory prints the stored change history for a profile, newest
// entry first, each override as a "was -> became" line.
func PrintHistory(st *store.Store, profileID string) {
	entries := st.HistoryFor(profileID)
	if len(entries) == 0 {
		fmt.Println(faintStyle.Render("No recorded substitutions yet."))
		return
	}

	for _, entry := range entries {
		fmt.Println(accentStyle.Render(fmt.Sprintf("\n%02d.%02d.%d", entry.Day, entry.Month, entry.Year)))
		if len(entry.Overrides) == 0 {
			fmt.Println(faintStyle.Render("  no changes"))
			continue
		}
		for _, o := range entry.Overrides {
			fmt.Printf("  %s %s → %s\n",
				faintStyle.Render(fmt.Sprintf("slot %d:", o.Index+1)),
				describeLesson(o.ShouldBe),
				describeLesson(o.WillBe))
		}
	}
	fmt.Println()
}

func describeLesson(l timetable.Lesson) string {
	if l.IsEmpty() {
		return faintStyle.Render("no lesson")
	}
	if l.Common != nil {
		return fmt.Sprintf("%s (%s, %s)", l.Common.Name, l.Common.Teacher, l.Common.Room)
	}
	return l.Subgrouped.Name
}
