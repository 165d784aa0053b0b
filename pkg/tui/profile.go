package tui

import (
	"fmt"
	"strings"

	"raspictl/pkg/api"
	"raspictl/pkg/store"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RunProfileTUI lets the user pick a student group or a teacher from the
// service listing and makes it the active profile.
func RunProfileTUI(st *store.Store, client *api.Client) error {
	var profileType string

	typeForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Whose schedule do you want to see?").
				Options(
					huh.NewOption("🎓 A student group", store.ProfileStudent),
					huh.NewOption("🧑‍🏫 A teacher", store.ProfileTeacher),
				).
				Value(&profileType),
		),
	).WithTheme(GetTheme())

	if err := typeForm.Run(); err != nil {
		return err
	}

	var items *api.Items
	var err error

	_ = spinner.New().
		Title("Fetching groups and teachers...").
		Action(func() {
			items, err = client.FetchItems()
		}).
		Run()

	if err != nil {
		return fmt.Errorf("failed to fetch items: %w", err)
	}

	names := items.Groups
	if profileType == store.ProfileTeacher {
		names = items.Teachers
	}
	if len(names) == 0 {
		fmt.Println(errorStyle.Render("The service returned no entries to pick from."))
		return nil
	}

	var options []huh.Option[string]
	for _, name := range names {
		options = append(options, huh.NewOption(displayName(profileType, name), name))
	}

	var selected string
	pickForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your profile").
				Description("Start typing to filter.").
				Options(options...).
				Value(&selected).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := pickForm.Run(); err != nil {
		return err
	}

	profile := store.Profile{
		Type: profileType,
		ID:   selected,
		Name: displayName(profileType, selected),
	}
	if err := st.SetProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("Profile set to %s.", profile.Name)))
	return nil
}

// displayName prettifies listing entries: the service sends teacher names
// in all caps, which read poorly in menus.
func displayName(profileType, raw string) string {
	if profileType != store.ProfileTeacher {
		return raw
	}
	if raw != strings.ToUpper(raw) {
		return raw
	}
	return cases.Title(language.Russian).String(strings.ToLower(raw))
}
