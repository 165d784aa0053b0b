package tui

import (
	"fmt"

	"raspictl/pkg/config"

	"github.com/charmbracelet/huh"
)

var accentChoices = []huh.Option[string]{
	huh.NewOption("Blue (default)", "39"),
	huh.NewOption("Purple", "99"),
	huh.NewOption("Pink", "205"),
	huh.NewOption("Green", "78"),
	huh.NewOption("Orange", "214"),
}

// RunSettingsTUI edits the local application settings.
func RunSettingsTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	accent := cfg.AccentColor
	if accent == "" {
		accent = "39"
	}
	baseURL := cfg.BaseURL

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent color").
				Options(accentChoices...).
				Value(&accent),

			huh.NewInput().
				Title("Service base URL").
				Description("Leave empty to use the default endpoint.").
				Value(&baseURL),
		),
	).WithTheme(makeTheme(accent))

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = accent
	cfg.BaseURL = baseURL
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("Settings saved."))
	return nil
}
