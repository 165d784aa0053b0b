package tui

import (
	"raspictl/pkg/api"
	"raspictl/pkg/config"
	"raspictl/pkg/store"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Fallback styles; GetTheme replaces the accent once config is read.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	baseColor := "39" // default blue

	if cfg, err := config.Load(); err == nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global accent so plain print statements match the forms.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return makeTheme(baseColor)
}

// makeTheme builds a huh theme around the given lipgloss color string. It
// is also used directly for live-previewing a color before it is saved.
func makeTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu interactive experience.
func RunTUI(st *store.Store, client *api.Client) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📅 View Schedule", "schedule"),
					huh.NewOption("🔁 Check Substitutions", "changes"),
					huh.NewOption("➕ Add Custom Course", "course"),
					huh.NewOption("👤 Switch Profile", "profile"),
					huh.NewOption("⚙️ Settings", "settings"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	switch action {
	case "changes":
		return RunChangesTUI(st, client)
	case "course":
		return RunCourseTUI(st, client)
	case "profile":
		return RunProfileTUI(st, client)
	case "settings":
		return RunSettingsTUI()
	default:
		return RunScheduleTUI(st, client)
	}
}
