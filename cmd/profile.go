package cmd

import (
	"fmt"

	"raspictl/pkg/store"
	"raspictl/pkg/tui"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Select or manage the active profile",
	Long: `Pick the student group or teacher whose schedule is shown. One profile
of each type can be held at a time; without flags an interactive picker
is launched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, client, err := openDeps()
		if err != nil {
			return err
		}

		if use, _ := cmd.Flags().GetString("use"); use != "" {
			if use != store.ProfileStudent && use != store.ProfileTeacher {
				return fmt.Errorf("--use must be %q or %q", store.ProfileStudent, store.ProfileTeacher)
			}
			if err := st.SwitchProfile(use); err != nil {
				return fmt.Errorf("no saved %s profile yet", use)
			}
			p, _ := st.ActiveProfile()
			fmt.Printf("Switched to %s (%s)\n", p.Name, p.Type)
			return nil
		}

		if cmd.Flags().Changed("subscribe") {
			profile, err := st.ActiveProfile()
			if err != nil {
				return fmt.Errorf("no profile selected yet")
			}
			enabled, _ := cmd.Flags().GetBool("subscribe")
			if err := st.SetOverridesEnabled(profile.ID, enabled); err != nil {
				return err
			}
			if enabled {
				fmt.Println("Substitutions overlay enabled.")
			} else {
				fmt.Println("Substitutions overlay disabled; the base schedule will be shown.")
			}
			return nil
		}

		return tui.RunProfileTUI(st, client)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringP("use", "u", "", "Switch to the saved 'student' or 'teacher' profile")
	profileCmd.Flags().Bool("subscribe", true, "Enable or disable the substitutions overlay for the active profile")
}
