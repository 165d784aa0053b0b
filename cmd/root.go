package cmd

import (
	"fmt"
	"os"

	"raspictl/pkg/api"
	"raspictl/pkg/config"
	"raspictl/pkg/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "raspictl",
	Short: "A CLI and TUI for the college timetable",
	Long: `raspictl shows the recurring two-week class schedule with the day's
substitutions applied, keeps a history of schedule changes, and manages
per-profile notes and custom courses locally.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openDeps builds the store and service client every command starts from.
func openDeps() (*store.Store, *api.Client, error) {
	dir, err := store.DefaultDir()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local store: %w", err)
	}

	baseURL := ""
	if cfg, err := config.Load(); err == nil {
		baseURL = cfg.BaseURL
	}
	return st, api.NewClient(baseURL), nil
}
