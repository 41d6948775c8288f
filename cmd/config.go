package cmd

import (
	"fmt"

	"kvvtracker/pkg/config"
	"kvvtracker/pkg/transit"
	"kvvtracker/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kvvtracker configuration",
	Long:  "View or edit your local configuration settings (like the default stop pre-filled into every search).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setStop, _ := cmd.Flags().GetString("set-default-stop")
		if setStop != "" {
			fmt.Printf("Searching the KVV network for: '%s'...\n", setStop)

			client := transit.NewClient()
			stops, err := client.SearchStops(setStop)
			if err != nil {
				return fmt.Errorf("could not lookup stop: %w", err)
			}
			if len(stops) == 0 {
				return fmt.Errorf("no matching stops found for '%s'", setStop)
			}

			// Snag the first/best match, same one a search would resolve to
			match := stops[0]
			cfg.DefaultStop = match.Name

			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Default stop successfully saved as: %s (ID: %s)\n", match.Name, match.ID)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-default-stop", "s", "", "Set the stop pre-filled into every search")
}
