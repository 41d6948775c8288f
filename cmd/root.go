package cmd

import (
	"fmt"
	"os"

	"kvvtracker/pkg/config"
	"kvvtracker/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kvvtracker",
	Short: "A CLI and TUI for KVV departure boards",
	Long: `kvvtracker looks up a KVV stop by name and shows its upcoming
departures grouped by platform, soonest first.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if cfg, err := config.Load(); err == nil && cfg.LogLevel != "" {
			if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				level = parsed
			}
		}
		logger.Init(verbose, level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Echo diagnostic logs to the terminal")
}
