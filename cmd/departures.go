package cmd

import (
	"fmt"
	"os"
	"strings"

	"kvvtracker/pkg/config"
	"kvvtracker/pkg/exporter"
	"kvvtracker/pkg/transit"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var departuresCmd = &cobra.Command{
	Use:   "departures [stop name]",
	Short: "Show live departures for a KVV stop",
	Long:  "Resolves a free-text stop name against the KVV API and prints the upcoming departures grouped by platform, soonest first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stopName := strings.TrimSpace(strings.Join(args, " "))
		if stopName == "" {
			if cfg, err := config.Load(); err == nil && cfg != nil {
				stopName = cfg.DefaultStop
			}
		}

		client := transit.NewClient()

		if stopName == "" {
			fmt.Println("Please enter a stop name.")
			return nil
		}

		if exportICS, _ := cmd.Flags().GetBool("export"); exportICS {
			return exportDeparturesICS(client, stopName)
		}

		var board string

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching live departures for %s...", stopName)).
			Action(func() {
				board = transit.SearchBoard(client, stopName)
			}).
			Run()

		fmt.Printf("\n--- 🚋 Departures: %s ---\n", cases.Title(language.German).String(stopName))

		if board == "" {
			fmt.Println("No upcoming departures found.")
			return nil
		}

		fmt.Print(board)
		return nil
	},
}

func exportDeparturesICS(client *transit.Client, stopName string) error {
	var stops []transit.Stop
	var deps []transit.Departure
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Exporting departure board for %s...", stopName)).
		Action(func() {
			stops, fetchErr = client.SearchStops(stopName)
			if fetchErr != nil || len(stops) == 0 {
				return
			}
			deps, fetchErr = client.FetchDepartures(stops[0].ID)
		}).
		Run()

	if fetchErr != nil {
		return fetchErr
	}
	if len(stops) == 0 {
		fmt.Println("No stop found.")
		return nil
	}
	if len(deps) == 0 {
		fmt.Println("No upcoming departures to export.")
		return nil
	}

	filename := fmt.Sprintf("departures_%s.ics", strings.ReplaceAll(strings.ToLower(stops[0].Name), " ", "_"))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create ics file: %w", err)
	}
	defer f.Close()

	if err := exporter.GenerateICS(stops[0].Name, deps, f); err != nil {
		return err
	}

	fmt.Printf("\n✨ Successfully exported %d departures to: %s\n", len(deps), filename)
	return nil
}

func init() {
	rootCmd.AddCommand(departuresCmd)
	departuresCmd.Flags().BoolP("export", "e", false, "Export the departure board to an .ics calendar file")
}
