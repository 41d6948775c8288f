package tui

import (
	"fmt"

	"kvvtracker/pkg/config"
	"kvvtracker/pkg/transit"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunDeparturesTUI launches the interactive departure board. Each search
// prints a fresh board; nothing carries over from the previous one.
func RunDeparturesTUI() error {
	client := transit.NewClient()

	defaultStop := ""
	if cfg, err := config.Load(); err == nil && cfg != nil {
		defaultStop = cfg.DefaultStop
	}

	for {
		stopName := defaultStop

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Stop name").
					Description("Free-text search, the best match is used.").
					Placeholder("e.g. Karlsruhe Marktplatz").
					Value(&stopName),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		var board string

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching departures for '%s'...", stopName)).
			Action(func() {
				board = transit.SearchBoard(client, stopName)
			}).
			Run()

		if board == "" {
			fmt.Println(errorStyle.Render("No upcoming departures found."))
		} else {
			fmt.Print(board)
		}
		fmt.Println()

		again := false
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Search another stop?").
					Value(&again),
			),
		).WithTheme(GetTheme())

		if err := confirm.Run(); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
