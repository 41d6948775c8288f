package tui

import (
	"fmt"
	"strings"

	"kvvtracker/pkg/config"
	"kvvtracker/pkg/transit"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Stop", "stop"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "stop" {
			err = runSetDefaultStopTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.kvvtracker.json) ---"))
			if cfg.DefaultStop == "" {
				fmt.Println("Default Stop: Not set")
			} else {
				fmt.Printf("Default Stop: %s\n", cfg.DefaultStop)
			}
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Printf("Log Level: %s\n", cfg.LogLevel)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetDefaultStopTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter your usual stop").
				Description("This will pre-fill the search box on every lookup.").
				Placeholder("e.g. Karlsruhe Marktplatz").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Operation cancelled: No stop provided.")
		return nil
	}

	client := transit.NewClient()
	var stops []transit.Stop
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching the network for '%s'...", input)).
		Action(func() {
			stops, fetchErr = client.SearchStops(input)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not lookup stop: %w", fetchErr)
	}

	if len(stops) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ No matching stops found for '%s'", input)))
		return nil
	}

	// The API sorts by relevance, so the first match is the one searches will resolve to
	match := stops[0]
	cfg.DefaultStop = match.Name

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default stop saved: %s (ID: %s)\n", match.Name, match.ID)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for kvvtracker").
				Description("Select a curated style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s KVV Orange", colorBlock("214")), "214"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
