package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndemidov/tui-wordle/internal/config"
	"github.com/ndemidov/tui-wordle/internal/games/wordle"
	"github.com/ndemidov/tui-wordle/internal/platform/tui"
	"github.com/ndemidov/tui-wordle/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board variant interactively",
	Long: `Start with an interactive variant picker.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a round ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit

Examples:
  wordle menu
  wordle menu --fps 60`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := newSource(appCfg)
	wordle.SetDictionary(source)
	wordle.SetShowKeyboard(appCfg.UI.ShowKeyboard)

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.VariantID == "" {
			break
		}

		game, err := registry.Create(menuResult.VariantID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed each round
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, source, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
