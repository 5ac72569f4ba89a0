package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ndemidov/tui-wordle/internal/config"
	"github.com/ndemidov/tui-wordle/internal/core"
	"github.com/ndemidov/tui-wordle/internal/games/wordle"
	"github.com/ndemidov/tui-wordle/internal/platform/tui"
	"github.com/ndemidov/tui-wordle/internal/registry"
	"github.com/ndemidov/tui-wordle/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a round",
	Long: `Start a round of the specified board variant (default: classic).

Controls:
  a-z        - Type a letter
  Enter      - Submit the row
  Backspace  - Delete a letter
  Ctrl+R     - New word
  Esc/Ctrl+C - Quit

Examples:
  wordle play
  wordle play mini
  wordle play grand --config ./my-wordle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := "classic"
	if len(args) > 0 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'wordle list' to see available variants.")
		os.Exit(1)
	}

	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := newSource(appCfg)
	wordle.SetDictionary(source)
	wordle.SetShowKeyboard(appCfg.UI.ShowKeyboard)

	game, err := registry.Create(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, source, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newSource builds the word source shared by a run of the program.
func newSource(appCfg config.Config) *words.Source {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "wordle"})

	return words.NewSource(words.SourceConfig{
		APIURL:  appCfg.Source.APIURL,
		Timeout: time.Duration(appCfg.Source.TimeoutMS) * time.Millisecond,
		Seed:    flagSeed,
		Logger:  logger,
	})
}

// runtimeConfig builds a runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
