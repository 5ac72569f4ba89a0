// wordle is a terminal word-guessing puzzle.
//
// Usage:
//
//	wordle list              - List available board variants
//	wordle play [variant]    - Play a round (default: classic)
//	wordle menu              - Pick a variant interactively
//	wordle serve             - Start SSH server for remote play
//	wordle dict <subcommand> - Manage the local dictionary cache
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible word fallback
//	--db <path>      - Set dictionary cache path (default: ~/.wordle/dict.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/ndemidov/tui-wordle/internal/games/wordle"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - Guess the word in your terminal",
	Long: `Wordle is a terminal word-guessing puzzle. Guess the hidden word in
six tries; after each guess the letters are colored to show how close
you were.

Available commands:
  list     - Show all board variants
  play     - Play a round directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  dict     - Manage the local dictionary cache

Examples:
  wordle play
  wordle play grand
  wordle menu
  wordle serve --ssh :2222
  wordle dict stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordle/dict.db", "Path to dictionary cache")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dictCmd)
}
