package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndemidov/tui-wordle/internal/config"
	"github.com/ndemidov/tui-wordle/internal/storage"
)

var (
	flagSyncLength int
	flagSyncCount  int
	flagSampleSize int
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the local dictionary cache",
	Long: `Inspect and maintain the on-disk dictionary cache.

The cache is a convenience for offline browsing of fetched vocabulary.
Gameplay never reads it: targets come from the remote endpoint or the
embedded lists, and guesses are checked against the embedded lists only.

Examples:
  wordle dict sync --length 5 --count 200
  wordle dict stats
  wordle dict check crane
  wordle dict sample 5`,
}

var dictSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch remote words into the cache",
	Long: `Fetch a batch of words from the remote endpoint and store them.

Also seeds the cache with the embedded lists so stats reflect the full
local vocabulary.

Examples:
  wordle dict sync
  wordle dict sync --length 6 --count 500`,
	Run: runDictSync,
}

var dictStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	Run:   runDictStats,
}

var dictCheckCmd = &cobra.Command{
	Use:   "check <word>",
	Short: "Check whether a word is in the cache",
	Args:  cobra.ExactArgs(1),
	Run:   runDictCheck,
}

var dictSampleCmd = &cobra.Command{
	Use:   "sample <length>",
	Short: "Show a sample of cached words of a given length",
	Args:  cobra.ExactArgs(1),
	Run:   runDictSample,
}

func init() {
	dictSyncCmd.Flags().IntVar(&flagSyncLength, "length", 5, "Word length to fetch")
	dictSyncCmd.Flags().IntVar(&flagSyncCount, "count", 100, "Number of words to request")
	dictSampleCmd.Flags().IntVar(&flagSampleSize, "limit", 20, "Maximum number of words to show")

	dictCmd.AddCommand(dictSyncCmd)
	dictCmd.AddCommand(dictStatsCmd)
	dictCmd.AddCommand(dictCheckCmd)
	dictCmd.AddCommand(dictSampleCmd)
}

// openCache opens the dictionary cache or exits with an error.
func openCache() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cache: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runDictSync(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := newSource(appCfg)

	store := openCache()
	defer store.Close()

	// Seed with the embedded lists first
	for _, length := range []int{4, 5, 6} {
		list := source.LocalWords(length)
		added, seedErr := store.AddWords(list, "embedded")
		if seedErr != nil {
			fmt.Fprintf(os.Stderr, "Error seeding cache: %v\n", seedErr)
			os.Exit(1)
		}
		if added > 0 {
			fmt.Printf("Seeded %d embedded words of length %d\n", added, length)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetched, err := source.Fetch(ctx, flagSyncLength, flagSyncCount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching words: %v\n", err)
		os.Exit(1)
	}

	added, err := store.AddWords(fetched, "remote")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error storing words: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fetched %d words, added %d new (length %d)\n", len(fetched), added, flagSyncLength)
}

func runDictStats(_ *cobra.Command, _ []string) {
	store := openCache()
	defer store.Close()

	counts, err := store.CountByLength()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cache: %v\n", err)
		os.Exit(1)
	}

	if len(counts) == 0 {
		fmt.Println("Cache is empty. Run 'wordle dict sync' to populate it.")
		return
	}

	lengths := make([]int, 0, len(counts))
	total := 0
	for length, n := range counts {
		lengths = append(lengths, length)
		total += n
	}
	sort.Ints(lengths)

	fmt.Println("Cached words by length:")
	for _, length := range lengths {
		fmt.Printf("  %d letters: %d\n", length, counts[length])
	}
	fmt.Printf("  total: %d\n", total)
}

func runDictCheck(_ *cobra.Command, args []string) {
	store := openCache()
	defer store.Close()

	word := args[0]
	found, err := store.Contains(word)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cache: %v\n", err)
		os.Exit(1)
	}

	if found {
		fmt.Printf("%q is in the cache\n", word)
	} else {
		fmt.Printf("%q is not in the cache\n", word)
	}
}

func runDictSample(_ *cobra.Command, args []string) {
	length, err := strconv.Atoi(args[0])
	if err != nil || length <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid length %q\n", args[0])
		os.Exit(1)
	}

	store := openCache()
	defer store.Close()

	entries, err := store.Sample(length, flagSampleSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading cache: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Printf("No cached words of length %d.\n", length)
		return
	}

	for _, e := range entries {
		fmt.Printf("  %-10s %-8s %s\n", e.Word, e.Origin, e.FetchedAt.Format("2006-01-02"))
	}
}
