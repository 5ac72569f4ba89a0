// Package words supplies target words and judges guesses.
//
// The target for a session is fetched from a remote random-word endpoint
// when possible and drawn from a small embedded list otherwise. The
// acceptable-guess set, however, is always the embedded list: a guess can
// only be submitted if it appears there, even though the target itself may
// come from the (much larger) remote vocabulary. That asymmetry is kept on
// purpose rather than papered over; it is visible behavior of the game.
package words

import (
	"bufio"
	"context"
	"embed"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed lists/4.txt lists/5.txt lists/6.txt
var listFS embed.FS

// Lengths supported by the embedded lists.
var supportedLengths = []int{4, 5, 6}

// SourceConfig configures a word source.
type SourceConfig struct {
	// APIURL is the remote random-word endpoint. The placeholders
	// {length} and {count} are substituted before the request.
	APIURL string

	// Timeout bounds the single remote request per session.
	Timeout time.Duration

	// Seed drives the local fallback choice. 0 means time-based.
	Seed int64

	// Logger receives debug records for absorbed remote failures.
	// Nil disables logging.
	Logger *log.Logger
}

// Source produces one target word per session and judges guesses.
// It is safe for use from multiple sessions.
type Source struct {
	apiURL string
	client *http.Client
	logger *log.Logger

	mu  sync.Mutex
	rng *rand.Rand

	lists map[int][]string
	sets  map[int]map[string]struct{}
}

// NewSource builds a source from the embedded lists and the given config.
func NewSource(cfg SourceConfig) *Source {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	s := &Source{
		apiURL: cfg.APIURL,
		client: &http.Client{Timeout: timeout},
		logger: cfg.Logger,
		rng:    rand.New(rand.NewSource(seed)),
		lists:  make(map[int][]string),
		sets:   make(map[int]map[string]struct{}),
	}

	for _, length := range supportedLengths {
		list := loadList(length)
		s.lists[length] = list
		set := make(map[string]struct{}, len(list))
		for _, w := range list {
			set[w] = struct{}{}
		}
		s.sets[length] = set
	}

	return s
}

// loadList reads one embedded list, keeping only exact-length lowercase
// alphabetic words.
func loadList(length int) []string {
	f, err := listFS.Open(fmt.Sprintf("lists/%d.txt", length))
	if err != nil {
		return nil
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Supported reports whether embedded lists exist for the given length.
func (s *Source) Supported(length int) bool {
	return len(s.lists[length]) > 0
}

// LocalCount returns the number of embedded words for the given length.
func (s *Source) LocalCount(length int) int {
	return len(s.lists[length])
}

// LocalWords returns a copy of the embedded list for the given length.
func (s *Source) LocalWords(length int) []string {
	list := s.lists[length]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// SelectTarget returns the target word for a new session.
//
// It attempts the remote endpoint exactly once; any failure (transport
// error, bad status, malformed body, wrong shape) is absorbed and a word is
// drawn uniformly from the embedded list instead. The result is always a
// lowercase word of the requested length.
func (s *Source) SelectTarget(ctx context.Context, length int) string {
	if s.apiURL != "" {
		fetched, err := s.Fetch(ctx, length, 1)
		if err == nil && len(fetched) > 0 {
			return fetched[0]
		}
		if s.logger != nil {
			s.logger.Debug("remote word selection failed, using local list",
				"length", length, "error", err)
		}
	}
	return s.RandomLocal(length)
}

// Fixed last-resort words per supported length, used if an embedded list
// turns out empty. Keeps the length contract intact.
var fallbackWords = map[int]string{4: "tart", 5: "crane", 6: "anchor"}

// RandomLocal draws a word uniformly from the embedded list for the length.
// Falls back to a fixed word of the same length if no list exists, so
// callers never get "" or a word of the wrong length.
func (s *Source) RandomLocal(length int) string {
	list := s.lists[length]
	if len(list) == 0 {
		if w, ok := fallbackWords[length]; ok {
			return w
		}
		return "crane"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return list[s.rng.Intn(len(list))]
}

// IsAcceptable reports whether the word may be submitted as a guess.
// Membership is judged case-insensitively against the embedded list only;
// remote vocabulary plays no part here.
func (s *Source) IsAcceptable(word string) bool {
	w := strings.ToLower(word)
	set, ok := s.sets[len(w)]
	if !ok {
		return false
	}
	_, ok = set[w]
	return ok
}
