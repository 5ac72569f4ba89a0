package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var errEmptyResponse = errors.New("words: remote returned no usable words")

// Fetch performs one GET against the remote random-word endpoint and
// returns up to count validated words of the requested length.
//
// The endpoint is expected to answer with a JSON array of strings; entries
// of the wrong length or with non-alphabetic characters are dropped. Any
// transport or shape problem is returned as an error for the caller to
// absorb.
func (s *Source) Fetch(ctx context.Context, length, count int) ([]string, error) {
	if s.apiURL == "" {
		return nil, errors.New("words: no remote endpoint configured")
	}

	url := strings.ReplaceAll(s.apiURL, "{length}", strconv.Itoa(length))
	url = strings.ReplaceAll(url, "{count}", strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("words: cannot build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("words: remote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("words: remote returned status %d", resp.StatusCode)
	}

	var raw []string
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("words: cannot decode response: %w", err)
	}

	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		w := strings.TrimSpace(strings.ToLower(entry))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, errEmptyResponse
	}
	return out, nil
}
