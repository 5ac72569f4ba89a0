package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newLocalSource(seed int64) *Source {
	return NewSource(SourceConfig{Seed: seed})
}

func TestEmbeddedListsLoad(t *testing.T) {
	s := newLocalSource(1)

	for _, length := range []int{4, 5, 6} {
		if !s.Supported(length) {
			t.Errorf("length %d should be supported", length)
		}
		if n := s.LocalCount(length); n < 50 {
			t.Errorf("list for length %d has %d words, expected a reasonable pool", length, n)
		}
	}
	if s.Supported(7) {
		t.Error("length 7 has no embedded list")
	}
}

func TestRandomLocalShape(t *testing.T) {
	s := newLocalSource(42)

	for i := 0; i < 50; i++ {
		w := s.RandomLocal(5)
		if len(w) != 5 || !isAlpha(w) {
			t.Fatalf("RandomLocal(5) = %q, expected 5 lowercase letters", w)
		}
		if !s.IsAcceptable(w) {
			t.Fatalf("local word %q should be acceptable", w)
		}
	}
}

func TestRandomLocalEmptyListKeepsLength(t *testing.T) {
	s := newLocalSource(7)

	// Even with a missing list the word must match the requested length
	for _, length := range []int{4, 5, 6} {
		s.lists[length] = nil
		w := s.RandomLocal(length)
		if len(w) != length || !isAlpha(w) {
			t.Errorf("RandomLocal(%d) = %q, expected %d lowercase letters", length, w, length)
		}
	}
}

func TestIsAcceptable(t *testing.T) {
	s := newLocalSource(1)

	if !s.IsAcceptable("crane") {
		t.Error("crane should be in the embedded list")
	}
	// Case-insensitive membership
	if !s.IsAcceptable("CRANE") {
		t.Error("membership check should ignore case")
	}
	if s.IsAcceptable("zzzzz") {
		t.Error("zzzzz should not be acceptable")
	}
	if s.IsAcceptable("") || s.IsAcceptable("toolongword") {
		t.Error("unsupported lengths should not be acceptable")
	}
}

func TestSelectTargetUsesRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("length"); got != "5" {
			t.Errorf("length query = %q, expected 5", got)
		}
		w.Write([]byte(`["QUIXOTRY", "proxy"]`))
	}))
	defer server.Close()

	s := NewSource(SourceConfig{
		APIURL: server.URL + "?length={length}&number={count}",
		Seed:   1,
	})

	// First valid entry wins; wrong-length entries are skipped
	got := s.SelectTarget(context.Background(), 5)
	if got != "proxy" {
		t.Errorf("SelectTarget = %q, expected %q", got, "proxy")
	}
}

// The target vocabulary is a superset of the acceptable-guess vocabulary:
// a remote target need not be an acceptable guess itself.
func TestRemoteTargetMayBeUnguessable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["xylyl"]`))
	}))
	defer server.Close()

	s := NewSource(SourceConfig{APIURL: server.URL, Seed: 1})

	target := s.SelectTarget(context.Background(), 5)
	if target != "xylyl" {
		t.Fatalf("SelectTarget = %q, expected the remote word", target)
	}
	if s.IsAcceptable(target) {
		t.Error("remote-only target should not be in the acceptable set")
	}
}

func TestSelectTargetFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"not": "a list"}`))
			},
		},
		{
			name: "empty list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			},
		},
		{
			name: "wrong shapes only",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`["toolong", "ab", "num3r"]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			s := NewSource(SourceConfig{APIURL: server.URL, Seed: 7})

			// Failure is fully absorbed; a local word comes back
			w := s.SelectTarget(context.Background(), 5)
			if len(w) != 5 || !isAlpha(w) {
				t.Fatalf("fallback word = %q, expected 5 lowercase letters", w)
			}
			if !s.IsAcceptable(w) {
				t.Errorf("fallback word %q should come from the embedded list", w)
			}
		})
	}
}

func TestSelectTargetUnreachableRemote(t *testing.T) {
	// Closed server: connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	s := NewSource(SourceConfig{APIURL: url, Seed: 3, Timeout: 500 * time.Millisecond})

	w := s.SelectTarget(context.Background(), 4)
	if len(w) != 4 || !s.IsAcceptable(w) {
		t.Errorf("fallback word = %q, expected an embedded 4-letter word", w)
	}
}

func TestFetchBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("number"); got != "3" {
			t.Errorf("number query = %q, expected 3", got)
		}
		w.Write([]byte(`["apple", "berry", "melon"]`))
	}))
	defer server.Close()

	s := NewSource(SourceConfig{
		APIURL: server.URL + "?length={length}&number={count}",
		Seed:   1,
	})

	got, err := s.Fetch(context.Background(), 5, 3)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Fetch returned %d words, expected 3", len(got))
	}
}
