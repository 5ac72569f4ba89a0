package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAddAndContains(t *testing.T) {
	store := openTestStore(t)

	added, err := store.AddWords([]string{"crane", "grape", "tart"}, "remote")
	if err != nil {
		t.Fatalf("AddWords failed: %v", err)
	}
	if added != 3 {
		t.Errorf("added = %d, expected 3", added)
	}

	ok, err := store.Contains("crane")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if !ok {
		t.Error("crane should be cached")
	}

	ok, err = store.Contains("zebra")
	if err != nil {
		t.Fatalf("Contains failed: %v", err)
	}
	if ok {
		t.Error("zebra should not be cached")
	}
}

func TestAddWordsSkipsDuplicates(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.AddWords([]string{"crane", "grape"}, "remote"); err != nil {
		t.Fatalf("AddWords failed: %v", err)
	}

	added, err := store.AddWords([]string{"crane", "melon"}, "remote")
	if err != nil {
		t.Fatalf("AddWords failed: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, expected 1 (crane is a duplicate)", added)
	}
}

func TestCountByLength(t *testing.T) {
	store := openTestStore(t)

	words := []string{"crane", "grape", "tart", "lemon", "fig"}
	if _, err := store.AddWords(words, "remote"); err != nil {
		t.Fatalf("AddWords failed: %v", err)
	}

	counts, err := store.CountByLength()
	if err != nil {
		t.Fatalf("CountByLength failed: %v", err)
	}
	if counts[5] != 3 || counts[4] != 1 || counts[3] != 1 {
		t.Errorf("counts = %v, expected 3x5, 1x4, 1x3", counts)
	}
}

func TestSample(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.AddWords([]string{"crane", "grape", "melon"}, "remote"); err != nil {
		t.Fatalf("AddWords failed: %v", err)
	}

	entries, err := store.Sample(5, 2)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Sample returned %d entries, expected 2", len(entries))
	}
	for _, e := range entries {
		if e.Length != 5 || e.Origin != "remote" {
			t.Errorf("entry = %+v, expected 5-letter remote word", e)
		}
	}
}
