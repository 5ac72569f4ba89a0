package wordle

import (
	"errors"
	"testing"
)

// listDict is a test dictionary backed by a fixed word set.
type listDict map[string]bool

func (d listDict) IsAcceptable(word string) bool { return d[word] }

// typeWord enters a full word into the current row.
func typeWord(t *testing.T, s *Session, word string) {
	t.Helper()
	for _, r := range word {
		if !s.AddLetter(r) {
			t.Fatalf("AddLetter(%q) rejected", r)
		}
	}
}

func TestSessionAddRemoveLetter(t *testing.T) {
	s := NewSession(6, 5)
	s.SetTarget("crane")

	if ok := s.AddLetter('g'); !ok {
		t.Fatal("AddLetter should accept the first letter")
	}
	if s.Cursor() != 1 {
		t.Errorf("Cursor = %d, expected 1", s.Cursor())
	}

	// Non-letters are rejected
	if s.AddLetter('1') || s.AddLetter('!') || s.AddLetter('G') {
		t.Error("AddLetter should reject non a-z runes")
	}

	typeWord(t, s, "rape")
	if s.Cursor() != 5 {
		t.Fatalf("Cursor = %d, expected 5", s.Cursor())
	}

	// Row is full; further letters are ignored
	if s.AddLetter('x') {
		t.Error("AddLetter should reject when the row is full")
	}

	if !s.RemoveLetter() {
		t.Fatal("RemoveLetter should retract the cursor")
	}
	if s.Cursor() != 4 || s.Letter(0, 4) != 0 {
		t.Errorf("after remove: cursor=%d letter=%q, expected 4 and empty", s.Cursor(), s.Letter(0, 4))
	}

	// Drain the row; removing from an empty row is ignored
	for s.Cursor() > 0 {
		s.RemoveLetter()
	}
	if s.RemoveLetter() {
		t.Error("RemoveLetter should reject when the row is empty")
	}
}

func TestSessionSubmitIncomplete(t *testing.T) {
	s := NewSession(6, 5)
	s.SetTarget("crane")
	typeWord(t, s, "gra")

	_, err := s.Submit(nil)
	if !errors.Is(err, ErrIncompleteRow) {
		t.Fatalf("Submit = %v, expected ErrIncompleteRow", err)
	}

	// No state change on rejection
	if s.Row() != 0 || s.Cursor() != 3 {
		t.Errorf("state changed on incomplete submit: row=%d cursor=%d", s.Row(), s.Cursor())
	}
	if s.Result(0) != nil {
		t.Error("incomplete submit should not record a result")
	}
}

func TestSessionSubmitNotInList(t *testing.T) {
	dict := listDict{"crane": true, "grape": true}
	s := NewSession(6, 5)
	s.SetTarget("crane")
	typeWord(t, s, "zzzzz")

	_, err := s.Submit(dict)
	if !errors.Is(err, ErrNotInList) {
		t.Fatalf("Submit = %v, expected ErrNotInList", err)
	}

	// Grid, cursor, and attempt untouched
	if s.Row() != 0 || s.Cursor() != 5 {
		t.Errorf("state changed on rejected word: row=%d cursor=%d", s.Row(), s.Cursor())
	}
	if s.Letter(0, 0) != 'z' {
		t.Error("grid changed on rejected word")
	}
	if s.Result(0) != nil {
		t.Error("rejected word should not record a result")
	}
}

func TestSessionSubmitAdvancesRow(t *testing.T) {
	dict := listDict{"crane": true, "grape": true}
	s := NewSession(6, 5)
	s.SetTarget("crane")
	typeWord(t, s, "grape")

	res, err := s.Submit(dict)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	want := statuses(StatusWrong, StatusCorrect, StatusCorrect, StatusWrong, StatusCorrect)
	if !equalStatuses(res, want) {
		t.Errorf("result = %v, expected %v", res, want)
	}

	if s.Row() != 1 || s.Cursor() != 0 {
		t.Errorf("after submit: row=%d cursor=%d, expected 1 and 0", s.Row(), s.Cursor())
	}
	if s.Over() {
		t.Error("round should continue after a wrong guess")
	}
	if !equalStatuses(s.Result(0), want) {
		t.Error("Result(0) should return the recorded evaluation")
	}
}

func TestSessionWin(t *testing.T) {
	s := NewSession(6, 5)
	s.SetTarget("crane")
	typeWord(t, s, "crane")

	res, err := s.Submit(nil)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	for _, st := range res {
		if st != StatusCorrect {
			t.Fatalf("winning guess result = %v, expected all correct", res)
		}
	}

	if !s.Won() || s.Lost() {
		t.Errorf("won=%v lost=%v, expected won", s.Won(), s.Lost())
	}

	// Terminal: no further input accepted
	if s.AddLetter('a') {
		t.Error("AddLetter should reject after the round ends")
	}
	if _, err := s.Submit(nil); !errors.Is(err, ErrFinished) {
		t.Errorf("Submit after win = %v, expected ErrFinished", err)
	}
}

func TestSessionWinOnLastAttempt(t *testing.T) {
	s := NewSession(2, 5)
	s.SetTarget("crane")

	typeWord(t, s, "grape")
	if _, err := s.Submit(nil); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	// Correct word on the final allowed attempt must win, not lose
	typeWord(t, s, "crane")
	if _, err := s.Submit(nil); err != nil {
		t.Fatalf("final submit failed: %v", err)
	}
	if !s.Won() || s.Lost() {
		t.Errorf("won=%v lost=%v, expected a win on the last attempt", s.Won(), s.Lost())
	}
}

func TestSessionLoss(t *testing.T) {
	s := NewSession(3, 5)
	s.SetTarget("crane")

	for i := 0; i < 3; i++ {
		typeWord(t, s, "grape")
		if _, err := s.Submit(nil); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
	}

	if !s.Lost() || s.Won() {
		t.Errorf("won=%v lost=%v, expected a loss", s.Won(), s.Lost())
	}
	// Target stays readable so the caller can reveal it
	if s.Target() != "crane" {
		t.Errorf("Target = %q, expected %q", s.Target(), "crane")
	}
}

func TestSessionTargetNormalized(t *testing.T) {
	s := NewSession(6, 5)
	s.SetTarget("CRANE")
	if s.Target() != "crane" {
		t.Errorf("Target = %q, expected lowercase", s.Target())
	}
}
