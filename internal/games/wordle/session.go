package wordle

import (
	"errors"
	"strings"
)

// Sentinel errors returned by Session.Submit. Both are recoverable signals
// for the caller to surface; neither mutates session state.
var (
	// ErrIncompleteRow is returned when the current row has empty slots.
	ErrIncompleteRow = errors.New("wordle: row is incomplete")
	// ErrNotInList is returned when the row spells a word that is not in
	// the acceptable-guess list.
	ErrNotInList = errors.New("wordle: word not in list")
	// ErrFinished is returned when the round has already ended.
	ErrFinished = errors.New("wordle: round is finished")
)

// Dictionary judges whether a word may be submitted as a guess.
// Implemented by words.Source.
type Dictionary interface {
	IsAcceptable(word string) bool
}

// Session holds the state of a single round: the hidden target, the attempt
// grid, and the cursor within the current row. It is mutated in place by
// letter entry and submission and discarded when the round ends.
type Session struct {
	target string
	rows   int
	cols   int

	row    int // Current 0-based attempt, never exceeds rows
	cursor int // Next empty slot in the current row, never exceeds cols

	grid    [][]rune         // rows x cols, zero rune = unfilled
	results [][]LetterStatus // nil until the row is submitted

	won  bool
	lost bool
}

// NewSession creates an empty session for a rows x cols board.
// The target is supplied later via SetTarget.
func NewSession(rows, cols int) *Session {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
	}
	return &Session{
		rows:    rows,
		cols:    cols,
		grid:    grid,
		results: make([][]LetterStatus, rows),
	}
}

// SetTarget sets the hidden word for this round, normalized to lowercase.
func (s *Session) SetTarget(word string) {
	s.target = strings.ToLower(word)
}

// Target returns the hidden word. Callers reveal it only after a loss.
func (s *Session) Target() string { return s.target }

// Rows returns the number of attempts allowed.
func (s *Session) Rows() int { return s.rows }

// Cols returns the word length.
func (s *Session) Cols() int { return s.cols }

// Row returns the current 0-based attempt index.
func (s *Session) Row() int { return s.row }

// Cursor returns the next empty slot position in the current row.
func (s *Session) Cursor() int { return s.cursor }

// Won reports whether the round ended with the target guessed.
func (s *Session) Won() bool { return s.won }

// Lost reports whether the round ended with attempts exhausted.
func (s *Session) Lost() bool { return s.lost }

// Over reports whether the round reached a terminal state.
func (s *Session) Over() bool { return s.won || s.lost }

// Letter returns the rune at the given grid position, zero if unfilled.
func (s *Session) Letter(row, col int) rune {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return 0
	}
	return s.grid[row][col]
}

// Result returns the evaluation of a submitted row, nil if not submitted.
func (s *Session) Result(row int) []LetterStatus {
	if row < 0 || row >= s.rows {
		return nil
	}
	return s.results[row]
}

// CurrentWord returns the letters entered so far in the current row.
func (s *Session) CurrentWord() string {
	var sb strings.Builder
	for col := 0; col < s.cursor; col++ {
		sb.WriteRune(s.grid[s.row][col])
	}
	return sb.String()
}

// AddLetter appends a letter to the current row and advances the cursor.
// Ignored when the row is full, the round is over, or the rune is not a-z.
// Returns whether the letter was accepted.
func (s *Session) AddLetter(r rune) bool {
	if s.Over() || s.row >= s.rows || s.cursor >= s.cols {
		return false
	}
	if r < 'a' || r > 'z' {
		return false
	}
	s.grid[s.row][s.cursor] = r
	s.cursor++
	return true
}

// RemoveLetter clears the slot before the cursor and retracts it.
// Ignored when the row is empty or the round is over.
// Returns whether a letter was removed.
func (s *Session) RemoveLetter() bool {
	if s.Over() || s.cursor == 0 {
		return false
	}
	s.cursor--
	s.grid[s.row][s.cursor] = 0
	return true
}

// Submit evaluates the current row against the target.
//
// Rejections leave the session untouched: an unfilled row returns
// ErrIncompleteRow, a word outside the acceptable set returns ErrNotInList,
// and a finished round returns ErrFinished. A nil dict accepts every word.
//
// On success the row's evaluation is recorded and returned, and the session
// transitions: all-correct ends the round won; an exhausted last row ends it
// lost; otherwise the next row begins with the cursor reset.
func (s *Session) Submit(dict Dictionary) ([]LetterStatus, error) {
	if s.Over() {
		return nil, ErrFinished
	}
	if s.cursor < s.cols {
		return nil, ErrIncompleteRow
	}

	word := s.CurrentWord()
	if dict != nil && !dict.IsAcceptable(word) {
		return nil, ErrNotInList
	}

	res := Evaluate(s.target, word)
	s.results[s.row] = res

	switch {
	case word == s.target:
		s.won = true
	case s.row+1 == s.rows:
		s.lost = true
	default:
		s.row++
		s.cursor = 0
	}
	return res, nil
}
