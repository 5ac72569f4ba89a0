package wordle

// LetterStatus classifies a single guess letter against the target word.
type LetterStatus int

const (
	// StatusWrong means the letter does not appear in any remaining
	// unmatched target position.
	StatusWrong LetterStatus = iota
	// StatusMisplaced means the letter exists in the target but at a
	// different position, bounded by remaining unmatched occurrences.
	StatusMisplaced
	// StatusCorrect means the letter matches the target at this position.
	StatusCorrect
)

// String returns a human-readable name for the status.
func (s LetterStatus) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusMisplaced:
		return "misplaced"
	case StatusWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Evaluate compares a guess against a target of equal length and returns one
// status per position. It is a pure function with no hidden state.
//
// The two-pass algorithm handles repeated letters correctly: the first pass
// marks exact matches and counts the remaining target letters; the second
// pass marks a letter misplaced only while unmatched occurrences remain,
// consuming one per mark. A guess can never collect more misplaced/correct
// marks for a letter than the target contains.
//
// Both inputs must be lowercase a-z and the same length; callers guarantee
// this by construction.
func Evaluate(target, guess string) []LetterStatus {
	n := len(guess)
	res := make([]LetterStatus, n)

	// Occurrence counts for target letters not matched in place.
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = StatusCorrect
		} else {
			counts[target[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == StatusCorrect {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = StatusMisplaced
			counts[j]--
		} else {
			res[i] = StatusWrong
		}
	}
	return res
}
