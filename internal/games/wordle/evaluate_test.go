package wordle

import "testing"

// statuses is shorthand for building expected results.
func statuses(kinds ...LetterStatus) []LetterStatus { return kinds }

func equalStatuses(a, b []LetterStatus) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		target string
		guess  string
		want   []LetterStatus
	}{
		{
			name:   "mixed hit and miss",
			target: "crane",
			guess:  "grape",
			want:   statuses(StatusWrong, StatusCorrect, StatusCorrect, StatusWrong, StatusCorrect),
		},
		{
			name:   "misplaced letter",
			target: "crane",
			guess:  "eagle",
			want:   statuses(StatusWrong, StatusMisplaced, StatusWrong, StatusWrong, StatusCorrect),
		},
		{
			name:   "exact match is all correct",
			target: "crane",
			guess:  "crane",
			want:   statuses(StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect),
		},
		{
			name:   "disjoint letters are all wrong",
			target: "crane",
			guess:  "bumpy",
			want:   statuses(StatusWrong, StatusWrong, StatusWrong, StatusWrong, StatusWrong),
		},
		{
			name:   "repeated guess letters bounded by target occurrences",
			target: "arena",
			guess:  "eerie",
			want:   statuses(StatusMisplaced, StatusWrong, StatusMisplaced, StatusWrong, StatusWrong),
		},
		{
			name:   "duplicates with one exact match",
			target: "abcde",
			guess:  "speed",
			want:   statuses(StatusWrong, StatusWrong, StatusMisplaced, StatusWrong, StatusMisplaced),
		},
		{
			name:   "exact match consumes the occurrence first",
			target: "vivid",
			guess:  "livid",
			want:   statuses(StatusWrong, StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect),
		},
		{
			name:   "short words",
			target: "tart",
			guess:  "trat",
			want:   statuses(StatusCorrect, StatusMisplaced, StatusMisplaced, StatusCorrect),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.target, tt.guess)
			if !equalStatuses(got, tt.want) {
				t.Errorf("Evaluate(%q, %q) = %v, expected %v", tt.target, tt.guess, got, tt.want)
			}
		})
	}
}

func TestEvaluateOneStatusPerPosition(t *testing.T) {
	pairs := [][2]string{
		{"crane", "grape"},
		{"arena", "eerie"},
		{"llama", "label"},
		{"otter", "toter"},
	}

	for _, p := range pairs {
		got := Evaluate(p[0], p[1])
		if len(got) != len(p[1]) {
			t.Errorf("Evaluate(%q, %q) returned %d statuses, expected %d", p[0], p[1], len(got), len(p[1]))
		}

		// Correct count equals the number of positional matches
		wantCorrect := 0
		for i := range p[0] {
			if p[0][i] == p[1][i] {
				wantCorrect++
			}
		}
		gotCorrect := 0
		for _, s := range got {
			if s == StatusCorrect {
				gotCorrect++
			}
		}
		if gotCorrect != wantCorrect {
			t.Errorf("Evaluate(%q, %q) marked %d correct, expected %d", p[0], p[1], gotCorrect, wantCorrect)
		}
	}
}

func TestEvaluateBoundsRepeatedLetters(t *testing.T) {
	// A letter never collects more correct+misplaced marks than the target
	// contains occurrences of it.
	target := "arena"
	guess := "eeeee"

	got := Evaluate(target, guess)
	marks := 0
	for _, s := range got {
		if s != StatusWrong {
			marks++
		}
	}
	if marks != 1 { // "arena" contains a single 'e'
		t.Errorf("marks for 'e' = %d, expected 1 (occurrences of 'e' in %q)", marks, target)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	first := Evaluate("crane", "grape")
	second := Evaluate("crane", "grape")
	if !equalStatuses(first, second) {
		t.Errorf("repeated evaluation differs: %v vs %v", first, second)
	}
}
