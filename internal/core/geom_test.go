package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 5, 5)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 4, true},
		{5, 5, false}, // Right/bottom edges are exclusive
		{-1, 2, false},
		{2, -1, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d, expected 10", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 7) != 2 || Min(7, 2) != 2 {
		t.Error("Min should return the smaller value")
	}
	if Max(2, 7) != 7 || Max(7, 2) != 7 {
		t.Error("Max should return the larger value")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionSubmit) {
		t.Error("New frame should have no actions")
	}

	f.SetLetter('k')
	if !f.Has(ActionLetter) || f.Letter != 'k' {
		t.Errorf("SetLetter: Has(ActionLetter)=%v Letter=%q", f.Has(ActionLetter), f.Letter)
	}

	f.Set(ActionSubmit)
	clone := f.Clone()
	if !clone.Has(ActionSubmit) || clone.Letter != 'k' {
		t.Error("Clone should copy actions and letter")
	}

	f.Clear()
	if f.Has(ActionLetter) || f.Has(ActionSubmit) || f.Letter != 0 {
		t.Error("Clear should reset actions and letter")
	}
	if !clone.Has(ActionSubmit) {
		t.Error("Clearing the original should not affect the clone")
	}
}
