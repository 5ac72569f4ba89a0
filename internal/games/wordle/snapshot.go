package wordle

// GameStateType represents the current game state.
type GameStateType string

const (
	StateLoading     GameStateType = "loading"
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Variant     string
	Target      string
	Row         int // Current 0-based attempt
	Cursor      int // Next empty slot in the current row
	CurrentWord string
	Notice      string
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.loading:
		state = StateLoading
	case g.session.Won():
		state = StateWon
	case g.session.Lost():
		state = StateLost
	}

	return Snapshot{
		Tick:        g.tick,
		Variant:     g.variant.ID,
		Target:      g.session.Target(),
		Row:         g.session.Row(),
		Cursor:      g.session.Cursor(),
		CurrentWord: g.session.CurrentWord(),
		Notice:      g.notice,
		State:       state,
	}
}
