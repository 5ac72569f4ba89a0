package wordle

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/ndemidov/tui-wordle/internal/core"
	"github.com/ndemidov/tui-wordle/internal/registry"
)

// Variant describes a board shape: how many attempts and how many letters.
type Variant struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

// Built-in board variants.
var (
	VariantClassic = Variant{ID: "classic", Title: "Classic (5 letters)", Rows: 6, Cols: 5}
	VariantMini    = Variant{ID: "mini", Title: "Mini (4 letters)", Rows: 6, Cols: 4}
	VariantGrand   = Variant{ID: "grand", Title: "Grand (6 letters)", Rows: 6, Cols: 6}
)

// Keyboard rows for the on-screen letter hints.
var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// How long transient notices stay visible, in seconds.
const noticeSeconds = 2

// Package-level variables for config (like the platform's other knobs,
// set by the CLI before games are created).
var (
	dictionary   Dictionary
	showKeyboard = true
)

// SetDictionary sets the acceptable-guess dictionary used by new games.
func SetDictionary(d Dictionary) {
	dictionary = d
}

// SetShowKeyboard toggles the on-screen keyboard hints for new games.
func SetShowKeyboard(v bool) {
	showKeyboard = v
}

// Game implements the word-guessing puzzle for one board variant.
// It owns a Session plus the presentation state the platform needs:
// transient notices, keyboard hints, and the loading phase before the
// target word arrives.
type Game struct {
	variant Variant
	dict    Dictionary
	session *Session

	tick     uint64
	tickRate int

	// Transient notice shown after a rejected submit
	notice      string
	noticeTicks int

	// Best status seen per letter, for the on-screen keyboard
	keyboard map[rune]LetterStatus
	showKeys bool

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	loading  bool // Waiting for the target word; input ignored
	tooSmall bool
}

// New creates a game for the given variant using the configured dictionary.
func New(v Variant) *Game {
	return &Game{
		variant:  v,
		dict:     dictionary,
		showKeys: showKeyboard,
	}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New(VariantClassic)
	})
	registry.Register("mini", func() registry.Game {
		return New(VariantMini)
	})
	registry.Register("grand", func() registry.Game {
		return New(VariantGrand)
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Rows returns the number of attempts allowed.
func (g *Game) Rows() int {
	return g.variant.Rows
}

// Cols returns the word length.
func (g *Game) Cols() int {
	return g.variant.Cols
}

// Reset initializes/restarts the game. The game stays in the loading phase,
// ignoring input, until Start supplies a target word.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.dict = dictionary
	g.showKeys = showKeyboard
	g.session = NewSession(g.variant.Rows, g.variant.Cols)
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.notice = ""
	g.noticeTicks = 0
	g.keyboard = make(map[rune]LetterStatus)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.loading = true
	g.checkScreenSize()
}

// Start supplies the target word and enables input.
func (g *Game) Start(target string) {
	g.session.SetTarget(target)
	g.loading = false
}

// Resize updates the screen dimensions without disturbing the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board,
// keyboard, and notices.
func (g *Game) checkScreenSize() {
	minW := core.Max(2*g.variant.Cols+4, 26)
	minH := 2*g.variant.Rows + 9
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Expire transient notices
	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	// No input while loading, with a too-small window, or after the round
	if g.loading || g.tooSmall || g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLetter):
		g.session.AddLetter(in.Letter)
	case in.Has(core.ActionDelete):
		g.session.RemoveLetter()
	case in.Has(core.ActionSubmit):
		g.submitRow()
	}

	return core.StepResult{State: g.State()}
}

// submitRow submits the current row and routes the rejection signals to the
// notice line. The two rejections are distinct so the player can tell an
// unfinished row from an unknown word.
func (g *Game) submitRow() {
	word := g.session.CurrentWord()
	res, err := g.session.Submit(g.dict)
	switch {
	case errors.Is(err, ErrIncompleteRow):
		g.showNotice("Not enough letters")
	case errors.Is(err, ErrNotInList):
		g.showNotice("Not in word list")
	case err != nil:
		// ErrFinished is unreachable: Step guards on session.Over
	default:
		g.markKeyboard(word, res)
	}
}

// showNotice displays a transient message under the board.
func (g *Game) showNotice(text string) {
	g.notice = text
	g.noticeTicks = noticeSeconds * g.tickRate
}

// markKeyboard records the best status seen for each letter of a submitted
// guess. Correct outranks misplaced, which outranks wrong.
func (g *Game) markKeyboard(word string, res []LetterStatus) {
	for i, r := range word {
		if cur, ok := g.keyboard[r]; !ok || res[i] > cur {
			g.keyboard[r] = res[i]
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Row:      g.session.Row(),
		GameOver: g.session.Over(),
		Won:      g.session.Won(),
	}
}

// statusColor maps a letter status to its tile color.
func statusColor(s LetterStatus) core.Color {
	switch s {
	case StatusCorrect:
		return core.ColorBrightGreen
	case StatusMisplaced:
		return core.ColorBrightYellow
	default:
		return core.ColorGray
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.loading {
		g.renderOverlay(dst, "Picking a word...", "One moment")
		return
	}

	gridTop := 3
	g.renderGrid(dst, gridTop)

	y := gridTop + 2*g.variant.Rows
	if g.showKeys {
		g.renderKeyboard(dst, y)
		y += len(keyboardRows) + 1
	}

	switch {
	case g.session.Won():
		dst.DrawTextCentered(y, fmt.Sprintf("You got it in %d!", g.session.Row()+1))
		dst.DrawTextCentered(y+1, "Ctrl+R to play again")
	case g.session.Lost():
		dst.DrawTextCentered(y, fmt.Sprintf("The word was %s", upper(g.session.Target())))
		dst.DrawTextCentered(y+1, "Ctrl+R to play again")
	case g.notice != "":
		g.renderNotice(dst, y)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Wordle - %s  Attempt: %d/%d",
		g.variant.Title, core.Min(g.session.Row()+1, g.variant.Rows), g.variant.Rows)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the attempt grid. Submitted rows are colored by their
// evaluation; the current row shows plain letters with dots for empty slots.
func (g *Game) renderGrid(dst *core.Screen, top int) {
	gridW := 2*g.variant.Cols - 1
	offsetX := (dst.Width() - gridW) / 2

	for row := 0; row < g.variant.Rows; row++ {
		y := top + 2*row
		res := g.session.Result(row)
		for col := 0; col < g.variant.Cols; col++ {
			x := offsetX + 2*col
			r := g.session.Letter(row, col)

			switch {
			case res != nil:
				dst.SetCell(x, y, unicode.ToUpper(r), statusColor(res[col]))
			case r != 0:
				dst.SetCell(x, y, unicode.ToUpper(r), core.ColorBrightWhite)
			default:
				dst.SetCell(x, y, '·', core.ColorGray)
			}
		}
	}
}

// renderKeyboard draws the three-row letter hint keyboard.
func (g *Game) renderKeyboard(dst *core.Screen, top int) {
	for i, rowLetters := range keyboardRows {
		rowW := 2*len(rowLetters) - 1
		offsetX := (dst.Width() - rowW) / 2
		for j, r := range rowLetters {
			color := core.ColorDefault
			if status, ok := g.keyboard[r]; ok {
				color = statusColor(status)
			}
			dst.SetCell(offsetX+2*j, top+i, unicode.ToUpper(r), color)
		}
	}
}

// renderNotice draws the transient rejection message.
func (g *Game) renderNotice(dst *core.Screen, y int) {
	x := (dst.Width() - len(g.notice)) / 2
	dst.DrawTextColored(x, y, g.notice, core.ColorBrightYellow)
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// upper returns the word in uppercase ASCII for display.
func upper(word string) string {
	b := []byte(word)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
