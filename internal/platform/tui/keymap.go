package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndemidov/tui-wordle/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. For ActionLetter the
// second return value carries the lowercased letter. The final return
// reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, letter rune, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return core.ActionQuit, 0, true
	case "enter":
		return core.ActionSubmit, 0, false
	case "backspace":
		return core.ActionDelete, 0, false
	case "ctrl+r":
		return core.ActionRestart, 0, false
	}

	// Single letters feed the current row
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if unicode.IsLetter(r) {
			return core.ActionLetter, unicode.ToLower(r), false
		}
	}

	return core.ActionNone, 0, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, letter, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionLetter:
		frame.SetLetter(letter)
	case core.ActionNone:
		// Nothing to record
	default:
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
// Menus take no text input, so plain letters navigate.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
