package tui

import (
	"testing"

	"github.com/ndemidov/tui-wordle/internal/core"
	"github.com/ndemidov/tui-wordle/internal/games/wordle"
	"github.com/ndemidov/tui-wordle/internal/words"
)

// newTestModel builds a classic-variant model with the game reset but the
// target word still pending.
func newTestModel() Model {
	game := wordle.New(wordle.VariantClassic)
	source := words.NewSource(words.SourceConfig{Seed: 1})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}

	m := NewModel(game, source, cfg)
	m.game.Reset(m.gameConfig())
	return m
}

func TestModelIgnoresKeysWhileLoading(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(runeKey('a'))
	m = updated.(Model)
	if m.inputFrame.Has(core.ActionLetter) {
		t.Error("letter recorded while word selection is pending")
	}

	updated, _ = m.Update(targetMsg{word: "crane"})
	m = updated.(Model)
	if m.loading {
		t.Fatal("loading should end when the target arrives")
	}

	updated, _ = m.Update(runeKey('a'))
	m = updated.(Model)
	if !m.inputFrame.Has(core.ActionLetter) || m.inputFrame.Letter != 'a' {
		t.Errorf("frame = %+v, expected letter 'a' once the round starts", m.inputFrame)
	}
}

func TestModelTargetMsgStartsRound(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(targetMsg{word: "CRANE"})
	m = updated.(Model)

	snap := m.game.(*wordle.Game).Snapshot()
	if snap.State != wordle.StatePlaying {
		t.Fatalf("state = %q, expected playing after the target arrives", snap.State)
	}
	if snap.Target != "crane" {
		t.Errorf("target = %q, expected the normalized word", snap.Target)
	}
}
