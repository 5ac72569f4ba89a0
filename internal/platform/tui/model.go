package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ndemidov/tui-wordle/internal/core"
	"github.com/ndemidov/tui-wordle/internal/registry"
	"github.com/ndemidov/tui-wordle/internal/words"
)

// targetMsg delivers the selected target word for a new round.
type targetMsg struct {
	word string
}

// selectTargetCmd asynchronously picks a target word for the given length.
// Selection never fails: the source falls back to its embedded lists.
func selectTargetCmd(source *words.Source, length int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return targetMsg{word: source.SelectTarget(ctx, length)}
	}
}

// gameKeyMap describes the key bindings shown in the help bar.
type gameKeyMap struct {
	Submit  key.Binding
	Delete  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns the bindings for the mini help view.
func (k gameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Restart, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k gameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Delete}, {k.Restart, k.Quit}}
}

func newGameKeyMap() gameKeyMap {
	return gameKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new word"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Model is the Bubble Tea model for playing a round.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	source     *words.Source
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	spin spinner.Model
	help help.Model
	keys gameKeyMap

	loading    bool
	quitting   bool
	allowBack  bool // Esc returns to the variant menu instead of quitting
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given variant.
func NewModel(game registry.Game, source *words.Source, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	// Bottom line is reserved for the help bar
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		source:     source,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		spin:       sp,
		help:       help.New(),
		keys:       newGameKeyMap(),
		loading:    true,
	}
}

// gameConfig returns the runtime config as seen by the game, with the
// bottom help-bar line excluded from the height.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH--
	return cfg
}

// Init initializes the model and kicks off word selection.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())

	return tea.Batch(
		selectTargetCmd(m.source, m.game.Cols()),
		m.spin.Tick,
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case targetMsg:
		m.game.Start(msg.word)
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.allowBack {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+r":
		// Restart is platform-owned: a fresh round needs a fresh word
		if m.loading {
			return m, nil
		}
		m.game.Reset(m.gameConfig())
		m.loading = true
		m.inputFrame.Clear()
		return m, tea.Batch(selectTargetCmd(m.source, m.game.Cols()), m.spin.Tick)
	}

	// No input is recorded while the target word is pending
	if m.loading {
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events. The round in progress is
// preserved; the game only revalidates its minimum size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, msg.Height-1)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".wordle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	status := m.help.View(m.keys)
	if m.loading {
		status = m.spin.View() + " picking a word..."
	}

	return RenderScreen(m.screen) + "\n" + status
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run starts the Bubble Tea program for a single local round.
func Run(game registry.Game, source *words.Source, cfg core.RuntimeConfig) error {
	model := NewModel(game, source, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
