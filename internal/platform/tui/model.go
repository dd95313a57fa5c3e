package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apetrov-dev/flappy-tui/internal/config"
	"github.com/apetrov-dev/flappy-tui/internal/core"
	"github.com/apetrov-dev/flappy-tui/internal/game"
	"github.com/apetrov-dev/flappy-tui/internal/storage"
)

// Model is the Bubble Tea model driving a single game session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	store    *storage.Store
	runtime  core.RuntimeConfig
	pending  core.Action
	lastTick time.Time
	prevMode game.Mode
	quitting bool
}

// NewModel creates a Bubble Tea model around a fresh game session.
// The best score is shared by reference, so several models (for example
// SSH connections) can compete against the same record.
func NewModel(cfg config.Config, store *storage.Store, rt core.RuntimeConfig, best *game.BestScore) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if best == nil {
		best = game.NewBestScore()
	}

	return Model{
		session:  game.NewSession(cfg, best, rt.Seed),
		screen:   core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
		store:    store,
		runtime:  rt,
		prevMode: game.ModeMenu,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to the action applied on the next tick.
// When several keys arrive within one tick, the latest wins.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, whatever the game mode.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if action := mapKey(msg); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick advances the session by the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := float64(time.Second/time.Duration(m.runtime.TickRate)) / float64(time.Millisecond)
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	m.session.Update(elapsed, m.pending)
	m.pending = core.ActionNone

	if m.session.Quitting() {
		return m.quit()
	}

	// Record the run in the play history exactly once per game over.
	mode := m.session.Mode()
	if mode == game.ModeEnded && m.prevMode == game.ModePlaying {
		if m.store != nil && m.session.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.session.Score())
		}
	}
	m.prevMode = mode

	return m, tickCmd(m.runtime.TickRate)
}

// quit stops the session's background producer and exits the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.session.Close()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, store *storage.Store, rt core.RuntimeConfig) error {
	model := NewModel(cfg, store, rt, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
