package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/core"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/sim"
	"github.com/n3ptun3-dev/3D-Snake-sub000/internal/storage"
)

// Model is the Bubble Tea model driving the game loop. Each frame it
// feeds elapsed time into the simulation and redraws the snapshot.
type Model struct {
	game      *sim.Game
	board     *boardRenderer
	screen    *core.Screen
	keys      *KeyMapper
	store     *storage.Store
	config    core.RuntimeConfig
	frameMS   int64
	highScore int
	scores    *ScoreboardModel // non-nil while the scoreboard overlays the game
	quitting  bool
}

// NewModel creates a new Bubble Tea model around a running simulation.
func NewModel(game *sim.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		game:    game,
		board:   newBoardRenderer(game.Layout()),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
		store:   store,
		config:  cfg,
		frameMS: int64(1000 / cfg.TickRate),
	}
	m.refreshHighScore()
	return m
}

func (m *Model) refreshHighScore() {
	if m.store == nil {
		return
	}
	if hs, err := m.store.HighScore(); err == nil {
		m.highScore = hs
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// updateScores forwards a message to the scoreboard overlay and closes
// it when the player backs out.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	if sb.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	if sb.goingBack {
		m.scores = nil
		return m, nil
	}
	*m.scores = sb
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.game.State() == sim.StateGameOver {
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		return m, nil
	}
	if action != core.ActionNone {
		before := m.game.State()
		m.game.HandleInput(action)
		// a restart regenerates the world
		if before == sim.StateGameOver && m.game.State() == sim.StateWelcome {
			m.board.setLayout(m.game.Layout())
			m.refreshHighScore()
		}
	}
	return m, nil
}

// handleFrame advances the simulation by one frame of real time.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	before := m.game.State()
	m.game.Advance(m.frameMS)
	if before != sim.StateGameOver && m.game.State() == sim.StateGameOver {
		m.refreshHighScore()
	}
	return m, frameCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.board.draw(m.screen, m.game.Snapshot(), m.highScore)

	dir := filepath.Join(os.Getenv("HOME"), ".snake3d", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake3d_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}
	m.board.draw(m.screen, m.game.Snapshot(), m.highScore)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *sim.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
