package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/storage"
)

// BoardGame is a registry.Game that also exposes what the terminal
// runner needs for score history and resizing.
type BoardGame interface {
	registry.Game
	BoardKey() string
	MoveCount() int
	SetBestScore(best int)
	Resize(w, h int)
}

// helpHeight is the number of rows reserved below the board for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a board.
type Model struct {
	game       BoardGame
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	pending    []core.Action // moves pressed faster than the tick rate
	gameState  core.GameState
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model

	confirming bool // exit-confirmation dialog is open
	exitToMenu bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current game
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game BoardGame, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, diagonal bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultGameKeyMap(diagonal)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  &KeyMapper{keys: keys},
		keys:       keys,
		help:       h,
	}
}

// gameConfig returns the runtime config with the help row taken off.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.loadBestScore()
	return tickCmd(m.config.TickRate)
}

// loadBestScore seeds the HUD with the stored best score for the board.
func (m Model) loadBestScore() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.BoardKey())
	if err != nil {
		m.logger.Warn("cannot load best score", "board", m.game.BoardKey(), "err", err)
		return
	}
	m.game.SetBestScore(best)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.confirming {
		switch m.keyMapper.MapKeyToConfirm(msg) {
		case ConfirmYes:
			m.exitToMenu = true
			m.saveResult("exit")
			return m, tea.Quit
		case ConfirmNo:
			m.confirming = false
		}
		if msg.String() == "ctrl+c" {
			m.quitting = true
			m.saveResult("quit")
			return m, tea.Quit
		}
		return m, nil
	}

	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.saveResult("quit")
		return m, tea.Quit
	case action == core.ActionBack:
		m.confirming = true
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case action.IsMove():
		if _, busy := m.inputFrame.FirstMove(); busy {
			m.pending = append(m.pending, action)
		} else {
			m.inputFrame.Set(action)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events without restarting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.game.Resize(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.confirming {
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.pending = nil
		m.inputFrame.Clear()
		m.logger.Debug("restart", "board", m.game.BoardKey())
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over",
			"board", m.game.BoardKey(),
			"score", m.gameState.Score,
			"max_tile", m.gameState.MaxTile,
			"moves", m.game.MoveCount())
		m.saveResult("game over")
	}

	m.inputFrame.Clear()
	if len(m.pending) > 0 {
		m.inputFrame.Set(m.pending[0])
		m.pending = m.pending[1:]
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult records the current game once. Empty games are skipped.
// Failures are logged; the game continues without history.
func (m *Model) saveResult(reason string) {
	if m.scoreSaved || m.store == nil || m.gameState.Score == 0 {
		return
	}
	m.scoreSaved = true

	_, err := m.store.SaveGame(storage.GameResult{
		Board:   m.game.BoardKey(),
		Score:   m.gameState.Score,
		MaxTile: m.gameState.MaxTile,
		Moves:   m.game.MoveCount(),
		Won:     m.gameState.Won,
	})
	if err != nil {
		m.logger.Warn("cannot save score", "board", m.game.BoardKey(), "err", err)
		return
	}
	m.logger.Debug("score saved", "board", m.game.BoardKey(), "score", m.gameState.Score, "reason", reason)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.BoardKey(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.exitToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.confirming {
		drawConfirm(m.screen)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// RunResult reports how the player left the game.
type RunResult struct {
	Score      int
	ExitToMenu bool // exit confirmed, go back to the menu
	Quit       bool // ctrl+c, leave the program
}

// Run starts the Bubble Tea program with the given game.
func Run(game BoardGame, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, diagonal bool) (RunResult, error) {
	model := NewModel(game, store, cfg, logger, diagonal)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{Quit: true}, nil
	}

	return RunResult{
		Score:      m.gameState.Score,
		ExitToMenu: m.exitToMenu,
		Quit:       m.quitting,
	}, nil
}
