package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	cfg.GridSize = 4
	m := NewModel(t2048.New(), nil, cfg, nil, false)
	m.Init()
	return m
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestExitConfirmCancel(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.confirming {
		t.Fatal("Esc should open the exit confirmation")
	}
	if !strings.Contains(m.View(), "Exit to menu?") {
		t.Error("dialog should be drawn")
	}

	m, _ = send(m, runeKey('n'))
	if m.confirming || m.exitToMenu {
		t.Error("N should close the dialog and keep playing")
	}
}

func TestExitConfirmAccept(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc}, runeKey('y'))
	if !m.exitToMenu || cmd == nil {
		t.Error("Y should confirm the exit and stop the program")
	}
}

func TestDialogPausesGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	before := m.game.(*t2048.Game).Snapshot().Tick
	m, _ = send(m, TickMsg{})
	if after := m.game.(*t2048.Game).Snapshot().Tick; after != before {
		t.Errorf("game ticked from %d to %d behind the dialog", before, after)
	}
}

func TestFastMovesAreQueued(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyRight})
	if len(m.pending) != 1 || m.pending[0] != core.ActionRight {
		t.Fatalf("pending = %v, want [right]", m.pending)
	}

	m, _ = send(m, TickMsg{})
	if len(m.pending) != 0 || !m.inputFrame.Has(core.ActionRight) {
		t.Error("queued move should be applied on the next tick")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	g := m.game.(*t2048.Game)
	before := g.Session().Grid()

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if !g.Session().Grid().Equal(before) {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
