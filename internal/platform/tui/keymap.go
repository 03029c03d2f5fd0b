package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/core"
)

// GameKeyMap defines the key bindings used while a board is on screen.
type GameKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	UpLeft    key.Binding
	UpRight   key.Binding
	DownLeft  key.Binding
	DownRight key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Continue  key.Binding
	Exit      key.Binding
	Quit      key.Binding
	Help      key.Binding

	diagonal bool
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	if k.diagonal {
		return []key.Binding{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight, k.Pause, k.Exit, k.Help}
	}
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Exit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	moves := []key.Binding{k.Up, k.Down, k.Left, k.Right}
	if k.diagonal {
		moves = []key.Binding{k.UpLeft, k.UpRight, k.DownLeft, k.DownRight}
	}
	return [][]key.Binding{
		moves,
		{k.Pause, k.Restart, k.Continue},
		{k.Exit, k.Quit, k.Help},
	}
}

// DefaultGameKeyMap returns default key bindings. Diagonal boards get
// diagonal help text; all movement keys are always recognised.
func DefaultGameKeyMap(diagonal bool) GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		UpLeft: key.NewBinding(
			key.WithKeys("home", "7"),
			key.WithHelp("home/7", "up-left"),
		),
		UpRight: key.NewBinding(
			key.WithKeys("pgup", "9"),
			key.WithHelp("pgup/9", "up-right"),
		),
		DownLeft: key.NewBinding(
			key.WithKeys("end", "1"),
			key.WithHelp("end/1", "down-left"),
		),
		DownRight: key.NewBinding(
			key.WithKeys("pgdown", "3"),
			key.WithHelp("pgdn/3", "down-right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Continue: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "keep playing"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		diagonal: diagonal,
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap(false)}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Exit):
		return core.ActionBack, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.UpLeft):
		return core.ActionUpLeft, false
	case key.Matches(msg, k.UpRight):
		return core.ActionUpRight, false
	case key.Matches(msg, k.DownLeft):
		return core.ActionDownLeft, false
	case key.Matches(msg, k.DownRight):
		return core.ActionDownRight, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Continue):
		return core.ActionContinue, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// ConfirmAction is the outcome of a key press in the exit dialog.
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmYes
	ConfirmNo
)

// MapKeyToConfirm translates a key in the exit-confirmation dialog.
func (km *KeyMapper) MapKeyToConfirm(msg tea.KeyMsg) ConfirmAction {
	switch msg.String() {
	case "y", "Y", "enter":
		return ConfirmYes
	case "n", "N", "esc":
		return ConfirmNo
	}
	return ConfirmNone
}
