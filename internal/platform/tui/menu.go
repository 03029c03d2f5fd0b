package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/storage"
)

// Selection is the board chosen in the menus.
type Selection struct {
	Size    int
	Variant t2048.Variant
}

// BoardKey returns the score-history key of the selection.
func (s Selection) BoardKey() string {
	return t2048.BoardKey(s.Variant, s.Size)
}

// menuScreen identifies which page of the menu is shown.
type menuScreen int

const (
	screenMain menuScreen = iota
	screenSize
	screenMovement
)

// Main menu entries, in display order.
const (
	itemStart = iota
	itemSize
	itemMovement
	itemScores
	itemQuit
	itemCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f67c5f"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuBestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#edc22e"))
)

// MenuModel is the Bubble Tea model for the main menu and its
// grid-size and movement pickers.
type MenuModel struct {
	screen    menuScreen
	cursor    int
	subCursor int
	selection Selection
	best      int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	start          bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model with sel preselected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, sel Selection) MenuModel {
	m := MenuModel{
		selection: sel,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.refreshBest()
	return m
}

// refreshBest loads the best score of the selected board.
func (m *MenuModel) refreshBest() {
	m.best = 0
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.selection.BoardKey()); err == nil {
		m.best = best
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenSize:
		return m.handlePicker(action, len(t2048.SupportedSizes), func(sel *Selection, i int) {
			sel.Size = t2048.SupportedSizes[i]
		})
	case screenMovement:
		return m.handlePicker(action, len(t2048.Variants), func(sel *Selection, i int) {
			sel.Variant = t2048.Variants[i]
		})
	}
	return m.handleMainKey(action)
}

func (m MenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		m.cursor = (m.cursor + itemCount - 1) % itemCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % itemCount
	case MenuActionLeft, MenuActionRight:
		step := 1
		if action == MenuActionLeft {
			step = -1
		}
		switch m.cursor {
		case itemSize:
			m.selection.Size = cycle(t2048.SupportedSizes, m.selection.Size, step)
			m.refreshBest()
		case itemMovement:
			m.selection.Variant = cycle(t2048.Variants, m.selection.Variant, step)
			m.refreshBest()
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionBack:
		m.cursor = itemQuit
	case MenuActionSelect:
		switch m.cursor {
		case itemStart:
			m.start = true
			return m, tea.Quit
		case itemSize:
			m.screen = screenSize
			m.subCursor = indexOf(t2048.SupportedSizes, m.selection.Size)
		case itemMovement:
			m.screen = screenMovement
			m.subCursor = indexOf(t2048.Variants, m.selection.Variant)
		case itemScores:
			m.openScoreboard = true
			return m, tea.Quit
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handlePicker drives a single-choice submenu with n options.
func (m MenuModel) handlePicker(action MenuAction, n int, choose func(*Selection, int)) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp, MenuActionLeft:
		if m.subCursor > 0 {
			m.subCursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.subCursor < n-1 {
			m.subCursor++
		}
	case MenuActionSelect:
		choose(&m.selection, m.subCursor)
		m.refreshBest()
		m.screen = screenMain
	case MenuActionBack:
		m.screen = screenMain
	}
	return m, nil
}

func cycle[T comparable](options []T, current T, step int) T {
	i := indexOf(options, current)
	n := len(options)
	return options[((i+step)%n+n)%n]
}

func indexOf[T comparable](options []T, v T) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return 0
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("Welcome to 2048!"), m.width))
	b.WriteString("\n")

	switch m.screen {
	case screenSize:
		m.viewPicker(&b, "Select grid size", sizeLabels())
	case screenMovement:
		m.viewPicker(&b, "Select movement", variantLabels())
	default:
		m.viewMain(&b)
	}
	return b.String()
}

func (m MenuModel) viewMain(b *strings.Builder) {
	b.WriteString(centerText(menuHintStyle.Render("Press Enter to start"), m.width))
	b.WriteString("\n\n")

	n := m.selection.Size
	items := [itemCount]string{
		"Start Game",
		fmt.Sprintf("Grid Size:  < %dx%d >", n, n),
		fmt.Sprintf("Movement:   < %s >", m.selection.Variant.Label()),
		"High Scores",
		"Quit",
	}
	for i, item := range items {
		b.WriteString(centerText(menuLine(item, i == m.cursor), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	best := fmt.Sprintf("Best on %s: %d", t2048.BoardTitle(m.selection.BoardKey()), m.best)
	b.WriteString(centerText(menuBestStyle.Render(best), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render("↑/↓: Navigate  |  ←/→: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
}

func (m MenuModel) viewPicker(b *strings.Builder, title string, labels []string) {
	b.WriteString(centerText(menuHintStyle.Render(title), m.width))
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString(centerText(menuLine(label, i == m.subCursor), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
}

func menuLine(label string, selected bool) string {
	if selected {
		return menuCurStyle.Render("> " + label + "  ")
	}
	return menuItemStyle.Render("  " + label + "  ")
}

func sizeLabels() []string {
	labels := make([]string, len(t2048.SupportedSizes))
	for i, n := range t2048.SupportedSizes {
		labels[i] = fmt.Sprintf("%dx%d", n, n)
	}
	return labels
}

func variantLabels() []string {
	labels := make([]string, len(t2048.Variants))
	for i, v := range t2048.Variants {
		labels[i] = v.Label()
	}
	return labels
}

// Selection returns the board currently selected in the menu.
func (m MenuModel) Selection() Selection {
	return m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       Selection
	Config          core.RuntimeConfig
	Start           bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, sel Selection) (MenuResult, error) {
	model := NewMenuModel(store, cfg, sel)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Selection: sel, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Selection: sel, Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Selection: m.Selection(),
		Config:    m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.start:
		result.Start = true
	default:
		result.Quit = true
	}

	return result, nil
}
