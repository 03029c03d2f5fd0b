package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/storage"
)

const (
	statsMinWidth = 84  // narrower terminals show stats as one line
	statsWidth    = 24
	maxScores     = 100 // rows loaded per board
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the high-score screen.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Smaller key.Binding
	Larger  key.Binding
	Variant key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Smaller, k.Larger, k.Variant, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Smaller, k.Larger, k.Variant},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "smaller grid"),
		),
		Larger: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "larger grid"),
		),
		Variant: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "movement"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best games of one board at a time. The
// board is picked by movement (tab) and grid size (left/right).
type ScoreboardModel struct {
	sel    Selection
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  *storage.BoardStats
	err    error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on board. Unknown keys
// open the default board.
func NewScoreboardModel(store *storage.Store, board string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		sel:    selectionForBoard(board),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

// selectionForBoard finds the variant and size behind a board key.
func selectionForBoard(board string) Selection {
	for _, v := range t2048.Variants {
		for _, n := range t2048.SupportedSizes {
			if t2048.BoardKey(v, n) == board {
				return Selection{Size: n, Variant: v}
			}
		}
	}
	return Selection{Size: t2048.DefaultGridSize, Variant: t2048.VariantOriginal}
}

func (m ScoreboardModel) wide() bool {
	return m.width >= statsMinWidth
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Won", Width: 3},
		{Title: "Date", Width: 12},
	}

	// Extra width goes to the date
	avail := m.width - 6
	if m.wide() {
		avail -= statsWidth + 4
	}
	if extra := avail - 49; extra > 0 {
		columns[5].Width += min(extra, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads scores and stats of the selected board.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		board := m.sel.BoardKey()
		m.scores, m.err = m.store.TopScores(board, maxScores)
		if m.err == nil {
			var all map[string]*storage.BoardStats
			all, m.err = m.store.GetAllBoardsStats()
			m.stats = all[board]
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		won := ""
		if s.Won {
			won = "✓"
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MaxTile),
			strconv.Itoa(s.Moves),
			won,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Smaller):
			m.sel.Size = cycle(t2048.SupportedSizes, m.sel.Size, -1)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Larger):
			m.sel.Size = cycle(t2048.SupportedSizes, m.sel.Size, 1)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Variant):
			m.sel.Variant = cycle(t2048.Variants, m.sel.Variant, 1)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(sbTitleStyle.Render("HIGH SCORES - "+t2048.BoardTitle(m.sel.BoardKey())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.viewTabs(), m.width))
	b.WriteString("\n\n")

	if m.wide() {
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Render(m.viewTable()),
			"  ",
			boxStyle.Width(statsWidth).Render(m.viewStats()),
		)
		b.WriteString(centerBlock(body, m.width))
	} else {
		b.WriteString(centerText(sbDimStyle.Render(m.statsLine()), m.width))
		b.WriteString("\n")
		b.WriteString(centerBlock(boxStyle.Render(m.viewTable()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// viewTabs renders the movement and size pickers, e.g. "[Original] Diagonal  4x4 [5x5] 6x6".
func (m ScoreboardModel) viewTabs() string {
	var parts []string
	for _, v := range t2048.Variants {
		parts = append(parts, tab(v.Label(), v == m.sel.Variant))
	}
	parts = append(parts, "  ")
	for _, n := range t2048.SupportedSizes {
		parts = append(parts, tab(fmt.Sprintf("%dx%d", n, n), n == m.sel.Size))
	}
	return strings.Join(parts, " ")
}

func tab(label string, active bool) string {
	if active {
		return sbActiveStyle.Render(label)
	}
	return sbDimStyle.Render(" " + label + " ")
}

func (m ScoreboardModel) viewTable() string {
	switch {
	case m.store == nil:
		return sbEmptyStyle.Render("Score history is disabled.\nRun without --db \"\" to keep scores.")
	case m.err != nil:
		return sbEmptyStyle.Render("Cannot read scores:\n" + m.err.Error())
	case len(m.scores) == 0:
		return sbEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) viewStats() string {
	var b strings.Builder
	b.WriteString(sbTitleStyle.Render("Stats"))
	b.WriteString("\n")
	if m.stats == nil {
		b.WriteString(sbDimStyle.Render("no games yet"))
		return b.String()
	}
	s := m.stats
	fmt.Fprintf(&b, "Games:     %d\n", s.GamesCount)
	fmt.Fprintf(&b, "Best:      %d\n", s.HighScore)
	fmt.Fprintf(&b, "Best tile: %d\n", s.BestTile)
	fmt.Fprintf(&b, "Average:   %.0f\n", s.AvgScore)
	fmt.Fprintf(&b, "Wins:      %d\n", s.Wins)
	if !s.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "Last:      %s", s.LastPlayed.Format("Jan 02"))
	}
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil {
		return ""
	}
	return fmt.Sprintf("%d games  best %d  tile %d  wins %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.BestTile, m.stats.Wins)
}

// centerBlock centers every line of a multi-line block as one unit.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().PaddingLeft(pad).Render(block)
}

// Board returns the key of the board on screen.
func (m ScoreboardModel) Board() string {
	return m.sel.BoardKey()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen opened on board.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, board string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, board, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
