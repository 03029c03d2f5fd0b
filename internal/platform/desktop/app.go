// Package desktop runs t2048 in an Ebitengine window: a mouse and
// keyboard menu with grid-size and movement pickers, the animated board
// and an exit confirmation dialog.
package desktop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/desktop/layout"
	"github.com/vovakirdan/t2048/internal/storage"
)

type appState int

const (
	stateMenu appState = iota
	stateSize
	stateMovement
	statePlaying
	stateConfirm
)

// Options configures the window.
type Options struct {
	Store    *storage.Store // nil disables score history
	Logger   *log.Logger
	Size     int // 0 uses the configured board size
	Variant  t2048.Variant
	Seed     int64 // first game only; 0 means time based
	TPS      int
	SkipMenu bool
}

// App implements ebiten.Game.
type App struct {
	logger *log.Logger
	store  *storage.Store
	cfg    config.T2048Config
	faces  *faces
	tps    int

	state   appState
	focus   int
	hover   int
	size    int
	variant t2048.Variant
	best    int
	seed    int64

	session  *t2048.Session
	anim     *t2048.Animator
	gameOver bool
	showWin  bool
	saved    bool
}

// New creates the window app. A zero Size uses the configured board size.
func New(opts Options) (*App, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := t2048.LoadConfig()
	a := &App{
		logger:  logger,
		store:   opts.Store,
		cfg:     cfg,
		faces:   f,
		tps:     opts.TPS,
		hover:   -1,
		size:    opts.Size,
		variant: opts.Variant,
		seed:    opts.Seed,
	}
	if !t2048.ValidSize(a.size) {
		a.size = cfg.Board.Size
	}
	a.refreshBest()

	if opts.SkipMenu {
		if err := a.startGame(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(a *App) error {
	ebiten.SetWindowSize(layout.ScreenWidth, layout.ScreenHeight)
	ebiten.SetWindowTitle("2048")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if a.tps > 0 {
		ebiten.SetTPS(a.tps)
	}

	a.logger.Debug("window opened", "board", a.boardKey())
	return ebiten.RunGame(a)
}

// Update advances the app by one tick.
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.saveResult("window closed")
		return ebiten.Termination
	}

	switch a.state {
	case stateMenu, stateSize, stateMovement:
		return a.updateMenu()
	case statePlaying:
		a.updatePlaying()
	case stateConfirm:
		a.anim.Update()
		a.updateConfirm()
	}
	return nil
}

// Layout reports the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return layout.ScreenWidth, layout.ScreenHeight
}

func (a *App) boardKey() string {
	return t2048.BoardKey(a.variant, a.size)
}

func (a *App) refreshBest() {
	a.best = 0
	if a.store == nil {
		return
	}
	best, err := a.store.HighScore(a.boardKey())
	if err != nil {
		a.logger.Warn("cannot load best score", "board", a.boardKey(), "err", err)
		return
	}
	a.best = best
}

// menuItems returns the button labels of the current menu page.
func (a *App) menuItems() []string {
	switch a.state {
	case stateSize:
		items := make([]string, 0, len(t2048.SupportedSizes)+1)
		for _, n := range t2048.SupportedSizes {
			items = append(items, fmt.Sprintf("%dx%d", n, n))
		}
		return append(items, "Back")
	case stateMovement:
		items := make([]string, 0, len(t2048.Variants)+1)
		for _, v := range t2048.Variants {
			items = append(items, v.Label())
		}
		return append(items, "Back")
	}
	return []string{
		"Start Game",
		fmt.Sprintf("Grid Size: %dx%d", a.size, a.size),
		"Movement: " + a.variant.Label(),
		"Quit",
	}
}

func (a *App) updateMenu() error {
	items := a.menuItems()
	n := len(items)
	rects := layout.Buttons(n)

	mx, my := ebiten.CursorPosition()
	a.hover = layout.HitTest(rects, mx, my)

	switch {
	case justPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK):
		a.focus = (a.focus + n - 1) % n
	case justPressed(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ):
		a.focus = (a.focus + 1) % n
	case confirmPressed():
		return a.choose(a.focus)
	case backPressed():
		a.back()
	}

	if x, y, ok := click(); ok {
		if i := layout.HitTest(rects, x, y); i >= 0 {
			a.focus = i
			return a.choose(i)
		}
	}
	return nil
}

// choose activates button i of the current menu page.
func (a *App) choose(i int) error {
	switch a.state {
	case stateMenu:
		switch i {
		case 0:
			return a.startGame()
		case 1:
			a.state = stateSize
			a.focus = indexOf(t2048.SupportedSizes, a.size)
		case 2:
			a.state = stateMovement
			a.focus = indexOf(t2048.Variants, a.variant)
		case 3:
			return ebiten.Termination
		}
	case stateSize:
		if i < len(t2048.SupportedSizes) {
			a.size = t2048.SupportedSizes[i]
			a.refreshBest()
		}
		a.state, a.focus = stateMenu, 1
	case stateMovement:
		if i < len(t2048.Variants) {
			a.variant = t2048.Variants[i]
			a.refreshBest()
		}
		a.state, a.focus = stateMenu, 2
	}
	return nil
}

func (a *App) back() {
	switch a.state {
	case stateSize:
		a.state, a.focus = stateMenu, 1
	case stateMovement:
		a.state, a.focus = stateMenu, 2
	default:
		a.focus = 3
	}
}

func indexOf[T comparable](options []T, v T) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return 0
}
