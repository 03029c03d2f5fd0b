package desktop

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// newTestApp builds an App without fonts or a store; the menu logic needs
// neither.
func newTestApp() *App {
	return &App{
		logger:  log.New(io.Discard),
		cfg:     config.DefaultT2048Config(),
		hover:   -1,
		size:    4,
		variant: t2048.VariantOriginal,
		seed:    7,
	}
}

func TestMenuChooseAndBack(t *testing.T) {
	type step struct {
		back   bool
		choose int
	}
	tests := []struct {
		name        string
		steps       []step
		wantState   appState
		wantFocus   int
		wantSize    int
		wantVariant t2048.Variant
	}{
		{"open size picker", []step{{choose: 1}}, stateSize, 1, 4, t2048.VariantOriginal},
		{"pick 6x6", []step{{choose: 1}, {choose: 2}}, stateMenu, 1, 6, t2048.VariantOriginal},
		{"size picker back button", []step{{choose: 1}, {choose: 3}}, stateMenu, 1, 4, t2048.VariantOriginal},
		{"size picker escape", []step{{choose: 1}, {back: true}}, stateMenu, 1, 4, t2048.VariantOriginal},
		{"open movement picker", []step{{choose: 2}}, stateMovement, 0, 4, t2048.VariantOriginal},
		{"pick diagonal", []step{{choose: 2}, {choose: 1}}, stateMenu, 2, 4, t2048.VariantDiagonal},
		{"movement picker back button", []step{{choose: 2}, {choose: 2}}, stateMenu, 2, 4, t2048.VariantOriginal},
		{"movement picker escape", []step{{choose: 2}, {back: true}}, stateMenu, 2, 4, t2048.VariantOriginal},
		{"escape on main menu focuses quit", []step{{back: true}}, stateMenu, 3, 4, t2048.VariantOriginal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp()
			for _, s := range tt.steps {
				if s.back {
					a.back()
					continue
				}
				if err := a.choose(s.choose); err != nil {
					t.Fatalf("choose(%d) error = %v", s.choose, err)
				}
			}
			if a.state != tt.wantState || a.focus != tt.wantFocus {
				t.Errorf("state, focus = %v, %d; want %v, %d", a.state, a.focus, tt.wantState, tt.wantFocus)
			}
			if a.size != tt.wantSize || a.variant != tt.wantVariant {
				t.Errorf("selection = %d %v, want %d %v", a.size, a.variant, tt.wantSize, tt.wantVariant)
			}
		})
	}
}

func TestMenuPickerFocusesCurrentChoice(t *testing.T) {
	a := newTestApp()
	a.size = 5
	a.variant = t2048.VariantDiagonal

	if err := a.choose(1); err != nil {
		t.Fatal(err)
	}
	if a.focus != 1 {
		t.Errorf("size picker focus = %d, want 1 for 5x5", a.focus)
	}

	a.back()
	if err := a.choose(2); err != nil {
		t.Fatal(err)
	}
	if a.focus != 1 {
		t.Errorf("movement picker focus = %d, want 1 for diagonal", a.focus)
	}
}

func TestMenuQuit(t *testing.T) {
	a := newTestApp()
	if err := a.choose(3); !errors.Is(err, ebiten.Termination) {
		t.Errorf("choose(Quit) = %v, want ebiten.Termination", err)
	}
}

func TestMenuStartGame(t *testing.T) {
	a := newTestApp()
	a.size = 5
	a.variant = t2048.VariantDiagonal

	if err := a.choose(0); err != nil {
		t.Fatalf("choose(Start) error = %v", err)
	}
	if a.state != statePlaying {
		t.Fatalf("state = %v, want playing", a.state)
	}
	if a.session == nil || a.anim == nil {
		t.Fatal("starting a game should create a session and an animator")
	}
	if a.session.Size() != 5 || a.session.Variant() != t2048.VariantDiagonal {
		t.Errorf("session = %dx%d %v", a.session.Size(), a.session.Size(), a.session.Variant())
	}
	if got := a.session.Grid().TileCount(); got != 2 {
		t.Errorf("new game has %d tiles, want 2", got)
	}
	if a.seed != 0 {
		t.Errorf("seed = %d, only the first game should use it", a.seed)
	}
}

func TestMenuItems(t *testing.T) {
	a := newTestApp()
	if got := a.menuItems(); len(got) != 4 || got[1] != "Grid Size: 4x4" || got[2] != "Movement: Original" {
		t.Errorf("main menu = %q", got)
	}

	a.state = stateSize
	if got := a.menuItems(); len(got) != len(t2048.SupportedSizes)+1 || got[0] != "4x4" || got[len(got)-1] != "Back" {
		t.Errorf("size menu = %q", got)
	}

	a.state = stateMovement
	if got := a.menuItems(); len(got) != len(t2048.Variants)+1 || got[1] != "Diagonal" {
		t.Errorf("movement menu = %q", got)
	}
}
