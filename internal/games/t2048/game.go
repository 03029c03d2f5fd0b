package t2048

import (
	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/registry"
)

// Game adapts a Session to the registry.Game interface for the terminal front end.
type Game struct {
	variant Variant
	session *Session
	anim    *Animator
	cfg     config.T2048Config
	tick    uint64

	screenW int
	screenH int

	bestScore int
	gameOver  bool
	showWin   bool
	paused    bool
	tooSmall  bool
}

// Package-level configuration, set by the CLI before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy/normal/hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// ReadConfig returns the effective configuration with the difficulty preset
// applied. A path set with SetConfigPath that cannot be read or parsed is an
// error; the returned config then holds the defaults.
func ReadConfig() (config.T2048Config, error) {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	config.ApplyT2048Preset(&cfg, difficultyPreset)
	return cfg, err
}

// LoadConfig is ReadConfig with load errors replaced by the defaults.
func LoadConfig() config.T2048Config {
	cfg, _ := ReadConfig()
	return cfg
}

// New creates a 2048 game with axis movement.
func New() *Game {
	return &Game{variant: VariantOriginal}
}

// NewDiagonal creates a 2048 game with diagonal movement.
func NewDiagonal() *Game {
	return &Game{variant: VariantDiagonal}
}

func init() {
	registry.Register(IDOriginal, func() registry.Game {
		return New()
	})
	registry.Register(IDDiagonal, func() registry.Game {
		return NewDiagonal()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantDiagonal {
		return "2048 (Diagonal)"
	}
	return "2048"
}

// Reset starts a new game. cfg.GridSize of 0 uses the configured size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = LoadConfig()

	size := cfg.GridSize
	if size == 0 {
		size = g.cfg.Board.Size
	}
	if !ValidSize(size) {
		size = DefaultGridSize
	}

	s, err := NewSession(size, g.variant,
		WithSeed(cfg.Seed),
		WithFourProbability(g.cfg.Spawn.FourProbability),
		WithWinTile(g.cfg.Rules.WinTile),
	)
	if err != nil {
		// Size and variant are validated above.
		panic(err)
	}

	g.session = s
	g.anim = NewAnimator(g.cfg.Animation.SlideTicks, g.cfg.Animation.PopTicks)
	g.anim.StartSpawns(s.LastSpawns())
	g.tick = 0
	g.gameOver = s.Terminal() || !s.HasMoves()
	g.showWin = false
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the compact layout.
func (g *Game) checkScreenSize() {
	_, ok := g.layout()
	g.tooSmall = !ok
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.anim.Update()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.showWin {
		if in.Has(core.ActionContinue) || in.Has(core.ActionConfirm) {
			g.showWin = false
		}
		return core.StepResult{State: g.State()}
	}

	action, ok := in.FirstMove()
	if !ok {
		return core.StepResult{State: g.State()}
	}
	dir, ok := ActionDirection(action)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.move(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// move applies a direction, finishing any running animation first.
func (g *Game) move(dir Direction) bool {
	g.anim.Finish()

	before := g.session.Grid()
	out := g.session.HandleDirection(dir)
	if !out.Moved {
		return false
	}

	g.anim.Start(before, out)
	if out.JustWon {
		g.showWin = true
	}
	if out.Terminal || !g.session.HasMoves() {
		g.gameOver = true
		g.showWin = false
	}
	if s := g.session.Score(); s > g.bestScore {
		g.bestScore = s
	}
	return true
}

// ActionDirection maps a movement action to a Direction.
func ActionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUpLeft:
		return DirUpLeft, true
	case core.ActionUpRight:
		return DirUpRight, true
	case core.ActionDownLeft:
		return DirDownLeft, true
	case core.ActionDownRight:
		return DirDownRight, true
	}
	return Direction{}, false
}

// SetBestScore seeds the best score shown in the HUD.
func (g *Game) SetBestScore(best int) {
	g.bestScore = max(g.bestScore, best)
}

// BestScore returns the best score known to the game.
func (g *Game) BestScore() int {
	return g.bestScore
}

// Session exposes the underlying session for read-only use.
func (g *Game) Session() *Session {
	return g.session
}

// MoveCount returns the number of accepted moves in the running game.
func (g *Game) MoveCount() int {
	return g.session.MoveCount()
}

// BoardKey returns the score-history key of the running board.
func (g *Game) BoardKey() string {
	return BoardKey(g.variant, g.session.Size())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		MaxTile:  g.session.MaxTile(),
		GameOver: g.gameOver,
		Won:      g.session.Won(),
		Paused:   g.paused || g.tooSmall,
	}
}
