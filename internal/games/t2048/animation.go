package t2048

import "github.com/vovakirdan/t2048/internal/core"

// Default animation lengths in ticks.
const (
	DefaultSlideTicks = 8 // ~133ms at 60fps
	DefaultPopTicks   = 6 // ~100ms at 60fps
)

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// Sprite is a tile as it should be drawn in the current frame.
// X and Y are in cell units and may be fractional while sliding.
type Sprite struct {
	X, Y   float64
	Value  int
	Scale  float64 // 1 is a full-size tile
	IsNew  bool
	Merged bool
}

// Animator turns move outcomes into per-frame sprites.
// Slide interpolates every TileMove, then pop grows the spawned tiles.
type Animator struct {
	slideTicks int
	popTicks   int

	phase  AnimationPhase
	ticks  int
	before Grid
	moves  []TileMove
	spawns []Spawn
	merges map[Cell]bool
}

// NewAnimator creates an animator. Zero ticks disables a phase.
func NewAnimator(slideTicks, popTicks int) *Animator {
	return &Animator{
		slideTicks: max(slideTicks, 0),
		popTicks:   max(popTicks, 0),
	}
}

// Start begins animating a move from the grid before it.
func (a *Animator) Start(before Grid, out MoveOutcome) {
	a.before = before
	a.moves = out.Moves
	a.spawns = a.spawns[:0]
	if out.Spawned != nil {
		a.spawns = append(a.spawns, *out.Spawned)
	}
	a.merges = make(map[Cell]bool)
	for _, m := range out.Moves {
		if m.Merged {
			a.merges[Cell{X: m.ToX, Y: m.ToY}] = true
		}
	}
	a.ticks = 0

	switch {
	case a.slideTicks > 0 && len(a.moves) > 0:
		a.phase = PhaseSlide
	case a.popTicks > 0 && len(a.spawns) > 0:
		a.phase = PhasePop
	default:
		a.phase = PhaseNone
	}
}

// StartSpawns pops the given tiles in, used after a reset.
func (a *Animator) StartSpawns(spawns []Spawn) {
	a.moves = nil
	a.merges = nil
	a.spawns = append(a.spawns[:0], spawns...)
	a.ticks = 0
	a.phase = PhaseNone
	if a.popTicks > 0 && len(a.spawns) > 0 {
		a.phase = PhasePop
	}
}

// Update advances one tick. It returns true while still animating.
func (a *Animator) Update() bool {
	if a.phase == PhaseNone {
		return false
	}
	a.ticks++
	if a.ticks < a.duration() {
		return true
	}

	if a.phase == PhaseSlide && a.popTicks > 0 && len(a.spawns) > 0 {
		a.phase = PhasePop
		a.ticks = 0
		return true
	}
	a.Finish()
	return false
}

// Finish jumps to the end of the animation.
func (a *Animator) Finish() {
	a.phase = PhaseNone
	a.ticks = 0
}

// Active reports whether an animation is running.
func (a *Animator) Active() bool {
	return a.phase != PhaseNone
}

// Phase returns the current phase.
func (a *Animator) Phase() AnimationPhase {
	return a.phase
}

// Progress returns the eased progress of the current phase in [0, 1].
func (a *Animator) Progress() float64 {
	d := a.duration()
	if a.phase == PhaseNone || d == 0 {
		return 1
	}
	return easeOutQuad(float64(a.ticks) / float64(d))
}

func (a *Animator) duration() int {
	switch a.phase {
	case PhaseSlide:
		return a.slideTicks
	case PhasePop:
		return a.popTicks
	}
	return 0
}

// Sprites returns the tiles to draw for the current frame given the grid
// the session holds now.
func (a *Animator) Sprites(current Grid) []Sprite {
	switch a.phase {
	case PhaseSlide:
		return a.slideSprites()
	case PhasePop:
		return a.popSprites(current)
	}
	return gridSprites(current)
}

func (a *Animator) slideSprites() []Sprite {
	p := a.Progress()
	sources := make(map[Cell]bool, len(a.moves))
	for _, m := range a.moves {
		sources[Cell{X: m.FromX, Y: m.FromY}] = true
	}

	var sprites []Sprite
	for y := range a.before.size {
		for x := range a.before.size {
			v := a.before.At(x, y)
			if v == 0 || sources[Cell{X: x, Y: y}] {
				continue
			}
			sprites = append(sprites, Sprite{X: float64(x), Y: float64(y), Value: v, Scale: 1})
		}
	}
	for _, m := range a.moves {
		sprites = append(sprites, Sprite{
			X:     core.Lerp(float64(m.FromX), float64(m.ToX), p),
			Y:     core.Lerp(float64(m.FromY), float64(m.ToY), p),
			Value: m.Value,
			Scale: 1,
		})
	}
	return sprites
}

func (a *Animator) popSprites(current Grid) []Sprite {
	p := a.Progress()
	sprites := gridSprites(current)
	for i := range sprites {
		c := Cell{X: int(sprites[i].X), Y: int(sprites[i].Y)}
		for _, sp := range a.spawns {
			if sp.Cell == c {
				sprites[i].IsNew = true
				sprites[i].Scale = 0.3 + 0.7*p
			}
		}
		if a.merges[c] {
			sprites[i].Merged = true
		}
	}
	return sprites
}

func gridSprites(g Grid) []Sprite {
	sprites := make([]Sprite, 0, g.TileCount())
	for y := range g.size {
		for x := range g.size {
			if v := g.At(x, y); v != 0 {
				sprites = append(sprites, Sprite{X: float64(x), Y: float64(y), Value: v, Scale: 1})
			}
		}
	}
	return sprites
}

// easeOutQuad provides smooth deceleration.
func easeOutQuad(t float64) float64 {
	t = core.ClampF(t, 0, 1)
	return 1 - (1-t)*(1-t)
}
