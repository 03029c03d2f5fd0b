package t2048

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultWinTile is the tile value that raises the win flag.
const DefaultWinTile = 2048

// MoveOutcome reports what a direction input did to the session.
type MoveOutcome struct {
	Moved      bool
	ScoreDelta int
	Terminal   bool
	Won        bool
	// JustWon is true only for the move that first reached the win tile.
	JustWon bool
	Moves   []TileMove
	Spawned *Spawn
}

// Session is one running game: grid, score and flags.
// It is not safe for concurrent use.
type Session struct {
	grid     Grid
	variant  Variant
	score    int
	terminal bool
	won      bool
	moves    int

	rng       RandSource
	fourProb  float64
	winTile   int
	lastSpawn []Spawn
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for spawns.
func WithRand(rng RandSource) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed seeds a math/rand source. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFourProbability sets the chance that a spawned tile is a 4.
// Values are clamped to [0, 1].
func WithFourProbability(p float64) Option {
	return func(s *Session) {
		s.fourProb = min(max(p, 0), 1)
	}
}

// WithWinTile sets the tile value that raises the win flag.
// Non-positive values keep the default.
func WithWinTile(v int) Option {
	return func(s *Session) {
		if v > 0 {
			s.winTile = v
		}
	}
}

// NewSession starts a game on a size×size grid with two spawned tiles.
func NewSession(size int, variant Variant, opts ...Option) (*Session, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("t2048: new session: %w: %d", ErrInvalidSize, size)
	}
	if !variant.Valid() {
		return nil, fmt.Errorf("t2048: new session: %w: %d", ErrInvalidVariant, int(variant))
	}

	s := &Session{
		variant:  variant,
		fourProb: DefaultFourProbability,
		winTile:  DefaultWinTile,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.grid, _ = NewGrid(size)
	s.Reset()
	return s, nil
}

// Reset clears the grid, score and flags and spawns two tiles.
func (s *Session) Reset() {
	s.grid, _ = NewGrid(s.grid.size)
	s.score = 0
	s.terminal = false
	s.won = false
	s.moves = 0
	s.lastSpawn = s.lastSpawn[:0]

	for range 2 {
		if sp, ok := SpawnTile(s.grid, s.rng, s.fourProb); ok {
			s.lastSpawn = append(s.lastSpawn, sp)
		}
	}
	s.terminal = IsTerminal(s.grid, s.variant)
}

// HandleDirection applies one move. Directions the variant does not
// permit, and inputs after the game ended, leave the session unchanged.
func (s *Session) HandleDirection(dir Direction) MoveOutcome {
	if s.terminal || !s.variant.Allows(dir) {
		return s.idle()
	}

	r := SlideTracked(s.grid, dir)
	if !r.Moved {
		return s.idle()
	}

	s.grid = r.Grid
	s.score += r.ScoreDelta
	s.moves++

	justWon := false
	if !s.won && r.LargestMerge >= s.winTile {
		s.won = true
		justWon = true
	}

	out := MoveOutcome{
		Moved:      true,
		ScoreDelta: r.ScoreDelta,
		JustWon:    justWon,
		Moves:      r.Moves,
	}

	s.lastSpawn = s.lastSpawn[:0]
	if sp, ok := SpawnTile(s.grid, s.rng, s.fourProb); ok {
		s.lastSpawn = append(s.lastSpawn, sp)
		out.Spawned = &sp
	}

	s.terminal = IsTerminal(s.grid, s.variant)
	out.Terminal = s.terminal
	out.Won = s.won
	return out
}

func (s *Session) idle() MoveOutcome {
	return MoveOutcome{Terminal: s.terminal, Won: s.won}
}

// HasMoves reports whether any permitted direction would change the grid.
// In the diagonal variant a board can be stuck while IsTerminal is false.
func (s *Session) HasMoves() bool {
	return CanMove(s.grid, s.variant)
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() Grid { return s.grid.Clone() }

// Score returns the accumulated merge score.
func (s *Session) Score() int { return s.score }

// Terminal reports whether the grid has no empty cell and no equal
// neighbours under the variant's adjacency.
func (s *Session) Terminal() bool { return s.terminal }

// Won reports whether the win tile has been reached. It stays set until Reset.
func (s *Session) Won() bool { return s.won }

// Variant returns the movement scheme.
func (s *Session) Variant() Variant { return s.variant }

// Size returns the grid edge length.
func (s *Session) Size() int { return s.grid.size }

// MoveCount returns the number of accepted moves since the last reset.
func (s *Session) MoveCount() int { return s.moves }

// MaxTile returns the highest tile on the grid.
func (s *Session) MaxTile() int { return s.grid.MaxTile() }

// WinTile returns the tile value that raises the win flag.
func (s *Session) WinTile() int { return s.winTile }

// LastSpawns returns the tiles placed by the most recent move or reset.
func (s *Session) LastSpawns() []Spawn {
	out := make([]Spawn, len(s.lastSpawn))
	copy(out, s.lastSpawn)
	return out
}
