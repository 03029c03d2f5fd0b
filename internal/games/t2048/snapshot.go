package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Variant string
	Size    int
	Score   int
	Moves   int
	Board   [][]int
	MaxTile int
	Won     bool
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.showWin:
		state = StateWin
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.String(),
		Size:    g.session.Size(),
		Score:   g.session.Score(),
		Moves:   g.session.MoveCount(),
		Board:   g.session.grid.Rows(),
		MaxTile: g.session.MaxTile(),
		Won:     g.session.Won(),
		State:   state,
	}
}
