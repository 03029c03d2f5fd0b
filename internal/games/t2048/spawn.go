package t2048

// DefaultFourProbability is the chance that a spawned tile is a 4.
const DefaultFourProbability = 0.2

// RandSource supplies randomness to the spawn policy.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// Spawn describes a tile placed by SpawnTile.
type Spawn struct {
	Cell
	Value int
}

// SpawnTile places a 2 or 4 on a uniformly chosen empty cell.
// The value is 4 when rng.Float64() < fourProbability. A full grid is left
// untouched and reports false.
func SpawnTile(g Grid, rng RandSource, fourProbability float64) (Spawn, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Spawn{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < fourProbability {
		value = 4
	}

	g.Set(cell.X, cell.Y, value)
	return Spawn{Cell: cell, Value: value}, true
}
