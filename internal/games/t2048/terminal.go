package t2048

// IsTerminal reports whether the grid has no empty cell and no pair of
// equal values adjacent under the variant's adjacency.
func IsTerminal(g Grid, v Variant) bool {
	if g.HasEmptyCell() {
		return false
	}
	return !HasAdjacentPair(g, v)
}

// HasAdjacentPair reports whether two equal non-zero tiles are adjacent.
// Original uses 4-neighbour adjacency, diagonal uses diagonal adjacency.
func HasAdjacentPair(g Grid, v Variant) bool {
	offsets := v.neighborOffsets()
	for y := range g.size {
		for x := range g.size {
			val := g.At(x, y)
			if val == 0 {
				continue
			}
			for _, d := range offsets {
				nx, ny := x+d.DX, y+d.DY
				if g.InBounds(nx, ny) && g.At(nx, ny) == val {
					return true
				}
			}
		}
	}
	return false
}
