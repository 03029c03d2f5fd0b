package t2048

// TileMove records one tile travelling during a move.
type TileMove struct {
	FromX  int
	FromY  int
	ToX    int
	ToY    int
	Value  int  // value before the move
	Merged bool // tile was absorbed into an equal tile at (ToX, ToY)
}

// MoveResult is the full outcome of sliding a grid.
type MoveResult struct {
	Grid       Grid
	ScoreDelta int
	Moved      bool
	Moves      []TileMove
	// LargestMerge is the biggest value produced by a merge, 0 if none.
	LargestMerge int
}

// Slide moves every tile as far as possible in dir, merging equal
// neighbours once per move. The input grid is not modified.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	r := SlideTracked(g, dir)
	return r.Grid, r.ScoreDelta, r.Moved
}

// SlideTracked is Slide plus per-tile movement records for animation.
//
// Tiles are processed starting from the edge nearest the movement target
// on each axis. Each tile walks step by step: an empty cell advances it,
// an equal tile that has not absorbed a merge this move receives it, and
// anything else stops it.
func SlideTracked(g Grid, dir Direction) MoveResult {
	out := g.Clone()
	if dir.IsZero() || g.size == 0 {
		return MoveResult{Grid: out}
	}

	n := g.size
	merged := make([]bool, n*n)
	xs := scanOrder(n, dir.DX)
	ys := scanOrder(n, dir.DY)

	var res MoveResult
	for _, y := range ys {
		for _, x := range xs {
			v := out.At(x, y)
			if v == 0 {
				continue
			}

			tx, ty := x, y
			merging := false
			for {
				nx, ny := tx+dir.DX, ty+dir.DY
				if !out.InBounds(nx, ny) {
					break
				}
				nv := out.At(nx, ny)
				if nv == 0 {
					tx, ty = nx, ny
					continue
				}
				if nv == v && !merged[out.index(nx, ny)] {
					tx, ty = nx, ny
					merging = true
				}
				break
			}

			if tx == x && ty == y {
				continue
			}

			out.Set(x, y, 0)
			if merging {
				sum := v * 2
				out.Set(tx, ty, sum)
				merged[out.index(tx, ty)] = true
				res.ScoreDelta += sum
				if sum > res.LargestMerge {
					res.LargestMerge = sum
				}
			} else {
				out.Set(tx, ty, v)
			}
			res.Moves = append(res.Moves, TileMove{
				FromX:  x,
				FromY:  y,
				ToX:    tx,
				ToY:    ty,
				Value:  v,
				Merged: merging,
			})
		}
	}

	res.Grid = out
	res.Moved = len(res.Moves) > 0
	return res
}

// scanOrder returns the indices 0..n-1 ordered so that cells closest to
// the target edge come first.
func scanOrder(n, delta int) []int {
	order := make([]int, n)
	for i := range n {
		if delta > 0 {
			order[i] = n - 1 - i
		} else {
			order[i] = i
		}
	}
	return order
}

// CanMove reports whether any direction permitted by the variant changes the grid.
func CanMove(g Grid, v Variant) bool {
	for _, d := range v.Directions() {
		if _, _, moved := Slide(g, d); moved {
			return true
		}
	}
	return false
}
