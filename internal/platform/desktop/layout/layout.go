// Package layout computes the pixel geometry of the desktop window: the
// board and its tiles, menu buttons and the exit dialog. It has no
// Ebitengine dependency so hit-testing can be tested headless.
package layout

import "github.com/vovakirdan/t2048/internal/core"

// Logical screen size. Ebitengine scales it to the window.
const (
	ScreenWidth  = 490
	ScreenHeight = 620
)

// Board metrics. A 4x4 board uses 100px tiles with 10px gaps.
const (
	BoardArea  = 450
	TileMargin = 10
	HUDHeight  = 120
)

// Menu button metrics.
const (
	ButtonWidth  = 280
	ButtonHeight = 56
	ButtonGap    = 14
	menuTop      = 200
)

// Screen returns the whole logical screen.
func Screen() core.Rect {
	return core.NewRect(0, 0, ScreenWidth, ScreenHeight)
}

// TileSize returns the side of one tile on an n×n board.
func TileSize(n int) int {
	if n <= 0 {
		return 0
	}
	return (BoardArea - TileMargin*(n+1)) / n
}

// Board returns the rectangle of an n×n board, background included.
func Board(n int) core.Rect {
	side := n*TileSize(n) + (n+1)*TileMargin
	area := core.NewRect((ScreenWidth-BoardArea)/2, HUDHeight, BoardArea, BoardArea)
	return area.CenteredIn(side, side)
}

// TileOrigin returns the top-left pixel of the tile at cell (x, y).
// Fractional cells are used while tiles slide.
func TileOrigin(n int, x, y float64) (float64, float64) {
	cells := Board(n).Inset(TileMargin)
	step := float64(TileSize(n) + TileMargin)
	return float64(cells.X) + x*step, float64(cells.Y) + y*step
}

// Tile returns the rectangle of the cell at (x, y).
func Tile(n, x, y int) core.Rect {
	px, py := TileOrigin(n, float64(x), float64(y))
	side := TileSize(n)
	return core.NewRect(int(px), int(py), side, side)
}

// TileFontSize picks a font size for value so that it fits a tile of an
// n×n board.
func TileFontSize(n, value int) float64 {
	side := float64(TileSize(n))
	switch digits(value) {
	case 1, 2:
		return side * 0.48
	case 3:
		return side * 0.40
	case 4:
		return side * 0.32
	default:
		return side * 0.26
	}
}

func digits(v int) int {
	d := 1
	for v >= 10 {
		v /= 10
		d++
	}
	return d
}

// Buttons returns count stacked menu buttons centered horizontally.
func Buttons(count int) []core.Rect {
	rects := make([]core.Rect, count)
	x := (ScreenWidth - ButtonWidth) / 2
	for i := range rects {
		rects[i] = core.NewRect(x, menuTop+i*(ButtonHeight+ButtonGap), ButtonWidth, ButtonHeight)
	}
	return rects
}

// HitTest returns the index of the first rectangle containing (x, y),
// or -1.
func HitTest(rects []core.Rect, x, y int) int {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Dialog returns the exit-confirmation box.
func Dialog() core.Rect {
	return Screen().CenteredIn(360, 180)
}

// DialogButtons returns the Yes and No buttons of the dialog.
func DialogButtons() (yes, no core.Rect) {
	d := Dialog()
	const w, h = 120, 44
	y := d.Bottom() - h - 24
	yes = core.NewRect(d.X+40, y, w, h)
	no = core.NewRect(d.Right()-40-w, y, w, h)
	return yes, no
}
