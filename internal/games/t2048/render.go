package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/t2048/internal/core"
)

const hudHeight = 3

// cellMetrics describes one tile's footprint in characters, borders included.
type cellMetrics struct {
	w, h int
}

var (
	roomyCell   = cellMetrics{w: 8, h: 4}
	normalCell  = cellMetrics{w: 7, h: 3}
	compactCell = cellMetrics{w: 6, h: 2}
)

// boardLayout is the on-screen placement of the board.
type boardLayout struct {
	cell  cellMetrics
	board core.Rect
}

// layout picks the largest cell size that fits the screen.
func (g *Game) layout() (boardLayout, bool) {
	size := DefaultGridSize
	if g.session != nil {
		size = g.session.Size()
	}
	for _, cm := range []cellMetrics{roomyCell, normalCell, compactCell} {
		w := size*cm.w + 1
		h := size*cm.h + 1
		if w+2 <= g.screenW && h+hudHeight+2 <= g.screenH {
			x := (g.screenW - w) / 2
			return boardLayout{cell: cm, board: core.NewRect(x, hudHeight+1, w, h)}, true
		}
	}
	return boardLayout{}, false
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l, _ := g.layout()
	g.renderHUD(dst, l.board)
	g.renderGrid(dst, l)
	g.renderTiles(dst, l)
	g.renderOverlays(dst, l.board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score line and board info.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawColorText((g.screenW-len(g.Title()))/2, 0, g.Title(), core.ColorOrange)

	scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawColorText(board.X, 1, scoreStr, core.ColorBrightWhite)

	bestStr := fmt.Sprintf("Best: %d", max(g.bestScore, g.session.Score()))
	dst.DrawColorText(max(board.X, board.Right()-len(bestStr)), 1, bestStr, core.ColorYellow)

	n := g.session.Size()
	info := fmt.Sprintf("%dx%d %s  Max: %d  Moves: %d", n, n, g.variant.Label(), g.session.MaxTile(), g.session.MoveCount())
	dst.DrawColorText(board.X+(board.W-len(info))/2, 2, info, core.ColorGray)
}

// renderGrid draws the NxN cell borders.
func (g *Game) renderGrid(dst *core.Screen, l boardLayout) {
	n := g.session.Size()
	for y := range n + 1 {
		for x := range n + 1 {
			px := l.board.X + x*l.cell.w
			py := l.board.Y + y*l.cell.h

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetWithColor(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < l.cell.w; i++ {
					dst.SetWithColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < l.cell.h; i++ {
					dst.SetWithColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws the animated tiles. Sliding tiles move in character steps.
func (g *Game) renderTiles(dst *core.Screen, l boardLayout) {
	inner := l.cell.w - 1
	for _, sp := range g.anim.Sprites(g.session.grid) {
		cellX := l.board.X + int(math.Round(sp.X*float64(l.cell.w))) + 1
		cellY := l.board.Y + int(math.Round(sp.Y*float64(l.cell.h))) + l.cell.h/2

		color := core.TileColor(sp.Value)
		text := strconv.Itoa(sp.Value)
		if sp.IsNew && sp.Scale < 0.65 {
			text = "·"
		}
		if len(text) > inner {
			text = text[:inner]
		}
		pad := (inner - len([]rune(text))) / 2
		dst.DrawColorText(cellX+pad, cellY, text, color)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.session.Score()),
			fmt.Sprintf("Max tile: %d", g.session.MaxTile()),
			"Press R to restart")
	case g.showWin:
		g.drawOverlay(dst, centerX, centerY,
			"YOU WIN!",
			fmt.Sprintf("%d reached", g.session.WinTile()),
			"Space: keep playing")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawColorText(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.variant == VariantDiagonal {
		return "Home/PgUp/End/PgDn or 7/9/1/3: Move | P: Pause | R: Restart | Esc: Quit"
	}
	return "Arrows/WASD/hjkl: Move | P: Pause | R: Restart | Esc: Quit"
}
