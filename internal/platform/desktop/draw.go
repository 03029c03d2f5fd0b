package desktop

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/desktop/layout"
)

// Draw renders the current state.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch a.state {
	case stateMenu, stateSize, stateMovement:
		a.drawMenu(screen)
	case statePlaying:
		a.drawGame(screen)
	case stateConfirm:
		a.drawGame(screen)
		a.drawConfirm(screen)
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r core.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}

// drawText draws s with its anchor at (x, y). align applies on both axes.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = align
	text.Draw(dst, s, face, op)
}

func drawCentered(dst *ebiten.Image, s string, face text.Face, r core.Rect, clr color.Color) {
	cx, cy := r.Center()
	drawText(dst, s, face, float64(cx), float64(cy), clr, text.AlignCenter)
}

func (a *App) drawButton(dst *ebiten.Image, r core.Rect, label string, focused, hovered bool) {
	bg := buttonColor
	if hovered {
		bg = buttonHover
	}
	fillRect(dst, r, bg)
	if focused {
		strokeRect(dst, r.Inset(2), 3, focusColor)
	}
	drawCentered(dst, label, a.faces.normal, r, textColorLight)
}

func (a *App) drawMenu(dst *ebiten.Image) {
	mid := float64(layout.ScreenWidth) / 2
	drawText(dst, "Welcome to 2048!", a.faces.normal, mid, 80, textColor, text.AlignCenter)

	hint := "Press Enter to start"
	switch a.state {
	case stateSize:
		hint = "Select grid size"
	case stateMovement:
		hint = "Select movement"
	}
	drawText(dst, hint, a.faces.small, mid, 120, textColor, text.AlignCenter)

	items := a.menuItems()
	rects := layout.Buttons(len(items))
	for i, label := range items {
		a.drawButton(dst, rects[i], label, i == a.focus, i == a.hover)
	}

	if a.state == stateMenu {
		best := fmt.Sprintf("Best on %s: %d", t2048.BoardTitle(a.boardKey()), a.best)
		y := float64(rects[len(rects)-1].Bottom() + 40)
		drawText(dst, best, a.faces.small, mid, y, textColor, text.AlignCenter)
	}

	drawText(dst, "Mouse or arrows + Enter  |  Esc: back", a.faces.small,
		mid, layout.ScreenHeight-25, textColor, text.AlignCenter)
}

func (a *App) drawGame(dst *ebiten.Image) {
	a.drawHUD(dst)
	a.drawBoard(dst)

	board := layout.Board(a.session.Size())
	switch {
	case a.gameOver:
		a.drawBanner(dst, board, "Game over!", "R / Enter: new game   Esc: menu")
	case a.showWin:
		a.drawBanner(dst, board, "You win!", "Enter: keep playing   Esc: menu")
	}

	controls := "Arrows / WASD: move   Esc: menu"
	if a.variant == t2048.VariantDiagonal {
		controls = "Q E Z C  or  7 9 1 3: move   Esc: menu"
	}
	drawText(dst, controls, a.faces.small, float64(layout.ScreenWidth)/2,
		layout.ScreenHeight-25, textColor, text.AlignCenter)
}

func (a *App) drawHUD(dst *ebiten.Image) {
	drawText(dst, "2048", a.faces.title, 20, 18, textColor, text.AlignStart)

	boxes := []struct {
		label string
		value int
	}{
		{"SCORE", a.session.Score()},
		{"BEST", a.best},
	}
	const w, h, gap = 100, 56, 10
	x := layout.ScreenWidth - 20 - len(boxes)*w - (len(boxes)-1)*gap
	for _, b := range boxes {
		r := core.NewRect(x, 20, w, h)
		fillRect(dst, r, boardColor)
		cx := float64(x + w/2)
		drawText(dst, b.label, a.faces.small, cx, float64(r.Y+14), emptyTileColor, text.AlignCenter)
		drawText(dst, strconv.Itoa(b.value), a.faces.normal, cx, float64(r.Y+38), textColorLight, text.AlignCenter)
		x += w + gap
	}

	n := a.session.Size()
	info := fmt.Sprintf("%dx%d %s   Max: %d   Moves: %d",
		n, n, a.variant.Label(), a.session.MaxTile(), a.session.MoveCount())
	drawText(dst, info, a.faces.small, 20, 96, textColor, text.AlignStart)
}

func (a *App) drawBoard(dst *ebiten.Image) {
	n := a.session.Size()
	fillRect(dst, layout.Board(n), boardColor)
	for y := range n {
		for x := range n {
			fillRect(dst, layout.Tile(n, x, y), emptyTileColor)
		}
	}

	side := float64(layout.TileSize(n))
	for _, s := range a.anim.Sprites(a.session.Grid()) {
		px, py := layout.TileOrigin(n, s.X, s.Y)
		size := side * s.Scale
		off := (side - size) / 2
		vector.DrawFilledRect(dst, float32(px+off), float32(py+off), float32(size), float32(size), tileColor(s.Value), false)

		if s.Scale < 0.5 {
			continue
		}
		face := a.faces.tile(layout.TileFontSize(n, s.Value))
		drawText(dst, strconv.Itoa(s.Value), face, px+side/2, py+side/2, tileTextColor(s.Value), text.AlignCenter)
	}
}

func (a *App) drawBanner(dst *ebiten.Image, board core.Rect, title, hint string) {
	fillRect(dst, board, overlayColor)
	cx, cy := board.Center()
	drawText(dst, title, a.faces.title, float64(cx), float64(cy-20), textColor, text.AlignCenter)
	drawText(dst, hint, a.faces.small, float64(cx), float64(cy+30), textColor, text.AlignCenter)
}

func (a *App) drawConfirm(dst *ebiten.Image) {
	fillRect(dst, layout.Screen(), shadeColor)

	d := layout.Dialog()
	fillRect(dst, d, backgroundColor)
	strokeRect(dst, d, 3, boardColor)
	drawText(dst, "Exit to menu?", a.faces.normal, float64(d.X+d.W/2), float64(d.Y+50), textColor, text.AlignCenter)

	yes, no := layout.DialogButtons()
	a.drawButton(dst, yes, "Yes", false, a.hover == 0)
	a.drawButton(dst, no, "No", false, a.hover == 1)
}
