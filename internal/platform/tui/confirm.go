package tui

import "github.com/vovakirdan/t2048/internal/core"

var confirmLines = []string{
	"Exit to menu?",
	"",
	"Y / Enter: yes   N / Esc: no",
}

// drawConfirm draws the exit-confirmation dialog centered on the screen.
func drawConfirm(dst *core.Screen) {
	w := 0
	for _, line := range confirmLines {
		w = max(w, len([]rune(line)))
	}
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).CenteredIn(w+6, len(confirmLines)+4)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range confirmLines {
		color := core.ColorGray
		if i == 0 {
			color = core.ColorBrightWhite
		}
		dst.DrawColorText(cx-len([]rune(line))/2, box.Y+2+i, line, color)
	}
}
