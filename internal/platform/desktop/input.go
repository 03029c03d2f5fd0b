package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/t2048/internal/core"
)

// moveKeys maps keys to movement actions. Every key is always read; the
// session ignores directions its variant does not allow.
var moveKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyK, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyJ, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyH, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyL, core.ActionRight},

	{ebiten.KeyQ, core.ActionUpLeft},
	{ebiten.KeyHome, core.ActionUpLeft},
	{ebiten.KeyNumpad7, core.ActionUpLeft},
	{ebiten.KeyDigit7, core.ActionUpLeft},
	{ebiten.KeyE, core.ActionUpRight},
	{ebiten.KeyPageUp, core.ActionUpRight},
	{ebiten.KeyNumpad9, core.ActionUpRight},
	{ebiten.KeyDigit9, core.ActionUpRight},
	{ebiten.KeyZ, core.ActionDownLeft},
	{ebiten.KeyEnd, core.ActionDownLeft},
	{ebiten.KeyNumpad1, core.ActionDownLeft},
	{ebiten.KeyDigit1, core.ActionDownLeft},
	{ebiten.KeyC, core.ActionDownRight},
	{ebiten.KeyPageDown, core.ActionDownRight},
	{ebiten.KeyNumpad3, core.ActionDownRight},
	{ebiten.KeyDigit3, core.ActionDownRight},
}

// readMove returns the first movement key pressed this frame.
func readMove() (core.Action, bool) {
	for _, mk := range moveKeys {
		if inpututil.IsKeyJustPressed(mk.key) {
			return mk.action, true
		}
	}
	return core.ActionNone, false
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func confirmPressed() bool {
	return justPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace)
}

func backPressed() bool {
	return justPressed(ebiten.KeyEscape, ebiten.KeyBackspace)
}

// click reports a left click this frame and where it landed.
func click() (x, y int, ok bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y = ebiten.CursorPosition()
	return x, y, true
}
