package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/desktop/layout"
	"github.com/vovakirdan/t2048/internal/storage"
)

// startGame creates a fresh session for the selected board. Only the
// first game uses the configured seed; later games are time seeded.
func (a *App) startGame() error {
	s, err := t2048.NewSession(a.size, a.variant,
		t2048.WithSeed(a.seed),
		t2048.WithFourProbability(a.cfg.Spawn.FourProbability),
		t2048.WithWinTile(a.cfg.Rules.WinTile),
	)
	if err != nil {
		return err
	}
	a.seed = 0

	a.session = s
	a.anim = t2048.NewAnimator(a.cfg.Animation.SlideTicks, a.cfg.Animation.PopTicks)
	a.anim.StartSpawns(s.LastSpawns())
	a.gameOver = s.Terminal() || !s.HasMoves()
	a.showWin = false
	a.saved = false
	a.state = statePlaying
	a.refreshBest()

	a.logger.Info("game started", "board", a.boardKey())
	return nil
}

func (a *App) updatePlaying() {
	a.anim.Update()

	if backPressed() {
		a.state = stateConfirm
		return
	}

	if a.gameOver {
		_, _, clicked := click()
		if justPressed(ebiten.KeyR) || confirmPressed() || clicked {
			if err := a.startGame(); err != nil {
				a.logger.Error("cannot restart", "err", err)
			}
		}
		return
	}

	if a.showWin {
		_, _, clicked := click()
		if confirmPressed() || clicked {
			a.showWin = false
		}
		return
	}

	if action, ok := readMove(); ok {
		a.move(action)
	}
}

// move applies one movement action, finishing any running animation.
func (a *App) move(action core.Action) {
	dir, ok := t2048.ActionDirection(action)
	if !ok {
		return
	}

	a.anim.Finish()
	before := a.session.Grid()
	out := a.session.HandleDirection(dir)
	if !out.Moved {
		return
	}
	a.anim.Start(before, out)

	if out.JustWon {
		a.showWin = true
		a.logger.Info("win tile reached", "board", a.boardKey(), "score", a.session.Score())
	}
	if out.Terminal || !a.session.HasMoves() {
		a.gameOver = true
		a.showWin = false
		a.logger.Info("game over",
			"board", a.boardKey(),
			"score", a.session.Score(),
			"max_tile", a.session.MaxTile(),
			"moves", a.session.MoveCount())
		a.saveResult("game over")
	}
	a.best = max(a.best, a.session.Score())
}

func (a *App) updateConfirm() {
	yes, no := layout.DialogButtons()
	mx, my := ebiten.CursorPosition()
	a.hover = -1
	switch {
	case yes.Contains(mx, my):
		a.hover = 0
	case no.Contains(mx, my):
		a.hover = 1
	}

	switch {
	case justPressed(ebiten.KeyY, ebiten.KeyEnter, ebiten.KeyNumpadEnter):
		a.leaveGame()
		return
	case justPressed(ebiten.KeyN, ebiten.KeyEscape):
		a.state = statePlaying
		return
	}

	if x, y, ok := click(); ok {
		switch {
		case yes.Contains(x, y):
			a.leaveGame()
		case no.Contains(x, y):
			a.state = statePlaying
		}
	}
}

// leaveGame records the running game and returns to the main menu.
func (a *App) leaveGame() {
	a.saveResult("exit")
	a.session = nil
	a.anim = nil
	a.state = stateMenu
	a.focus = 0
	a.refreshBest()
}

// saveResult records the current game once. Empty games are skipped.
// Failures are logged; the game continues without history.
func (a *App) saveResult(reason string) {
	if a.saved || a.store == nil || a.session == nil || a.session.Score() == 0 {
		return
	}
	a.saved = true

	_, err := a.store.SaveGame(storage.GameResult{
		Board:   a.boardKey(),
		Score:   a.session.Score(),
		MaxTile: a.session.MaxTile(),
		Moves:   a.session.MoveCount(),
		Won:     a.session.Won(),
	})
	if err != nil {
		a.logger.Warn("cannot save score", "board", a.boardKey(), "err", err)
		return
	}
	a.logger.Debug("score saved", "board", a.boardKey(), "score", a.session.Score(), "reason", reason)
}
