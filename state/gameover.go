package state

import "github.com/they4kman/tinysweep/game"

// finished is what GameOver and GameWon keep of the game for display
type finished struct {
	difficulty game.Difficulty
	field      *game.Minefield
	mines      game.Mines
	timer      game.Timer
}

func (f *finished) draw(ctx *Context, phase, message string) {
	ctx.usePalette(phase)
	f.field.Draw(ctx.Screen, f.mines)
	drawHeader(ctx.Screen, f.timer.Seconds(), len(f.mines)-f.field.CountFlagged())
	drawMessageBox(ctx.Screen, message, 30, 30)
}

func (f *finished) Difficulty() game.Difficulty {
	return f.difficulty
}

func (f *finished) Timer() game.Timer {
	return f.timer
}

type GameOver struct {
	sealed
	finished
}

func NewGameOver(difficulty game.Difficulty, field *game.Minefield, mines game.Mines, timer game.Timer) *GameOver {
	return &GameOver{finished: finished{difficulty, field, mines, timer}}
}

func (s *GameOver) Name() string {
	return "GameOver"
}

func (s *GameOver) Draw(ctx *Context, active bool) {
	s.draw(ctx, game.PhaseLost, "GAME OVER!!!")
}

func (s *GameOver) Update(ctx *Context) Transition {
	if ctx.Mouse.LeftClicked() {
		return Replace(NewMainMenu(ctx))
	}
	return Replace(s)
}
