package state

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/tinysweep/game"
)

type GameWon struct {
	sealed
	finished
}

// NewGameWon records the time as a high score if it beats the stored one
func NewGameWon(ctx *Context, difficulty game.Difficulty, field *game.Minefield, mines game.Mines, timer game.Timer) *GameWon {
	scores := game.LoadHighScores(ctx.Disk, ctx.Log)
	scores.Set(difficulty, timer.Seconds())
	scores.Save(ctx.Disk, ctx.Log)

	ctx.Log.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"seconds":    timer.Seconds(),
	}).Info("Game won")

	return &GameWon{finished: finished{difficulty, field, mines, timer}}
}

func (s *GameWon) Name() string {
	return "GameWon"
}

func (s *GameWon) Draw(ctx *Context, active bool) {
	s.draw(ctx, game.PhaseWon, "VICTORY!!!")
}

func (s *GameWon) Update(ctx *Context) Transition {
	if ctx.Mouse.LeftClicked() {
		return Replace(NewMainMenu(ctx))
	}
	return Replace(s)
}
