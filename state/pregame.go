package state

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/tinysweep/game"
	"math/rand"
)

// PreGame shows an untouched minefield. Mines are only placed once the
// first tile is clicked, so that tile is never a mine.
type PreGame struct {
	sealed

	difficulty game.Difficulty
	field      *game.Minefield
}

func NewPreGame(ctx *Context, difficulty game.Difficulty) *PreGame {
	return &PreGame{
		difficulty: difficulty,
		field:      game.NewMinefield(ctx.Config.Width, ctx.Config.Height, ctx.Config.Offset()),
	}
}

func (s *PreGame) Name() string {
	return "PreGame"
}

func (s *PreGame) Difficulty() game.Difficulty {
	return s.difficulty
}

func (s *PreGame) Draw(ctx *Context, active bool) {
	ctx.usePalette(game.PhaseGame)
	s.field.Draw(ctx.Screen, nil)
	drawHeader(ctx.Screen, 0, ctx.Config.MinesCount(s.difficulty))
}

func (s *PreGame) Update(ctx *Context) Transition {
	if !ctx.Mouse.LeftClicked() {
		return Replace(s)
	}

	mx, my := ctx.Mouse.Coordinates()
	first, ok := s.field.MouseToTile(int(mx), int(my))
	if !ok {
		return Replace(s)
	}

	seed := ctx.NextSeed()
	count := ctx.Config.MinesCount(s.difficulty)
	mines := game.PlaceMines(rand.New(rand.NewSource(seed)), count, s.field.Width(), s.field.Height(), first)

	ctx.Log.WithFields(logrus.Fields{
		"difficulty": s.difficulty,
		"mines":      count,
		"seed":       seed,
		"first":      first,
	}).Debug("Placed mines")

	s.field.UncoverTile(first.X, first.Y, mines)

	return Replace(newInGame(s.difficulty, s.field, mines, seed))
}
