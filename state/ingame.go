package state

import (
	"github.com/they4kman/tinysweep/game"
)

type InGame struct {
	sealed

	difficulty game.Difficulty
	field      *game.Minefield
	mines      game.Mines
	timer      game.Timer
	seed       int64

	// While positive, the next release of that button belongs to a chord
	// already performed and is ignored
	leftDebounce, rightDebounce int
}

func newInGame(difficulty game.Difficulty, field *game.Minefield, mines game.Mines, seed int64) *InGame {
	return &InGame{
		difficulty: difficulty,
		field:      field,
		mines:      mines,
		seed:       seed,
	}
}

func (s *InGame) Name() string {
	return "InGame"
}

func (s *InGame) Difficulty() game.Difficulty {
	return s.difficulty
}

func (s *InGame) Timer() game.Timer {
	return s.timer
}

func (s *InGame) Draw(ctx *Context, active bool) {
	ctx.usePalette(game.PhaseGame)
	s.field.Draw(ctx.Screen, s.mines)
	drawHeader(ctx.Screen, s.timer.Seconds(), len(s.mines)-s.field.CountFlagged())
}

func (s *InGame) Update(ctx *Context) Transition {
	s.timer.Update(ctx.Ticker)

	mouse := ctx.Mouse
	mx, my := mouse.Coordinates()
	px, py := int(mx), int(my)

	leftClicked, rightClicked := mouse.LeftClicked(), mouse.RightClicked()
	chord := (leftClicked && (rightClicked || mouse.RightPressed())) ||
		(rightClicked && mouse.LeftPressed())

	switch {
	case chord:
		s.field.HandleLeftAndRightClick(px, py, s.mines)
		if !leftClicked {
			s.leftDebounce = ctx.Config.ChordFrames
		}
		if !rightClicked {
			s.rightDebounce = ctx.Config.ChordFrames
		}
		leftClicked, rightClicked = false, false
	default:
		leftClicked = s.debounce(&s.leftDebounce, leftClicked, mouse.LeftPressed())
		rightClicked = s.debounce(&s.rightDebounce, rightClicked, mouse.RightPressed())
	}

	if leftClicked {
		if _, ok := s.field.MouseToTile(px, py); !ok {
			return Push(s, NewPause())
		}
		s.field.HandleLeftClick(px, py, s.mines)
	}
	if rightClicked {
		if ctx.Config.FlagMode == game.FlagOnly {
			s.field.HandleFlagOnlyClick(px, py)
		} else {
			s.field.HandleRightClick(px, py)
		}
	}

	switch {
	case s.field.HasSteppedOnMine(s.mines):
		s.field.FlagMines(s.mines)
		ctx.record(s.snapshot())
		return Replace(NewGameOver(s.difficulty, s.field, s.mines, s.timer))
	case s.field.HasFoundAllMines(s.mines):
		s.field.FlagMines(s.mines)
		ctx.record(s.snapshot())
		return Replace(NewGameWon(ctx, s.difficulty, s.field, s.mines, s.timer))
	}

	return Replace(s)
}

// debounce swallows a release reserved by a chord. The reservation holds
// while the button is down and expires a few frames after it is let go.
func (s *InGame) debounce(counter *int, clicked, pressed bool) bool {
	if *counter <= 0 {
		return clicked
	}
	if clicked {
		*counter = 0
		return false
	}
	if !pressed {
		*counter--
	}
	return false
}

func (s *InGame) snapshot() game.Snapshot {
	return game.NewSnapshot(s.field, s.mines, s.difficulty, s.timer, s.seed)
}
