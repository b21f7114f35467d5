package state

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
	"image"
	"testing"
)

func menuEntryCenter(index int) image.Point {
	x, y := menuEntryPosition(index)
	return image.Pt(x+menuEntryWidth/2, y+menuEntryHeight/2)
}

func TestMainMenuStartsGames(t *testing.T) {
	for i, d := range game.Difficulties {
		ctx, _ := newTestContext(t)
		m := machineWith(NewInitial(), NewMainMenu(ctx))

		click(ctx, menuEntryCenter(i))
		update(m, ctx)

		require.Equal(t, []string{"Initial", "PreGame"}, m.Names())
		assert.Equal(t, d, m.Top().(*PreGame).Difficulty())
	}
}

func TestMainMenuIgnoresClicksOutsideEntries(t *testing.T) {
	ctx, _ := newTestContext(t)
	menu := NewMainMenu(ctx)
	m := machineWith(NewInitial(), menu)

	click(ctx, image.Pt(80, 150))
	update(m, ctx)
	rightClick(ctx, menuEntryCenter(0))
	update(m, ctx)

	assert.Same(t, menu, m.Top())
}

func TestInstructionsPagesThenPop(t *testing.T) {
	ctx, _ := newTestContext(t)
	m := machineWith(NewInitial(), NewMainMenu(ctx))

	click(ctx, menuEntryCenter(len(menuEntries)-1))
	update(m, ctx)
	require.Equal(t, []string{"Initial", "MainMenu", "Instructions"}, m.Names())

	for page := 1; page < len(instructionsPages); page++ {
		click(ctx, image.Pt(80, 80))
		update(m, ctx)
		require.Equal(t, page, m.Top().(*Instructions).Page())
	}

	// Waiting without clicking keeps the page
	update(m, ctx)
	assert.Equal(t, len(instructionsPages)-1, m.Top().(*Instructions).Page())

	click(ctx, image.Pt(80, 80))
	update(m, ctx)
	assert.Equal(t, []string{"Initial", "MainMenu"}, m.Names())
}

func TestInstructionsDrawEveryPage(t *testing.T) {
	ctx, _ := newTestContext(t)

	for page := range instructionsPages {
		assert.NotPanics(t, func() {
			(&Instructions{page: page}).Draw(ctx, true)
		})
	}
}

func TestMainMenuShowsHighScores(t *testing.T) {
	ctx, _ := newTestContext(t)
	var scores game.HighScores
	scores.Set(game.Medium, 42)
	scores.Save(ctx.Disk, ctx.Log)

	menu := NewMainMenu(ctx)

	seconds, ok := menu.scores.Get(game.Medium)
	assert.True(t, ok)
	assert.Equal(t, uint16(42), seconds)
}

func TestPreGamePlacesMinesAwayFromFirstClick(t *testing.T) {
	ctx, _ := newTestContext(t)
	m := machineWith(NewInitial(), NewPreGame(ctx, game.Hard))

	// Header area, outside the grid
	click(ctx, image.Pt(80, 5))
	update(m, ctx)
	require.IsType(t, &PreGame{}, m.Top())

	click(ctx, tileCenter(ctx, 7, 6))
	update(m, ctx)

	ingame, ok := m.Top().(*InGame)
	require.True(t, ok)
	assert.Equal(t, game.Hard, ingame.Difficulty())
	assert.Len(t, ingame.mines, 50)
	assert.False(t, ingame.mines.Contains(game.Coord{X: 7, Y: 6}))
	assert.Equal(t, game.Uncovered, ingame.field.TileAt(7, 6))
	assert.Equal(t, int64(1), ingame.seed)
}

func TestPreGameIsReproducibleFromSeed(t *testing.T) {
	minesFor := func() game.Mines {
		ctx, _ := newTestContext(t)
		ctx.Config.Seed = 1234
		m := machineWith(NewInitial(), NewPreGame(ctx, game.Medium))
		click(ctx, tileCenter(ctx, 0, 0))
		update(m, ctx)
		return m.Top().(*InGame).mines
	}

	assert.Equal(t, minesFor(), minesFor())
}

func TestInGameClickOutsideGridPauses(t *testing.T) {
	ctx, _ := newTestContext(t)
	ingame := smallInGame(ctx, game.Mines{{X: 2, Y: 2}})
	m := machineWith(NewInitial(), ingame)

	click(ctx, image.Pt(150, 150))
	update(m, ctx)
	require.Equal(t, []string{"Initial", "InGame", "Pause"}, m.Names())

	// The timer stands still while paused
	seconds := ingame.Timer().Seconds()
	for i := 0; i < 3*game.FrameRate; i++ {
		update(m, ctx)
		ctx.Ticker.Update()
	}
	assert.Equal(t, seconds, ingame.Timer().Seconds())

	click(ctx, image.Pt(80, 80))
	update(m, ctx)
	assert.Equal(t, []string{"Initial", "InGame"}, m.Names())
	assert.Same(t, ingame, m.Top())
}

func TestInGameTimerRuns(t *testing.T) {
	ctx, _ := newTestContext(t)
	ingame := smallInGame(ctx, game.Mines{{X: 2, Y: 2}})
	m := machineWith(NewInitial(), ingame)

	for i := 0; i < 2*game.FrameRate; i++ {
		update(m, ctx)
		ctx.Ticker.Update()
	}

	assert.Equal(t, 2, ingame.Timer().Seconds())
}

func TestInGameRightClickFlags(t *testing.T) {
	ctx, _ := newTestContext(t)
	ingame := smallInGame(ctx, game.Mines{{X: 2, Y: 2}})
	m := machineWith(NewInitial(), ingame)

	rightClick(ctx, tileCenter(ctx, 1, 0))
	update(m, ctx)
	assert.Equal(t, game.Flagged, ingame.field.TileAt(1, 0))

	rightClick(ctx, tileCenter(ctx, 1, 0))
	update(m, ctx)
	assert.Equal(t, game.Covered, ingame.field.TileAt(1, 0))
}

func TestInGameFlagOnlyMode(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Config.FlagMode = game.FlagOnly
	ingame := smallInGame(ctx, game.Mines{{X: 2, Y: 2}})
	m := machineWith(NewInitial(), ingame)

	rightClick(ctx, tileCenter(ctx, 1, 0))
	update(m, ctx)
	rightClick(ctx, tileCenter(ctx, 1, 0))
	update(m, ctx)

	assert.Equal(t, game.Flagged, ingame.field.TileAt(1, 0))
}

func TestInGameSteppingOnMineEndsGame(t *testing.T) {
	ctx, _ := newTestContext(t)
	recorder := &fakeRecorder{}
	ctx.Recorder = recorder
	mines := game.Mines{{X: 2, Y: 2}, {X: 0, Y: 2}}
	m := machineWith(NewInitial(), smallInGame(ctx, mines))

	click(ctx, tileCenter(ctx, 2, 2))
	update(m, ctx)

	over, ok := m.Top().(*GameOver)
	require.True(t, ok)
	assert.Equal(t, game.Uncovered, over.field.TileAt(2, 2))
	assert.Equal(t, game.Flagged, over.field.TileAt(0, 2))

	require.Len(t, recorder.snapshots, 1)
	assert.Equal(t, "loss", recorder.snapshots[0].Outcome())
	assert.Equal(t, int64(99), recorder.snapshots[0].Seed)

	// Scores are left alone
	_, saved := game.LoadHighScores(ctx.Disk, ctx.Log).Get(game.Easy)
	assert.False(t, saved)

	click(ctx, image.Pt(80, 80))
	update(m, ctx)
	assert.Equal(t, []string{"Initial", "MainMenu"}, m.Names())
}

func TestInGameWinningSavesHighScore(t *testing.T) {
	ctx, _ := newTestContext(t)
	mines := game.Mines{{X: 1, Y: 1}}
	ingame := smallInGame(ctx, mines)
	ingame.field.FlagTile(1, 1)
	m := machineWith(NewInitial(), ingame)

	// A few seconds pass before the winning click
	for i := 0; i < 3*game.FrameRate-1; i++ {
		update(m, ctx)
		ctx.Ticker.Update()
	}
	click(ctx, tileCenter(ctx, 0, 0))
	update(m, ctx)

	won, ok := m.Top().(*GameWon)
	require.True(t, ok)
	assert.Equal(t, 8, won.field.CountUncovered())
	assert.Equal(t, 3, won.Timer().Seconds())

	seconds, saved := game.LoadHighScores(ctx.Disk, ctx.Log).Get(game.Easy)
	assert.True(t, saved)
	assert.Equal(t, uint16(3), seconds)

	click(ctx, image.Pt(80, 80))
	update(m, ctx)
	assert.Equal(t, []string{"Initial", "MainMenu"}, m.Names())
}

func TestGameWonKeepsBetterScore(t *testing.T) {
	ctx, _ := newTestContext(t)
	var scores game.HighScores
	scores.Set(game.Easy, 2)
	scores.Save(ctx.Disk, ctx.Log)

	field := game.NewMinefield(3, 3, ctx.Config.Offset())
	var timer game.Timer
	for i := 0; i < 10; i++ {
		timer.Update(ctx.Ticker)
	}
	NewGameWon(ctx, game.Easy, field, game.Mines{}, timer)

	seconds, _ := game.LoadHighScores(ctx.Disk, ctx.Log).Get(game.Easy)
	assert.Equal(t, uint16(2), seconds)
}

func TestChordSwallowsTrailingRelease(t *testing.T) {
	ctx, _ := newTestContext(t)
	mines := game.Mines{{X: 1, Y: 1}}
	ingame := smallInGame(ctx, mines)
	ingame.field.UncoverTile(0, 0, mines)
	ingame.field.FlagTile(1, 1)
	m := machineWith(NewInitial(), ingame)
	p := tileCenter(ctx, 0, 0)

	// Both buttons down, then the left one comes up first
	press(ctx, p, console.MouseLeft|console.MouseRight)
	ctx.Mouse.Update()
	press(ctx, p, console.MouseRight)
	update(m, ctx)

	require.IsType(t, &GameWon{}, m.Top())
	assert.Equal(t, 8, ingame.field.CountUncovered())
}

func TestChordReleaseDoesNotFlag(t *testing.T) {
	ctx, _ := newTestContext(t)
	mines := game.Mines{{X: 2, Y: 2}}
	ingame := smallInGame(ctx, mines)
	ingame.field.UncoverTile(1, 1, mines)
	m := machineWith(NewInitial(), ingame)
	p := tileCenter(ctx, 1, 1)

	// Chord on an unsatisfied number does nothing by itself
	press(ctx, p, console.MouseLeft|console.MouseRight)
	ctx.Mouse.Update()
	press(ctx, p, console.MouseRight)
	update(m, ctx)

	// Right button held a while, then moved onto a covered tile and released
	for i := 0; i < 10; i++ {
		press(ctx, p, console.MouseRight)
		update(m, ctx)
	}
	corner := tileCenter(ctx, 0, 0)
	press(ctx, corner, console.MouseRight)
	release(ctx, corner)
	update(m, ctx)

	assert.Equal(t, game.Covered, ingame.field.TileAt(0, 0))
	assert.Equal(t, 1, ingame.field.CountUncovered())

	// Later right clicks flag again
	rightClick(ctx, corner)
	update(m, ctx)
	assert.Equal(t, game.Flagged, ingame.field.TileAt(0, 0))
}

func TestSimultaneousReleaseChords(t *testing.T) {
	ctx, _ := newTestContext(t)
	mines := game.Mines{{X: 1, Y: 1}}
	ingame := smallInGame(ctx, mines)
	ingame.field.UncoverTile(2, 2, mines)
	ingame.field.FlagTile(1, 1)
	m := machineWith(NewInitial(), ingame)
	p := tileCenter(ctx, 2, 2)

	press(ctx, p, console.MouseLeft|console.MouseRight)
	release(ctx, p)
	update(m, ctx)

	assert.IsType(t, &GameWon{}, m.Top())
}

func TestNextSeed(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Config.Seed = 77

	first := ctx.NextSeed()
	second := ctx.NextSeed()

	assert.Equal(t, int64(77), first)
	assert.NotEqual(t, first, second)

	again, _ := newTestContext(t)
	again.Config.Seed = 77
	again.NextSeed()
	assert.Equal(t, second, again.NextSeed())
}

func TestNextSeedFromFrameCount(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Config.Seed = 0
	for i := 0; i < 500; i++ {
		ctx.Frames.Update()
	}

	assert.Equal(t, int64(500), ctx.NextSeed())
}

func TestStatesDraw(t *testing.T) {
	ctx, _ := newTestContext(t)
	field := game.NewMinefield(15, 13, ctx.Config.Offset())
	mines := game.Mines{{X: 0, Y: 0}}

	states := []State{
		NewInitial(),
		NewMainMenu(ctx),
		NewInstructions(),
		NewPreGame(ctx, game.Easy),
		newInGame(game.Easy, field, mines, 1),
		NewPause(),
		NewGameOver(game.Easy, field, mines, game.Timer{}),
		NewGameWon(ctx, game.Easy, field, mines, game.Timer{}),
	}
	for _, s := range states {
		assert.NotPanics(t, func() { s.Draw(ctx, true) }, s.Name())
	}

	NewGameOver(game.Easy, field, mines, game.Timer{}).Draw(ctx, true)
	assert.Equal(t, ctx.Config.Palette(game.PhaseLost), ctx.Screen.Palette())
}
