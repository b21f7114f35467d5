package state

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
	"image"
	"testing"
)

type fakeRecorder struct {
	snapshots []game.Snapshot
}

func (r *fakeRecorder) Record(snapshot game.Snapshot) error {
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func newTestContext(t *testing.T) (*Context, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	config := game.NewConfig()
	config.Seed = 1
	return NewContext(config, console.NewMemDisk(), log), hook
}

// press holds buttons down at x, y for the coming frame
func press(ctx *Context, p image.Point, buttons uint8) {
	ctx.Mouse.Poll(int16(p.X), int16(p.Y), buttons)
}

// release lets go of every button, so whatever was held counts as clicked
func release(ctx *Context, p image.Point) {
	ctx.Mouse.Update()
	ctx.Mouse.Poll(int16(p.X), int16(p.Y), 0)
}

func click(ctx *Context, p image.Point) {
	press(ctx, p, console.MouseLeft)
	release(ctx, p)
}

func rightClick(ctx *Context, p image.Point) {
	press(ctx, p, console.MouseRight)
	release(ctx, p)
}

// update runs one machine update and ends the frame for the mouse
func update(m *Machine, ctx *Context) {
	m.Update(ctx)
	ctx.Mouse.Update()
}

func machineWith(states ...State) *Machine {
	return &Machine{stack: states}
}

func tileCenter(ctx *Context, x, y int) image.Point {
	return ctx.Config.Offset().Add(image.Pt(x*game.TileSize+game.TileSize/2, y*game.TileSize+game.TileSize/2))
}

func smallInGame(ctx *Context, mines game.Mines) *InGame {
	field := game.NewMinefield(3, 3, ctx.Config.Offset())
	return newInGame(game.Easy, field, mines, 99)
}

