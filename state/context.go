package state

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
	"math/rand"
)

// Recorder receives the final snapshot of every finished game
type Recorder interface {
	Record(snapshot game.Snapshot) error
}

// Context carries everything the states share. It is built once, before
// the first frame, and passed to every Draw and Update.
type Context struct {
	Screen *console.Framebuffer
	Mouse  *console.Mouse
	Disk   console.Disk
	Log    logrus.FieldLogger

	Ticker *game.Ticker
	Frames *game.FrameCounter

	Config   game.Config
	Recorder Recorder

	seeder *rand.Rand
}

func NewContext(config game.Config, disk console.Disk, log logrus.FieldLogger) *Context {
	return &Context{
		Screen: console.NewFramebuffer(),
		Mouse:  &console.Mouse{},
		Disk:   disk,
		Log:    log,
		Ticker: &game.Ticker{},
		Frames: &game.FrameCounter{},
		Config: config,
	}
}

// NextSeed returns the seed for a new game. The first game uses the
// configured seed, or the frame count when none is set, and every later
// seed is drawn from a generator seeded with it.
func (ctx *Context) NextSeed() int64 {
	if ctx.seeder == nil {
		seed := ctx.Config.Seed
		if seed == 0 {
			seed = int64(ctx.Frames.Frames())
		}
		ctx.Log.WithField("seed", seed).Debug("Initializing random generator")
		ctx.seeder = rand.New(rand.NewSource(seed))
		return seed
	}
	return ctx.seeder.Int63()
}

func (ctx *Context) usePalette(phase string) {
	ctx.Screen.SetPalette(ctx.Config.Palette(phase))
}

func (ctx *Context) record(snapshot game.Snapshot) {
	if ctx.Recorder == nil {
		return
	}
	if err := ctx.Recorder.Record(snapshot); err != nil {
		ctx.Log.WithError(err).Warn("Could not record game")
	}
}
