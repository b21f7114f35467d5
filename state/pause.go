package state

import "github.com/they4kman/tinysweep/console"

type Pause struct {
	sealed
}

func NewPause() *Pause {
	return &Pause{}
}

func (s *Pause) Name() string {
	return "Pause"
}

func (s *Pause) Draw(ctx *Context, active bool) {
	x, y := 16, 30
	drawBox(ctx.Screen, x, y, console.ScreenSize-2*x, 2*console.LineHeight+8)

	ctx.Screen.SetDrawColors(0x03)
	ctx.Screen.Text("Game paused", x+4, y+4)
	ctx.Screen.Text("Click to resume", x+4, y+4+console.LineHeight)
}

func (s *Pause) Update(ctx *Context) Transition {
	if ctx.Mouse.LeftClicked() {
		return Pop()
	}
	return Replace(s)
}
