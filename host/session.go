// Package host runs the console frame loop for window back-ends.
package host

import (
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/director"
	"github.com/they4kman/tinysweep/state"
)

// Session owns the game for one window. Back-ends call Step once per tick
// with the pointer in console coordinates and present Screen afterwards.
type Session struct {
	Context *state.Context
	Machine *state.Machine

	// Driver, when set, plays in place of the pointer during games
	Driver *director.Driver
}

func NewSession(ctx *state.Context, driver *director.Driver) *Session {
	return &Session{
		Context: ctx,
		Machine: state.NewMachine(),
		Driver:  driver,
	}
}

// Step runs one frame
func (s *Session) Step(x, y int16, buttons uint8) {
	driven := false
	if s.Driver != nil {
		view, playing := s.Machine.View()
		driven = s.Driver.Poll(s.Context.Mouse, view, playing)
	}
	if !driven {
		s.Context.Mouse.Poll(x, y, buttons)
	}

	s.Machine.Frame(s.Context)
}

func (s *Session) Screen() *console.Framebuffer {
	return s.Context.Screen
}

// ToConsole maps a window position to console pixels, given how many window
// pixels one console pixel covers
func ToConsole(x, y float64, scale float64) (int16, int16) {
	return clampCoordinate(x / scale), clampCoordinate(y / scale)
}

func clampCoordinate(v float64) int16 {
	if v < 0 {
		return -1
	}
	if v >= console.ScreenSize {
		return console.ScreenSize
	}
	return int16(v)
}
