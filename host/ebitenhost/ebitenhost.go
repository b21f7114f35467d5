// Package ebitenhost presents the console with ebiten.
package ebitenhost

import (
	"fmt"
	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
	"github.com/they4kman/tinysweep/host"
	"image"
)

const title = "tinysweep"

type app struct {
	session *host.Session
	img     *image.RGBA
	ticks   uint64
}

func (a *app) Update() error {
	x, y := eb.CursorPosition()
	cx, cy := host.ToConsole(float64(x), float64(y), 1)
	a.session.Step(cx, cy, mouseButtons())

	a.ticks++
	if a.ticks%game.FrameRate == 0 {
		eb.SetWindowTitle(fmt.Sprintf("%s | FPS: %.0f", title, eb.ActualFPS()))
	}
	return nil
}

func (a *app) Draw(screen *eb.Image) {
	a.session.Screen().DrawInto(a.img)
	screen.WritePixels(a.img.Pix)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return console.ScreenSize, console.ScreenSize
}

// Run blocks until the window is closed
func Run(session *host.Session, scale int) error {
	eb.SetWindowSize(console.ScreenSize*scale, console.ScreenSize*scale)
	eb.SetWindowTitle(title)
	eb.SetTPS(game.FrameRate)
	eb.SetCursorMode(eb.CursorModeHidden)

	return errors.Wrap(eb.RunGame(&app{
		session: session,
		img:     image.NewRGBA(image.Rect(0, 0, console.ScreenSize, console.ScreenSize)),
	}), "running ebiten")
}

func mouseButtons() uint8 {
	var buttons uint8
	if eb.IsMouseButtonPressed(eb.MouseButtonLeft) {
		buttons |= console.MouseLeft
	}
	if eb.IsMouseButtonPressed(eb.MouseButtonRight) {
		buttons |= console.MouseRight
	}
	if eb.IsMouseButtonPressed(eb.MouseButtonMiddle) {
		buttons |= console.MouseMiddle
	}
	return buttons
}
