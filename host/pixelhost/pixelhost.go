// Package pixelhost presents the console in a pixelgl window.
package pixelhost

import (
	"fmt"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
	"github.com/they4kman/tinysweep/host"
	"golang.org/x/image/colornames"
	"image"
	"time"
)

const title = "tinysweep"

// Run opens the window and blocks until it is closed. It must be called
// from the main goroutine.
func Run(session *host.Session, scale int) error {
	var err error
	pixelgl.Run(func() {
		err = run(session, scale)
	})
	return err
}

func run(session *host.Session, scale int) error {
	size := float64(console.ScreenSize * scale)
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, size, size),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	defer win.Destroy()

	canvas := pixelgl.NewCanvas(pixel.R(0, 0, console.ScreenSize, console.ScreenSize))
	img := image.NewRGBA(image.Rect(0, 0, console.ScreenSize, console.ScreenSize))
	pixels := make([]uint8, len(img.Pix))

	var (
		frames = 0
		second = time.Tick(time.Second)
		tick   = time.NewTicker(time.Second / game.FrameRate)
	)
	defer tick.Stop()

	for !win.Closed() {
		x, y := mousePosition(win, float64(scale))
		session.Step(x, y, mouseButtons(win))

		session.Screen().DrawInto(img)
		host.FlipRows(img, pixels)
		canvas.SetPixels(pixels)

		win.Clear(colornames.Black)
		canvas.Draw(win, pixel.IM.Scaled(pixel.ZV, float64(scale)).Moved(win.Bounds().Center()))
		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		<-tick.C
	}
	return nil
}

// mousePosition converts from pixel's bottom-up window space
func mousePosition(win *pixelgl.Window, scale float64) (int16, int16) {
	pos := win.MousePosition()
	return host.ToConsole(pos.X, win.Bounds().H()-pos.Y, scale)
}

func mouseButtons(win *pixelgl.Window) uint8 {
	var buttons uint8
	if win.Pressed(pixelgl.MouseButtonLeft) {
		buttons |= console.MouseLeft
	}
	if win.Pressed(pixelgl.MouseButtonRight) {
		buttons |= console.MouseRight
	}
	if win.Pressed(pixelgl.MouseButtonMiddle) {
		buttons |= console.MouseMiddle
	}
	return buttons
}
