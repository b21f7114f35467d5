package state

import (
	"fmt"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
	"strings"
)

// drawBox draws a filled box with a drop shadow
func drawBox(screen game.Screen, x, y, width, height int) {
	screen.SetDrawColors(0x44)
	screen.Rect(x+3, y+3, uint(width), uint(height))
	screen.SetDrawColors(0x21)
	screen.Rect(x, y, uint(width), uint(height))
}

// drawMessageBox centres a box horizontally around text
func drawMessageBox(screen game.Screen, text string, x, y int) {
	width := console.ScreenSize - 2*x
	height := console.TextHeight(text) + 8

	drawBox(screen, x, y, width, height)

	screen.SetDrawColors(0x03)
	screen.Text(text, x+4, y+4)
}

// drawHeader shows the elapsed time on the left and the mines left on the right
func drawHeader(screen game.Screen, seconds, minesLeft int) {
	screen.SetDrawColors(0x03)
	screen.Text(fmt.Sprintf("Time:%3d", seconds), 4, 4)

	mines := fmt.Sprintf("Mines:%2d", minesLeft)
	screen.Text(mines, console.ScreenSize-4-console.TextWidth(mines), 4)
}

// drawCentered draws a single line of text centred on the screen
func drawCentered(screen game.Screen, text string, y int) {
	screen.Text(text, (console.ScreenSize-console.TextWidth(text))/2, y)
}

func drawPointer(ctx *Context) {
	x, y := ctx.Mouse.Coordinates()
	ctx.Screen.SetDrawColors(0x4)
	ctx.Screen.VLine(int(x), int(y)-1, 3)
	ctx.Screen.HLine(int(x)-1, int(y), 3)
}

// drawTiles draws a small board from rows of snapshot characters, plus
// digits for uncovered numbers
func drawTiles(screen game.Screen, x, y int, rows string) {
	for j, row := range strings.Split(rows, "\n") {
		for i, c := range row {
			tx, ty := x+i*game.TileSize, y+j*game.TileSize
			switch {
			case c >= '0' && c <= '8':
				game.Uncovered.Draw(screen, tx, ty, false, int(c-'0'))
			case c == '*':
				game.Uncovered.Draw(screen, tx, ty, true, 0)
			case c == 'F', c == 'f':
				game.Flagged.Draw(screen, tx, ty, c == 'F', 0)
			default:
				game.Covered.Draw(screen, tx, ty, c == 'O', 0)
			}
		}
	}
}

// inside reports whether px, py lies in the rectangle, edges included
func inside(px, py, x, y, width, height int) bool {
	return x <= px && px <= x+width && y <= py && py <= y+height
}
