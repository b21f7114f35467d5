package state

import (
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
	"strings"
)

const (
	instructionsX    = 10
	instructionsY    = 10
	instructionsSize = console.ScreenSize - 4 - 2*instructionsX
)

// An instructions page: text at the top, an example board before and
// optionally after a move, and a closing note
type instructionsPage struct {
	text   string
	before string
	after  string
	note   string
}

var instructionsPages = []instructionsPage{
	{
		text:   "Click on a tile\nto uncover it.",
		before: "#",
		after:  "0",
	},
	{
		text:   "If it was a mine\nyou lose!",
		before: "#",
		after:  "*",
	},
	{
		text:   "Right click on a\ntile to flag it.",
		before: "#",
		after:  "f",
		note:   "Flagged tiles\ncannot be\nuncovered.",
	},
	{
		text:   "Numbers tell how\nmany mines touch\na tile, also\ndiagonally.",
		before: "1*2\n24*\n*3*",
	},
	{
		text:   "Uncovering a tile\nwhose mines are\nall flagged also\nuncovers the tiles\naround it.",
		before: "#F#\n#4F\nF#F",
		after:  "1F2\n24F\nF3F",
	},
	{
		text:   "Make sure to\nflag the correct\ntiles!",
		before: "#Of\n#4F\nF#F",
		after:  "1*f\n24F\nF3F",
	},
	{
		text:   "Left and right\nclick together on\na number to\nuncover around it.",
		before: "#F2\n#4F\nF3F",
		after:  "1F2\n24F\nF3F",
		note:   "Flag first!",
	},
	{
		text: "The goal of the\ngame is to\nuncover all\ntiles.",
		note: "Except mines ;)",
	},
}

type Instructions struct {
	sealed

	page int
}

func NewInstructions() *Instructions {
	return &Instructions{}
}

func (s *Instructions) Name() string {
	return "Instructions"
}

func (s *Instructions) Page() int {
	return s.page
}

func (s *Instructions) Draw(ctx *Context, active bool) {
	screen := ctx.Screen
	x, y := instructionsX, instructionsY

	drawBox(screen, x, y, instructionsSize, instructionsSize)

	page := instructionsPages[s.page]
	screen.SetDrawColors(0x03)
	screen.Text(page.text, x+3, y+3)

	noteY := y + 3 + console.TextHeight(page.text) + 6
	if page.before != "" {
		// Single tiles sit higher, with the result right next to them
		boardY, arrowX, afterX := y+85, x+50, x+76
		if len(page.before) == 1 {
			boardY, arrowX, afterX = y+50, x+22, x+40
		}
		boardHeight := (strings.Count(page.before, "\n") + 1) * game.TileSize

		drawTiles(screen, x+10, boardY, page.before)
		if page.after != "" {
			screen.SetDrawColors(0x03)
			screen.Text("->", arrowX, boardY+(boardHeight-console.LineHeight)/2)
			drawTiles(screen, afterX, boardY, page.after)
		}
		noteY = boardY + boardHeight + 4
	}

	if page.note != "" {
		screen.SetDrawColors(0x03)
		screen.Text(page.note, x+3, noteY)
	}
}

func (s *Instructions) Update(ctx *Context) Transition {
	if !ctx.Mouse.LeftClicked() {
		return Replace(s)
	}
	if s.page >= len(instructionsPages)-1 {
		return Pop()
	}
	return Replace(&Instructions{page: s.page + 1})
}
