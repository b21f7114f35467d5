package state

import (
	"fmt"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
)

const (
	menuEntryX      = 3
	menuEntryY      = 16
	menuEntryWidth  = console.ScreenSize - 6
	menuEntryHeight = 14
	menuEntryStep   = 16

	highScoresY = 84
)

type menuEntry struct {
	label string
	// nil for the instructions entry
	difficulty *game.Difficulty
}

var menuEntries = func() []menuEntry {
	entries := make([]menuEntry, 0, len(game.Difficulties)+1)
	for i := range game.Difficulties {
		d := game.Difficulties[i]
		entries = append(entries, menuEntry{
			label:      fmt.Sprintf("%s game", d),
			difficulty: &d,
		})
	}
	return append(entries, menuEntry{label: "Instructions"})
}()

type MainMenu struct {
	sealed

	scores game.HighScores
}

func NewMainMenu(ctx *Context) *MainMenu {
	return &MainMenu{scores: game.LoadHighScores(ctx.Disk, ctx.Log)}
}

func (s *MainMenu) Name() string {
	return "MainMenu"
}

func menuEntryPosition(index int) (int, int) {
	return menuEntryX, menuEntryY + index*menuEntryStep
}

// menuEntryAt returns the entry under the pointer, or -1
func menuEntryAt(px, py int) int {
	for i := range menuEntries {
		x, y := menuEntryPosition(i)
		if inside(px, py, x, y, menuEntryWidth, menuEntryHeight) {
			return i
		}
	}
	return -1
}

func (s *MainMenu) Draw(ctx *Context, active bool) {
	ctx.usePalette(game.PhaseMenu)
	screen := ctx.Screen

	screen.SetDrawColors(0x02)
	drawCentered(screen, "MINESWEEPER", 1)

	highlighted := -1
	if active {
		mx, my := ctx.Mouse.Coordinates()
		highlighted = menuEntryAt(int(mx), int(my))
	}

	for i, entry := range menuEntries {
		x, y := menuEntryPosition(i)
		if i == highlighted {
			screen.SetDrawColors(0x02)
		} else {
			screen.SetDrawColors(0x01)
		}
		screen.Rect(x, y, menuEntryWidth, menuEntryHeight)

		if i == highlighted {
			screen.SetDrawColors(0x01)
		} else {
			screen.SetDrawColors(0x03)
		}
		screen.Text(entry.label, x+3, y+1)
	}

	screen.SetDrawColors(0x02)
	screen.Text("HIGH SCORES", 4, highScoresY)
	screen.SetDrawColors(0x03)
	for i, d := range game.Difficulties {
		line := fmt.Sprintf("%-7s -", d)
		if seconds, ok := s.scores.Get(d); ok {
			line = fmt.Sprintf("%-7s %ds", d, seconds)
		}
		screen.Text(line, 4, highScoresY+14+i*console.LineHeight)
	}
}

func (s *MainMenu) Update(ctx *Context) Transition {
	if !ctx.Mouse.LeftClicked() {
		return Replace(s)
	}

	mx, my := ctx.Mouse.Coordinates()
	index := menuEntryAt(int(mx), int(my))
	if index < 0 {
		return Replace(s)
	}

	if d := menuEntries[index].difficulty; d != nil {
		return Replace(NewPreGame(ctx, *d))
	}
	return Push(s, NewInstructions())
}
