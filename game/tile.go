package game

import "github.com/they4kman/tinysweep/console"

// Screen is the subset of the console drawing primitives the game uses
type Screen interface {
	DrawColors() uint16
	SetDrawColors(drawColors uint16)
	Rect(x, y int, width, height uint)
	HLine(x, y int, length uint)
	VLine(x, y int, length uint)
	Text(s string, x, y int)
	BlitSub(sprite console.Sprite, x, y, width, height, srcX, srcY int)
}

// Draw renders a tile with its top-left corner at x, y. isMine and
// neighbourMines only matter once the tile is uncovered.
func (tile Tile) Draw(screen Screen, x, y int, isMine bool, neighbourMines int) {
	screen.SetDrawColors(0x2)
	screen.VLine(x, y, TileSize-1)
	screen.HLine(x, y, TileSize-1)

	switch tile {
	case Covered:
		drawCover(screen, x, y)
	case Uncovered:
		if isMine {
			drawGlyph(screen, x, y, glyphMine)
		} else if neighbourMines > 0 {
			drawGlyph(screen, x, y, neighbourMines)
		}
	case Flagged:
		drawCover(screen, x, y)
		drawGlyph(screen, x, y, glyphFlag)
	}
}

func drawCover(screen Screen, x, y int) {
	screen.SetDrawColors(0x3)
	screen.Rect(x+1, y+1, TileSize-2, TileSize-2)
}

func drawGlyph(screen Screen, x, y, glyph int) {
	offset := (TileSize - glyphSize) / 2
	if glyph == glyphMine {
		screen.SetDrawColors(0x1142)
	} else {
		screen.SetDrawColors(0x2240)
	}
	screen.BlitSub(GlyphSheet, x+offset, y+offset, glyphSize, glyphSize, glyph*glyphSize, 0)
}
