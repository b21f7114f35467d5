package game

import "github.com/they4kman/tinysweep/console"

const (
	glyphSize = 8

	glyphMine = 9
	glyphFlag = 10
)

// 8x8 glyphs: index 0 is blank, 1-8 are digits, then the mine and the flag
var glyphs = [...][glyphSize]byte{
	{},
	{
		0b00011000,
		0b00111000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00011000,
		0b00111100,
		0b00000000,
	},
	{
		0b00111100,
		0b01100110,
		0b00000110,
		0b00001100,
		0b00110000,
		0b01100000,
		0b01111110,
		0b00000000,
	},
	{
		0b00111100,
		0b01100110,
		0b00000110,
		0b00011100,
		0b00000110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	{
		0b00001100,
		0b00011100,
		0b00101100,
		0b01001100,
		0b01111110,
		0b00001100,
		0b00001100,
		0b00000000,
	},
	{
		0b01111110,
		0b01100000,
		0b01111100,
		0b00000110,
		0b00000110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	{
		0b00111100,
		0b01100000,
		0b01111100,
		0b01100110,
		0b01100110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	{
		0b01111110,
		0b00000110,
		0b00001100,
		0b00011000,
		0b00110000,
		0b00110000,
		0b00110000,
		0b00000000,
	},
	{
		0b00111100,
		0b01100110,
		0b01100110,
		0b00111100,
		0b01100110,
		0b01100110,
		0b00111100,
		0b00000000,
	},
	{
		0b00010000,
		0b01010100,
		0b00111000,
		0b11111110,
		0b00111000,
		0b01010100,
		0b00010000,
		0b00000000,
	},
	{
		0b00110000,
		0b00111100,
		0b00111110,
		0b00111100,
		0b00110000,
		0b00100000,
		0b00100000,
		0b01110000,
	},
}

// GlyphSheet lays the glyphs out side by side in a single 1BPP sprite
var GlyphSheet = buildGlyphSheet()

func buildGlyphSheet() console.Sprite {
	data := make([]byte, 0, len(glyphs)*glyphSize)
	for row := 0; row < glyphSize; row++ {
		for _, glyph := range glyphs {
			data = append(data, glyph[row])
		}
	}
	return console.NewSprite(len(glyphs)*glyphSize, glyphSize, console.BlitOneBPP, data)
}
