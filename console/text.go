package console

import (
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"strings"
)

var face = basicfont.Face7x13

var (
	// GlyphWidth is the horizontal advance of every character
	GlyphWidth = face.Advance
	// LineHeight is the vertical distance between two lines of text
	LineHeight = face.Height
)

// Text draws s with its top-left corner at x, y. Glyph pixels use draw
// colour 1 and the rest of each character cell uses draw colour 2. A newline
// moves to the next line, back at x.
func (fb *Framebuffer) Text(s string, x, y int) {
	fg, hasFg := fb.drawColor(0)
	bg, hasBg := fb.drawColor(1)

	for lineIdx, line := range strings.Split(s, "\n") {
		top := y + lineIdx*LineHeight
		dot := fixed.P(x, top+face.Ascent)

		for _, r := range line {
			dr, mask, maskp, advance, ok := face.Glyph(dot, r)
			if !ok {
				dr, mask, maskp, advance, _ = face.Glyph(dot, '?')
			}

			for py := dr.Min.Y; py < dr.Max.Y; py++ {
				for px := dr.Min.X; px < dr.Max.X; px++ {
					_, _, _, a := mask.At(maskp.X+px-dr.Min.X, maskp.Y+py-dr.Min.Y).RGBA()
					switch {
					case a > 0 && hasFg:
						fb.setPixel(px, py, fg)
					case a == 0 && hasBg:
						fb.setPixel(px, py, bg)
					}
				}
			}

			dot.X += advance
		}
	}
}

// TextWidth returns the width in pixels of the longest line of s
func TextWidth(s string) int {
	longest := 0
	for _, line := range strings.Split(s, "\n") {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	return longest * GlyphWidth
}

// TextHeight returns the height in pixels of s
func TextHeight(s string) int {
	return (strings.Count(s, "\n") + 1) * LineHeight
}
