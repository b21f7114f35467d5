package console

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func countPixels(fb *Framebuffer, paletteIdx uint8) int {
	count := 0
	for y := 0; y < ScreenSize; y++ {
		for x := 0; x < ScreenSize; x++ {
			if fb.Pixel(x, y) == paletteIdx {
				count++
			}
		}
	}
	return count
}

func TestRectFillAndOutline(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetDrawColors(0x42) // fill palette 1, outline palette 3

	fb.Rect(10, 10, 4, 3)

	assert.Equal(t, uint8(3), fb.Pixel(10, 10))
	assert.Equal(t, uint8(3), fb.Pixel(13, 12))
	assert.Equal(t, uint8(1), fb.Pixel(11, 11))
	assert.Equal(t, uint8(1), fb.Pixel(12, 11))
	assert.Equal(t, uint8(0), fb.Pixel(14, 11))
	assert.Equal(t, 10, countPixels(fb, 3))
	assert.Equal(t, 2, countPixels(fb, 1))
}

func TestRectTransparentOutline(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetDrawColors(0x03)

	fb.Rect(0, 0, 3, 3)

	assert.Equal(t, 9, countPixels(fb, 2))
}

func TestRectClipsOffscreen(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetDrawColors(0x22)

	fb.Rect(-5, -5, 10, 10)
	fb.Rect(ScreenSize-2, ScreenSize-2, 10, 10)
	fb.Rect(-20, 0, 5, 5)

	assert.Equal(t, 25+4, countPixels(fb, 1))
}

func TestLines(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetDrawColors(0x4)

	fb.HLine(5, 7, 10)
	fb.VLine(2, 150, 20)

	assert.Equal(t, 20, countPixels(fb, 3))
	assert.Equal(t, uint8(3), fb.Pixel(14, 7))
	assert.Equal(t, uint8(0), fb.Pixel(15, 7))
	assert.Equal(t, uint8(3), fb.Pixel(2, 159))
}

func TestTransparentDrawColorDrawsNothing(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetDrawColors(0x0)

	fb.HLine(0, 0, 50)
	fb.Rect(0, 0, 50, 50)
	fb.Text("hello", 0, 0)

	assert.Equal(t, ScreenSize*ScreenSize, countPixels(fb, 0))
}

func TestTextDrawsGlyphs(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetDrawColors(0x4)

	fb.Text("A", 0, 0)
	glyphPixels := countPixels(fb, 3)
	assert.Greater(t, glyphPixels, 0)

	for y := LineHeight; y < ScreenSize; y++ {
		for x := 0; x < ScreenSize; x++ {
			require.Equal(t, uint8(0), fb.Pixel(x, y))
		}
	}

	fb.Text("A\nA", 40, 40)
	assert.Equal(t, glyphPixels*3, countPixels(fb, 3))
}

func TestTextBackground(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetDrawColors(0x24)

	fb.Text(" ", 0, 0)

	assert.Equal(t, 0, countPixels(fb, 3))
	assert.Greater(t, countPixels(fb, 1), 0)
}

func TestTextMetrics(t *testing.T) {
	assert.Equal(t, 5*GlyphWidth, TextWidth("hello"))
	assert.Equal(t, 6*GlyphWidth, TextWidth("ab\nlonger"))
	assert.Equal(t, 2*LineHeight, TextHeight("ab\nlonger"))
}

func TestBlitOneBPP(t *testing.T) {
	fb := NewFramebuffer()
	sprite := NewSprite(8, 2, BlitOneBPP, []byte{0b10000001, 0b01111110})

	fb.SetDrawColors(0x20) // 0 bits transparent, 1 bits palette 1
	fb.Blit(sprite, 0, 0)

	assert.Equal(t, uint8(1), fb.Pixel(0, 0))
	assert.Equal(t, uint8(0), fb.Pixel(1, 0))
	assert.Equal(t, uint8(1), fb.Pixel(7, 0))
	assert.Equal(t, uint8(0), fb.Pixel(0, 1))
	assert.Equal(t, 8, countPixels(fb, 1))

	fb.SetDrawColors(0x43)
	fb.Blit(sprite, 0, 10)
	assert.Equal(t, uint8(3), fb.Pixel(0, 10))
	assert.Equal(t, uint8(2), fb.Pixel(1, 10))
}

func TestBlitSubRegion(t *testing.T) {
	fb := NewFramebuffer()
	// 16x1 sheet: left half empty, right half full
	sprite := NewSprite(16, 1, BlitOneBPP, []byte{0x00, 0xff})

	fb.SetDrawColors(0x30)
	fb.BlitSub(sprite, 20, 20, 8, 1, 8, 0)

	assert.Equal(t, 8, countPixels(fb, 2))
	assert.Equal(t, uint8(2), fb.Pixel(20, 20))
	assert.Equal(t, uint8(2), fb.Pixel(27, 20))
}

func TestBlitTwoBPP(t *testing.T) {
	fb := NewFramebuffer()
	sprite := NewSprite(4, 1, BlitTwoBPP, []byte{0b00011011})

	fb.SetDrawColors(0x4321)
	fb.Blit(sprite, 0, 0)

	assert.Equal(t, uint8(0), fb.Pixel(0, 0))
	assert.Equal(t, uint8(1), fb.Pixel(1, 0))
	assert.Equal(t, uint8(2), fb.Pixel(2, 0))
	assert.Equal(t, uint8(3), fb.Pixel(3, 0))
}

func TestNewSpriteRejectsShortData(t *testing.T) {
	assert.Panics(t, func() {
		NewSprite(8, 8, BlitOneBPP, make([]byte, 7))
	})
}

func TestImageUsesPalette(t *testing.T) {
	fb := NewFramebuffer()
	palette := Palettes["rustic"]
	fb.SetPalette(palette)
	fb.SetDrawColors(0x4)
	fb.HLine(0, 0, 1)

	img := fb.Image()

	assert.Equal(t, palette[3], img.RGBAAt(0, 0))
	assert.Equal(t, palette[0], img.RGBAAt(1, 0))
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetDrawColors(0x44)
	fb.Rect(0, 0, ScreenSize, ScreenSize)

	fb.Clear()

	assert.Equal(t, ScreenSize*ScreenSize, countPixels(fb, 0))
}
