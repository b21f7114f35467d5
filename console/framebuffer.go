package console

import (
	"image"
	"image/color"
)

const (
	ScreenSize = 160

	// Draw-colour register value after power on
	DefaultDrawColors uint16 = 0x1203
)

// Framebuffer is the console screen: 160x160 pixels, 2 bits per pixel,
// four pixels packed in each byte with the leftmost pixel in the lowest bits.
//
// Primitives take their colours from the draw-colour register. Each of its
// four nibbles selects a palette entry (1-4) or transparency (0); nibble 0
// is "draw colour 1".
type Framebuffer struct {
	pixels     [ScreenSize * ScreenSize / 4]byte
	drawColors uint16
	palette    Palette
}

func NewFramebuffer() *Framebuffer {
	return &Framebuffer{
		drawColors: DefaultDrawColors,
		palette:    Palettes[DefaultPaletteName],
	}
}

func (fb *Framebuffer) DrawColors() uint16 {
	return fb.drawColors
}

func (fb *Framebuffer) SetDrawColors(drawColors uint16) {
	fb.drawColors = drawColors
}

func (fb *Framebuffer) Palette() Palette {
	return fb.palette
}

func (fb *Framebuffer) SetPalette(palette Palette) {
	fb.palette = palette
}

// Clear fills the whole screen with palette entry 0
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = 0
	}
}

// Pixel returns the palette index (0-3) at x, y
func (fb *Framebuffer) Pixel(x, y int) uint8 {
	if !onScreen(x, y) {
		return 0
	}
	idx := y*ScreenSize + x
	shift := uint(idx&3) * 2
	return (fb.pixels[idx>>2] >> shift) & 0b11
}

func (fb *Framebuffer) setPixel(x, y int, paletteIdx uint8) {
	if !onScreen(x, y) {
		return
	}
	idx := y*ScreenSize + x
	shift := uint(idx&3) * 2
	mask := byte(0b11 << shift)
	fb.pixels[idx>>2] = (fb.pixels[idx>>2] &^ mask) | (paletteIdx&0b11)<<shift
}

// drawColor resolves draw colour n (0-based) to a palette index. The second
// return value is false when the draw colour is transparent.
func (fb *Framebuffer) drawColor(n uint) (uint8, bool) {
	dc := (fb.drawColors >> (4 * n)) & 0xf
	if dc == 0 {
		return 0, false
	}
	return uint8(dc-1) & 0b11, true
}

// Rect draws a rectangle filled with draw colour 1 and outlined with draw
// colour 2
func (fb *Framebuffer) Rect(x, y int, width, height uint) {
	if width == 0 || height == 0 {
		return
	}

	fill, hasFill := fb.drawColor(0)
	stroke, hasStroke := fb.drawColor(1)

	x1 := x + int(width) - 1
	y1 := y + int(height) - 1

	for py := clamp(y, 0, ScreenSize); py <= clamp(y1, -1, ScreenSize-1); py++ {
		for px := clamp(x, 0, ScreenSize); px <= clamp(x1, -1, ScreenSize-1); px++ {
			edge := px == x || px == x1 || py == y || py == y1
			switch {
			case edge && hasStroke:
				fb.setPixel(px, py, stroke)
			case hasFill:
				fb.setPixel(px, py, fill)
			}
		}
	}
}

// HLine draws a horizontal line with draw colour 1
func (fb *Framebuffer) HLine(x, y int, length uint) {
	c, ok := fb.drawColor(0)
	if !ok || y < 0 || y >= ScreenSize {
		return
	}
	for px := clamp(x, 0, ScreenSize); px < clamp(x+int(length), 0, ScreenSize); px++ {
		fb.setPixel(px, y, c)
	}
}

// VLine draws a vertical line with draw colour 1
func (fb *Framebuffer) VLine(x, y int, length uint) {
	c, ok := fb.drawColor(0)
	if !ok || x < 0 || x >= ScreenSize {
		return
	}
	for py := clamp(y, 0, ScreenSize); py < clamp(y+int(length), 0, ScreenSize); py++ {
		fb.setPixel(x, py, c)
	}
}

// Image renders the framebuffer through the current palette
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ScreenSize, ScreenSize))
	fb.DrawInto(img)
	return img
}

// DrawInto renders the framebuffer into an existing ScreenSize x ScreenSize
// image, avoiding a fresh allocation every frame
func (fb *Framebuffer) DrawInto(img *image.RGBA) {
	for y := 0; y < ScreenSize; y++ {
		for x := 0; x < ScreenSize; x++ {
			c := fb.palette[fb.Pixel(x, y)]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
}

func onScreen(x, y int) bool {
	return x >= 0 && y >= 0 && x < ScreenSize && y < ScreenSize
}
