package host

import "image"

// FlipRows copies img into dst with the bottom row first, the layout
// OpenGL textures expect. dst must hold all of img's pixels.
func FlipRows(img *image.RGBA, dst []uint8) {
	width := img.Rect.Dx() * 4
	height := img.Rect.Dy()
	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width]
		copy(dst[(height-1-y)*width:], src)
	}
}
