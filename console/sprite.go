package console

import "fmt"

type BlitFlags uint8

const (
	BlitOneBPP BlitFlags = iota
	BlitTwoBPP
)

// Sprite is a packed bitmap, rows stored left to right, most significant
// bits first
type Sprite struct {
	Width, Height int
	Flags         BlitFlags
	Data          []byte
}

// NewSprite checks that data is large enough for the sprite's size
func NewSprite(width, height int, flags BlitFlags, data []byte) Sprite {
	bits := width * height
	if flags == BlitTwoBPP {
		bits *= 2
	}
	if len(data)*8 < bits {
		panic(fmt.Sprintf("sprite data too short: %d bytes for %dx%d", len(data), width, height))
	}
	return Sprite{Width: width, Height: height, Flags: flags, Data: data}
}

func (s Sprite) value(sx, sy int) uint16 {
	n := sy*s.Width + sx
	if s.Flags == BlitTwoBPP {
		bit := n * 2
		return uint16(s.Data[bit>>3]>>(6-uint(bit&7))) & 0b11
	}
	return uint16(s.Data[n>>3]>>(7-uint(n&7))) & 0b1
}

// Blit draws the whole sprite at x, y
func (fb *Framebuffer) Blit(sprite Sprite, x, y int) {
	fb.BlitSub(sprite, x, y, sprite.Width, sprite.Height, 0, 0)
}

// BlitSub draws the width x height region of sprite starting at srcX, srcY.
// A pixel value v is drawn with draw colour v+1; transparent draw colours
// leave the screen untouched.
func (fb *Framebuffer) BlitSub(sprite Sprite, x, y, width, height, srcX, srcY int) {
	for dy := 0; dy < height; dy++ {
		sy := srcY + dy
		if sy < 0 || sy >= sprite.Height {
			continue
		}
		for dx := 0; dx < width; dx++ {
			sx := srcX + dx
			if sx < 0 || sx >= sprite.Width {
				continue
			}
			if c, ok := fb.drawColor(uint(sprite.value(sx, sy))); ok {
				fb.setPixel(x+dx, y+dy, c)
			}
		}
	}
}
