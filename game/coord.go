package game

import "fmt"

// Coord addresses a tile by column and row
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// Adjacent reports whether o lies within Chebyshev distance 1 of c, c itself excluded
func (c Coord) Adjacent(o Coord) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	return c != o && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// Mines is the list of mine coordinates of a game. It is fixed once placed.
type Mines []Coord

func (mines Mines) Contains(c Coord) bool {
	for _, mine := range mines {
		if mine == c {
			return true
		}
	}
	return false
}
