package game

import (
	"fmt"
	"image"
)

type Minefield struct {
	offset        image.Point // screen position of the top-left tile, in pixels
	width, height int         // in number of tiles
	tiles         []Tile
}

// NewMinefield creates a fully covered minefield. It panics when the size is
// outside 1..MaxWidth by 1..MaxHeight.
func NewMinefield(width, height int, offset image.Point) *Minefield {
	if width <= 0 || width > MaxWidth || height <= 0 || height > MaxHeight {
		panic(fmt.Sprintf("minefield size %dx%d outside 1x1..%dx%d", width, height, MaxWidth, MaxHeight))
	}
	return &Minefield{
		offset: offset,
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

func (field *Minefield) Width() int {
	return field.width
}

func (field *Minefield) Height() int {
	return field.height
}

func (field *Minefield) NumTiles() int {
	return field.width * field.height
}

func (field *Minefield) Offset() image.Point {
	return field.offset
}

func (field *Minefield) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < field.width && y < field.height
}

// TileAt returns the state of the tile at x, y. It panics when out of bounds.
func (field *Minefield) TileAt(x, y int) Tile {
	return field.tiles[field.index(x, y)]
}

func (field *Minefield) setTile(x, y int, tile Tile) {
	field.tiles[field.index(x, y)] = tile
}

func (field *Minefield) index(x, y int) int {
	if !field.InBounds(x, y) {
		panic(fmt.Sprintf("tile (%d, %d) outside %dx%d minefield", x, y, field.width, field.height))
	}
	return y*field.width + x
}

// MouseToTile maps a pointer position to the tile underneath it
func (field *Minefield) MouseToTile(px, py int) (Coord, bool) {
	px -= field.offset.X
	py -= field.offset.Y
	if px < 0 || py < 0 {
		return Coord{}, false
	}

	c := Coord{px / TileSize, py / TileSize}
	if !field.InBounds(c.X, c.Y) {
		return Coord{}, false
	}
	return c, true
}

// TileCenter returns the screen position of the middle of a tile
func (field *Minefield) TileCenter(c Coord) (int, int) {
	return field.offset.X + c.X*TileSize + TileSize/2, field.offset.Y + c.Y*TileSize + TileSize/2
}

// Neighbours returns the in-bounds tiles around c
func (field *Minefield) Neighbours(c Coord) []Coord {
	neighbours := make([]Coord, 0, len(neighbourOffsets))
	for _, offset := range neighbourOffsets {
		n := c.Add(offset)
		if field.InBounds(n.X, n.Y) {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// FlagTile flags a covered tile. Uncovered and already flagged tiles are left as is.
func (field *Minefield) FlagTile(x, y int) {
	if field.TileAt(x, y) == Covered {
		field.setTile(x, y, Flagged)
	}
}

// ToggleFlag flags a covered tile, or covers a flagged one again
func (field *Minefield) ToggleFlag(x, y int) {
	switch field.TileAt(x, y) {
	case Covered:
		field.setTile(x, y, Flagged)
	case Flagged:
		field.setTile(x, y, Covered)
	}
}

// NeighbourMineCount counts the mines around x, y
func (field *Minefield) NeighbourMineCount(mines Mines, x, y int) int {
	c := Coord{x, y}
	count := 0
	for _, mine := range mines {
		if c.Adjacent(mine) {
			count++
		}
	}
	return count
}

// NeighbourFlagCount counts the flagged tiles around x, y
func (field *Minefield) NeighbourFlagCount(x, y int) int {
	count := 0
	for _, n := range field.Neighbours(Coord{x, y}) {
		if field.TileAt(n.X, n.Y) == Flagged {
			count++
		}
	}
	return count
}

func (field *Minefield) HasSteppedOnMine(mines Mines) bool {
	for _, mine := range mines {
		if field.TileAt(mine.X, mine.Y) == Uncovered {
			return true
		}
	}
	return false
}

// HasFoundAllMines reports whether every tile that is not a mine has been uncovered
func (field *Minefield) HasFoundAllMines(mines Mines) bool {
	return field.CountUncovered()+len(mines) == field.NumTiles()
}

func (field *Minefield) CountUncovered() int {
	return field.count(Uncovered)
}

func (field *Minefield) CountFlagged() int {
	return field.count(Flagged)
}

func (field *Minefield) CountCovered() int {
	return field.count(Covered)
}

func (field *Minefield) count(state Tile) int {
	count := 0
	for _, tile := range field.tiles {
		if tile == state {
			count++
		}
	}
	return count
}

// FlagMines flags every mine that is still covered, for the end-of-game display
func (field *Minefield) FlagMines(mines Mines) {
	for _, mine := range mines {
		field.FlagTile(mine.X, mine.Y)
	}
}

func (field *Minefield) HandleLeftClick(px, py int, mines Mines) {
	if c, ok := field.MouseToTile(px, py); ok {
		field.UncoverTile(c.X, c.Y, mines)
	}
}

func (field *Minefield) HandleRightClick(px, py int) {
	if c, ok := field.MouseToTile(px, py); ok {
		field.ToggleFlag(c.X, c.Y)
	}
}

// HandleFlagOnlyClick flags the tile under the pointer without ever unflagging
func (field *Minefield) HandleFlagOnlyClick(px, py int) {
	if c, ok := field.MouseToTile(px, py); ok {
		field.FlagTile(c.X, c.Y)
	}
}

// HandleLeftAndRightClick chords the tile under the pointer: when an uncovered
// tile has as many flags around it as mines, all of its other neighbours are
// uncovered.
func (field *Minefield) HandleLeftAndRightClick(px, py int, mines Mines) {
	c, ok := field.MouseToTile(px, py)
	if !ok || field.TileAt(c.X, c.Y) != Uncovered {
		return
	}
	if field.NeighbourMineCount(mines, c.X, c.Y) != field.NeighbourFlagCount(c.X, c.Y) {
		return
	}

	var seeds []Coord
	for _, n := range field.Neighbours(c) {
		if field.TileAt(n.X, n.Y) == Covered {
			seeds = append(seeds, n)
		}
	}
	field.UncoverTiles(seeds, mines)
}

func (field *Minefield) Clone() *Minefield {
	clone := *field
	clone.tiles = append([]Tile(nil), field.tiles...)
	return &clone
}

func (field *Minefield) Draw(screen Screen, mines Mines) {
	for y := 0; y < field.height; y++ {
		for x := 0; x < field.width; x++ {
			c := Coord{x, y}
			field.TileAt(x, y).Draw(
				screen,
				field.offset.X+x*TileSize,
				field.offset.Y+y*TileSize,
				mines.Contains(c),
				field.NeighbourMineCount(mines, x, y),
			)
		}
	}
}
