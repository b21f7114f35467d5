package game

// View is a read-only window onto a game in progress, showing only what a
// player could see on screen
type View struct {
	field *Minefield
	mines Mines
}

func NewView(field *Minefield, mines Mines) View {
	return View{field: field, mines: mines}
}

func (view View) Width() int {
	return view.field.Width()
}

func (view View) Height() int {
	return view.field.Height()
}

func (view View) TileAt(c Coord) Tile {
	return view.field.TileAt(c.X, c.Y)
}

func (view View) Neighbours(c Coord) []Coord {
	return view.field.Neighbours(c)
}

// Number is the count shown on an uncovered tile; ok is false while the
// tile is still hidden
func (view View) Number(c Coord) (n int, ok bool) {
	if view.TileAt(c) != Uncovered {
		return 0, false
	}
	return view.field.NeighbourMineCount(view.mines, c.X, c.Y), true
}

// MinesLeft is the mine count minus the flags placed, as shown in the header
func (view View) MinesLeft() int {
	return len(view.mines) - view.field.CountFlagged()
}

// Tiles lists every coordinate in row order
func (view View) Tiles() []Coord {
	tiles := make([]Coord, 0, view.field.NumTiles())
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			tiles = append(tiles, Coord{x, y})
		}
	}
	return tiles
}

// CoveredTiles lists the tiles that are neither uncovered nor flagged
func (view View) CoveredTiles() []Coord {
	var covered []Coord
	for _, c := range view.Tiles() {
		if view.TileAt(c) == Covered {
			covered = append(covered, c)
		}
	}
	return covered
}

// TileCenter is the screen position to point at to act on c
func (view View) TileCenter(c Coord) (int, int) {
	return view.field.TileCenter(c)
}
