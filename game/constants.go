package game

const (
	// Size of a tile on screen, in pixels
	TileSize = 10

	MaxWidth  = 16
	MaxHeight = 16

	// Frames per second of the console
	FrameRate = 60
)

type Tile int

const (
	Covered Tile = iota
	Uncovered
	Flagged
)

func (tile Tile) String() string {
	switch tile {
	case Covered:
		return "covered"
	case Uncovered:
		return "uncovered"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Moore neighbourhood, in the order neighbours are pushed while flooding
var neighbourOffsets = [8]Coord{
	{1, 1},
	{1, -1},
	{-1, 1},
	{-1, -1},
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
}
