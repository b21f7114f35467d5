package game

import (
	"fmt"
	"gopkg.in/yaml.v2"
	"image"
	"strconv"
	"strings"
)

// Snapshot is the final state of a finished game
type Snapshot struct {
	Seed       int64      `yaml:"seed"`
	Difficulty Difficulty `yaml:"difficulty"`
	Seconds    int        `yaml:"seconds"`
	Board      string     `yaml:"board,flow"`
}

func NewSnapshot(field *Minefield, mines Mines, difficulty Difficulty, timer Timer, seed int64) Snapshot {
	rows := make([]string, field.Height())
	for y := range rows {
		var row strings.Builder
		for x := 0; x < field.Width(); x++ {
			row.WriteByte(serializeTile(field.TileAt(x, y), mines.Contains(Coord{x, y})))
		}
		rows[y] = row.String()
	}

	return Snapshot{
		Seed:       seed,
		Difficulty: difficulty,
		Seconds:    timer.Seconds(),
		Board:      strings.Join(rows, "\n"),
	}
}

func serializeTile(tile Tile, isMine bool) byte {
	switch {
	case isMine:
		switch tile {
		case Uncovered:
			return '*'
		case Flagged:
			return 'F'
		default:
			return 'O'
		}
	case tile == Flagged:
		return 'f'
	case tile == Uncovered:
		return '.'
	default:
		return '#'
	}
}

func deserializeTile(c rune) (tile Tile, isMine bool, ok bool) {
	switch c {
	case '*':
		return Uncovered, true, true
	case 'F':
		return Flagged, true, true
	case 'O':
		return Covered, true, true
	case 'f':
		return Flagged, false, true
	case '.':
		return Uncovered, false, true
	case '#':
		return Covered, false, true
	default:
		return Covered, false, false
	}
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Minefield rebuilds the board stored in the snapshot
func (snapshot *Snapshot) Minefield(offset image.Point) (*Minefield, Mines, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.Board), "\n")
	height := len(rows)
	width := len(rows[0])
	if width == 0 || width > MaxWidth || height > MaxHeight {
		return nil, nil, fmt.Errorf("snapshot board is %dx%d", width, height)
	}

	field := NewMinefield(width, height, offset)
	var mines Mines
	for y, row := range rows {
		if len(row) != width {
			return nil, nil, fmt.Errorf("snapshot row %d has %d tiles, expected %d", y, len(row), width)
		}
		for x, c := range row {
			tile, isMine, ok := deserializeTile(c)
			if !ok {
				return nil, nil, fmt.Errorf("unknown tile %q at (%d, %d)", c, x, y)
			}
			field.setTile(x, y, tile)
			if isMine {
				mines = append(mines, Coord{x, y})
			}
		}
	}
	return field, mines, nil
}

// Outcome is "win", "loss" or "other", depending on how the game ended
func (snapshot *Snapshot) Outcome() string {
	field, mines, err := snapshot.Minefield(image.Point{})
	switch {
	case err != nil:
		return "other"
	case field.HasSteppedOnMine(mines):
		return "loss"
	case field.HasFoundAllMines(mines):
		return "win"
	default:
		return "other"
	}
}

// Render draws the board as text, with uncovered tiles showing their number
func (snapshot *Snapshot) Render() (string, error) {
	field, mines, err := snapshot.Minefield(image.Point{})
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for y := 0; y < field.Height(); y++ {
		for x := 0; x < field.Width(); x++ {
			tile := field.TileAt(x, y)
			isMine := mines.Contains(Coord{x, y})
			n := field.NeighbourMineCount(mines, x, y)
			if tile == Uncovered && !isMine && n > 0 {
				out.WriteString(strconv.Itoa(n))
			} else {
				out.WriteByte(serializeTile(tile, isMine))
			}
		}
		out.WriteByte('\n')
	}
	return out.String(), nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
