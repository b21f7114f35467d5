package game

import (
	"fmt"
	"github.com/gammazero/deque"
	"github.com/they4kman/tinysweep/util/collections"
)

// UncoverTile uncovers the tile at x, y and floods outwards from it
func (field *Minefield) UncoverTile(x, y int, mines Mines) {
	field.UncoverTiles([]Coord{{x, y}}, mines)
}

// UncoverTiles floods from every seed. Each popped covered tile is uncovered;
// when its mines are all accounted for by flags, its neighbours are queued
// too. Flagged tiles are never uncovered, and neither are mines expanded.
func (field *Minefield) UncoverTiles(seeds []Coord, mines Mines) {
	var pending deque.Deque
	queued := collections.NewSet[Coord]()

	push := func(c Coord) {
		if queued.Contains(c) {
			return
		}
		if pending.Len() >= field.NumTiles() {
			panic(fmt.Sprintf("flood worklist overflow at %d tiles", pending.Len()))
		}
		queued.Add(c)
		pending.PushBack(c)
	}

	for _, seed := range seeds {
		push(seed)
	}

	for pending.Len() > 0 {
		c := pending.PopBack().(Coord)
		queued.Remove(c)

		if field.TileAt(c.X, c.Y) != Covered {
			continue
		}
		field.setTile(c.X, c.Y, Uncovered)

		if mines.Contains(c) {
			continue
		}
		if field.NeighbourMineCount(mines, c.X, c.Y) == field.NeighbourFlagCount(c.X, c.Y) {
			for _, n := range field.Neighbours(c) {
				push(n)
			}
		}
	}
}
