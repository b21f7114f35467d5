package game

import (
	"fmt"
	"github.com/they4kman/tinysweep/util/collections"
	"math/rand"
)

// PlaceMines picks count distinct tiles of a width x height field, never
// choosing forbidden, so the first tile clicked is always safe.
func PlaceMines(rng *rand.Rand, count, width, height int, forbidden Coord) Mines {
	if count < 0 || count >= width*height {
		panic(fmt.Sprintf("cannot place %d mines on a %dx%d minefield", count, width, height))
	}

	taken := collections.NewSet(forbidden)
	mines := make(Mines, 0, count)
	for len(mines) < count {
		c := Coord{rng.Intn(width), rng.Intn(height)}
		if taken.Contains(c) {
			continue
		}
		taken.Add(c)
		mines = append(mines, c)
	}
	return mines
}
