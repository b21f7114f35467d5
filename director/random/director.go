package random

import (
	"github.com/they4kman/tinysweep/game"
	"math/rand"
)

// Director clicks covered tiles in a random order
type Director struct {
	rng   *rand.Rand
	order []game.Coord
}

func New(rng *rand.Rand) *Director {
	return &Director{rng: rng}
}

func (director *Director) Init(view game.View) {
	director.order = view.Tiles()

	director.rng.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act(view game.View) (game.Action, bool) {
	if director.order == nil {
		director.Init(view)
	}

	for _, c := range director.order {
		if view.TileAt(c) == game.Covered {
			return game.Action{Kind: game.Click, Tile: c}, true
		}
	}
	return game.Action{}, false
}

func (director *Director) End() {
	director.order = nil
}
