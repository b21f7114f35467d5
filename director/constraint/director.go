package constraint

import (
	"fmt"
	"github.com/they4kman/tinysweep/director/random"
	"github.com/they4kman/tinysweep/game"
	"github.com/they4kman/tinysweep/util/collections"
	"math/rand"
	"sort"
	"strings"
)

// Director deduces safe tiles and mines from the numbers on the board,
// guessing only when nothing is certain
type Director struct {
	rng      *rand.Rand
	fallback *random.Director

	observations []*Observation
}

// Observation states that exactly numMines of tiles are mines
type Observation struct {
	// Uncovered tile the observation was read from; nil when derived
	origin   *game.Coord
	numMines int
	tiles    collections.Set[game.Coord]
}

func (observation Observation) String() string {
	var tilesRepr strings.Builder
	for i, c := range sortedTiles(observation.tiles) {
		if i > 0 {
			tilesRepr.WriteString(", ")
		}
		tilesRepr.WriteString(c.String())
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, tilesRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.tiles))
}

func New(rng *rand.Rand) *Director {
	return &Director{rng: rng, fallback: random.New(rng)}
}

func (director *Director) Init(view game.View) {
	director.observations = nil
	director.fallback.Init(view)
}

func (director *Director) End() {
	director.observations = nil
	director.fallback.End()
}

func (director *Director) Act(view game.View) (game.Action, bool) {
	director.observe(view)

	// Simplify/split observations
	for i := 0; i < 4; i++ {
		if !director.simplifyObservations() {
			break
		}
	}

	actors := []func() (game.Action, bool){
		director.actDeliberate,
		director.actLowestProbability,
		func() (game.Action, bool) { return director.fallback.Act(view) },
	}
	for _, actor := range actors {
		if action, ok := actor(); ok {
			return action, true
		}
	}
	return game.Action{}, false
}

// Observations lists what the director currently knows
func (director *Director) Observations() []*Observation {
	return director.observations
}

// observe reads one observation off every uncovered number that still has
// covered tiles around it
func (director *Director) observe(view game.View) {
	director.observations = nil

	for _, c := range view.Tiles() {
		n, ok := view.Number(c)
		if !ok {
			continue
		}

		origin := c
		observation := &Observation{
			origin:   &origin,
			numMines: n,
			tiles:    collections.NewSet[game.Coord](),
		}
		for _, neighbour := range view.Neighbours(c) {
			switch view.TileAt(neighbour) {
			case game.Flagged:
				observation.numMines--
			case game.Covered:
				observation.tiles.Add(neighbour)
			}
		}

		director.addObservation(observation)
	}
}

// actDeliberate makes a move that is certain: chord a satisfied number,
// uncover a tile known safe, or flag a tile known to be a mine
func (director *Director) actDeliberate() (game.Action, bool) {
	for _, observation := range director.observations {
		tiles := sortedTiles(observation.tiles)

		switch {
		case observation.numMines == 0 && observation.origin != nil:
			return game.Action{Kind: game.Chord, Tile: *observation.origin}, true
		case observation.numMines == 0:
			return game.Action{Kind: game.Click, Tile: tiles[0]}, true
		case observation.numMines == len(tiles):
			return game.Action{Kind: game.Flag, Tile: tiles[0]}, true
		}
	}
	return game.Action{}, false
}

// actLowestProbability clicks one of the observed tiles least likely to
// hold a mine
func (director *Director) actLowestProbability() (game.Action, bool) {
	tileProbabilities := make(map[game.Coord]float32)
	for _, observation := range director.observations {
		probability := observation.MineProbability()
		for c := range observation.tiles {
			if past, ok := tileProbabilities[c]; !ok || probability > past {
				// A tile is as dangerous as its worst observation says
				tileProbabilities[c] = probability
			}
		}
	}
	if len(tileProbabilities) == 0 {
		return game.Action{}, false
	}

	var lowest []game.Coord
	lowestProbability := float32(2)
	for c, probability := range tileProbabilities {
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowest = []game.Coord{c}
		case probability == lowestProbability:
			lowest = append(lowest, c)
		}
	}

	sortCoords(lowest)
	return game.Action{Kind: game.Click, Tile: lowest[director.rng.Intn(len(lowest))]}, true
}

// simplifyObservations derives new observations from overlapping ones and
// reports whether any was added
func (director *Director) simplifyObservations() bool {
	added := false

	for _, observation := range director.observations {
		for _, intersecting := range director.observations {
			if intersecting == observation {
				continue
			}

			isSubset := true
			sharedTiles := collections.NewSet[game.Coord]()
			for c := range observation.tiles {
				if intersecting.tiles.Contains(c) {
					sharedTiles.Add(c)
				} else {
					isSubset = false
				}
			}
			if sharedTiles.Len() == 0 {
				continue
			}

			onlyTiles := collections.NewSet[game.Coord]()
			for c := range intersecting.tiles {
				if !sharedTiles.Contains(c) {
					onlyTiles.Add(c)
				}
			}

			if isSubset {
				// The rest of intersecting holds the mines observation doesn't
				added = director.addObservation(&Observation{
					numMines: intersecting.numMines - observation.numMines,
					tiles:    onlyTiles,
				}) || added
			} else if occluded := intersecting.numMines - observation.numMines; occluded == onlyTiles.Len() {
				// The shared tiles hold at most observation's mines, so every
				// tile only intersecting sees must be a mine
				added = director.addObservation(&Observation{
					numMines: occluded,
					tiles:    onlyTiles,
				}) || added
			}
		}
	}

	return added
}

// addObservation keeps an observation unless it is vacuous or already known
func (director *Director) addObservation(observation *Observation) bool {
	if observation.tiles.Len() == 0 {
		return false
	}

	for _, other := range director.observations {
		if sameTiles(observation.tiles, other.tiles) {
			return false
		}
	}

	director.observations = append(director.observations, observation)
	return true
}

func sameTiles(a, b collections.Set[game.Coord]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for c := range a {
		if !b.Contains(c) {
			return false
		}
	}
	return true
}

func sortedTiles(tiles collections.Set[game.Coord]) []game.Coord {
	sorted := make([]game.Coord, 0, tiles.Len())
	for c := range tiles {
		sorted = append(sorted, c)
	}
	sortCoords(sorted)
	return sorted
}

func sortCoords(coords []game.Coord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
}
