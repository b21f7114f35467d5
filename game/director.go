package game

import "fmt"

type ActionKind int

const (
	// Uncover a covered tile
	Click ActionKind = iota
	// Flag a covered tile
	Flag
	// Uncover the neighbours of a satisfied number
	Chord
)

func (kind ActionKind) String() string {
	switch kind {
	case Click:
		return "click"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(kind))
	}
}

type Action struct {
	Kind ActionKind
	Tile Coord
}

func (action Action) String() string {
	return fmt.Sprintf("%s %s", action.Kind, action.Tile)
}

// Director plays the game in place of a human
type Director interface {
	/**
	 * Prepare for a new game
	 */
	Init(view View)

	/**
	 * Decide on the next move; false when there is nothing left to do
	 */
	Act(view View) (Action, bool)

	/**
	 * Stop acting
	 */
	End()
}
