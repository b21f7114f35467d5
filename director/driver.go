package director

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/tinysweep/console"
	"github.com/they4kman/tinysweep/game"
)

// Driver plays a Director's moves through the pointer, exactly like a
// player would: buttons go down on one frame and come up on the next.
type Driver struct {
	director game.Director
	every    int
	log      logrus.FieldLogger

	active  bool
	wait    int
	holding bool
	x, y    int16
}

// NewDriver makes director act at most once every `every` frames
func NewDriver(director game.Director, every int, log logrus.FieldLogger) *Driver {
	if every < 1 {
		every = 1
	}
	return &Driver{director: director, every: every, log: log}
}

// Poll writes this frame's pointer input. Outside of a game the director
// rests and Poll returns false, leaving the pointer to the player.
func (d *Driver) Poll(mouse *console.Mouse, view game.View, playing bool) bool {
	if !playing {
		if d.active {
			d.director.End()
			d.active = false
			d.holding = false
		}
		return false
	}

	if !d.active {
		d.director.Init(view)
		d.active = true
		d.wait = d.every
	}

	if d.holding {
		d.holding = false
		mouse.Poll(d.x, d.y, 0)
		return true
	}

	if d.wait > 0 {
		d.wait--
		mouse.Poll(d.x, d.y, 0)
		return true
	}

	action, ok := d.director.Act(view)
	if !ok {
		mouse.Poll(d.x, d.y, 0)
		return true
	}

	x, y := view.TileCenter(action.Tile)
	d.x, d.y = int16(x), int16(y)
	d.holding = true
	d.wait = d.every
	mouse.Poll(d.x, d.y, buttonsFor(action.Kind))

	d.log.WithField("action", action).Debug("Director acting")
	return true
}

func buttonsFor(kind game.ActionKind) uint8 {
	switch kind {
	case game.Flag:
		return console.MouseRight
	case game.Chord:
		return console.MouseLeft | console.MouseRight
	default:
		return console.MouseLeft
	}
}
