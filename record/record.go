// Package record stores the final snapshots of finished games.
package record

import (
	"github.com/they4kman/tinysweep/game"
)

type Recorder interface {
	Record(snapshot game.Snapshot) error
}

// Multi hands each snapshot to every recorder, reporting the first failure
type Multi []Recorder

func (multi Multi) Record(snapshot game.Snapshot) error {
	var first error
	for _, recorder := range multi {
		if err := recorder.Record(snapshot); err != nil && first == nil {
			first = err
		}
	}
	return first
}
