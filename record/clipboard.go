package record

import (
	"github.com/pkg/errors"
	"github.com/they4kman/tinysweep/game"
	"golang.design/x/clipboard"
	"sync"
)

// Clipboard copies each snapshot to the system clipboard as text
type Clipboard struct {
	once sync.Once
	err  error
}

func (c *Clipboard) Record(snapshot game.Snapshot) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return errors.Wrap(c.err, "clipboard unavailable")
	}

	clipboard.Write(clipboard.FmtText, []byte(snapshot.Serialize()))
	return nil
}
