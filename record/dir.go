package record

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/they4kman/tinysweep/game"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dir writes each snapshot as a YAML file named after the time the game
// ended and its outcome
type Dir struct {
	Path string

	now func() time.Time
}

func NewDir(path string) *Dir {
	return &Dir{Path: path, now: time.Now}
}

func (dir *Dir) Record(snapshot game.Snapshot) error {
	stat, err := os.Stat(dir.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrap(err, "checking snapshots directory")
		}
		if err := os.MkdirAll(dir.Path, 0777); err != nil {
			return errors.Wrap(err, "creating snapshots directory")
		}
	} else if !stat.Mode().IsDir() {
		return fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir.Path)
	}

	now := time.Now
	if dir.now != nil {
		now = dir.now
	}
	filename := Filename(&snapshot, now())

	file, err := createUnique(filepath.Join(dir.Path, filename))
	if err != nil {
		return errors.Wrap(err, "creating snapshot file")
	}
	defer file.Close()

	if _, err := file.WriteString(snapshot.Serialize()); err != nil {
		return errors.Wrapf(err, "writing snapshot %s", file.Name())
	}
	return nil
}

// Filename is the timestamp followed by win, loss or other
func Filename(snapshot *game.Snapshot, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	filenameBuilder.WriteString(snapshot.Outcome())
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

// createUnique creates path, or path with a numeric suffix when it is taken
func createUnique(path string) (*os.File, error) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	candidate := path
	for i := 2; ; i++ {
		file, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if !os.IsExist(err) {
			return file, err
		}
		candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
	}
}
