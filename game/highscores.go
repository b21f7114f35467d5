package game

import (
	"encoding/binary"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/tinysweep/console"
	"math"
)

const (
	highScoreRecordSize = 3
	// HighScoresSize is the number of bytes high scores occupy on disk
	HighScoresSize = highScoreRecordSize * 3

	highScorePresent = 0xFF
)

// HighScores holds the best time in seconds for each difficulty
type HighScores struct {
	times [3]uint16
	set   [3]bool
}

// LoadHighScores reads scores from the start of the disk. A short read
// yields empty scores.
func LoadHighScores(disk console.Disk, log logrus.FieldLogger) HighScores {
	var scores HighScores

	buf := make([]byte, HighScoresSize)
	n := disk.Read(buf)
	if n < HighScoresSize {
		log.WithFields(logrus.Fields{
			"read":     n,
			"expected": HighScoresSize,
		}).Debug("High scores not found on disk")
		return scores
	}

	if err := scores.UnmarshalBinary(buf); err != nil {
		log.WithError(err).Debug("Unreadable high scores on disk")
		return HighScores{}
	}
	return scores
}

// Save writes the scores to disk. A short write is logged and otherwise ignored.
func (scores HighScores) Save(disk console.Disk, log logrus.FieldLogger) {
	buf := scores.bytes()
	if n := disk.Write(buf); n < len(buf) {
		log.WithFields(logrus.Fields{
			"written":  n,
			"expected": len(buf),
		}).Warn("Could not save high scores")
	}
}

func (scores HighScores) Get(d Difficulty) (uint16, bool) {
	return scores.times[d], scores.set[d]
}

// Set records seconds for d unless a better time is already held. Times
// beyond what the disk layout can represent are clamped.
func (scores *HighScores) Set(d Difficulty, seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > math.MaxUint16 {
		seconds = math.MaxUint16
	}

	t := uint16(seconds)
	if !scores.set[d] || t < scores.times[d] {
		scores.times[d] = t
		scores.set[d] = true
	}
}

// MarshalBinary encodes each difficulty as a presence byte followed by the
// time as a little-endian uint16
func (scores HighScores) MarshalBinary() ([]byte, error) {
	return scores.bytes(), nil
}

func (scores HighScores) bytes() []byte {
	buf := make([]byte, HighScoresSize)
	for i := range scores.times {
		record := buf[i*highScoreRecordSize:]
		if scores.set[i] {
			record[0] = highScorePresent
			binary.LittleEndian.PutUint16(record[1:], scores.times[i])
		}
	}
	return buf
}

// UnmarshalBinary decodes the layout written by MarshalBinary. Any non-zero
// presence byte counts as present.
func (scores *HighScores) UnmarshalBinary(data []byte) error {
	if len(data) < HighScoresSize {
		return fmt.Errorf("high scores need %d bytes, got %d", HighScoresSize, len(data))
	}

	*scores = HighScores{}
	for i := range scores.times {
		record := data[i*highScoreRecordSize:]
		if record[0] != 0 {
			scores.set[i] = true
			scores.times[i] = binary.LittleEndian.Uint16(record[1:])
		}
	}
	return nil
}
