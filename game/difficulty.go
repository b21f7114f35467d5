package game

import (
	"fmt"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties in menu order
var Difficulties = []Difficulty{Easy, Medium, Hard}

var difficultyNames = map[Difficulty]string{
	Easy:   "Easy",
	Medium: "Medium",
	Hard:   "Hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// MinesCount is the stock number of mines for the difficulty
func (d Difficulty) MinesCount() int {
	switch d {
	case Easy:
		return 10
	case Medium:
		return 30
	case Hard:
		return 50
	default:
		panic(fmt.Sprintf("unknown difficulty %d", int(d)))
	}
}

// ParseDifficulty accepts the difficulty names in any letter case
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Difficulty) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
