package game

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/they4kman/tinysweep/console"
	"gopkg.in/yaml.v2"
	"image"
	"os"
	"strings"
)

type FlagMode string

const (
	// Right click flags a covered tile and unflags a flagged one
	FlagToggle FlagMode = "toggle"
	// Right click only ever flags
	FlagOnly FlagMode = "flag"
)

// Screen phases that each get their own palette
const (
	PhaseMenu = "menu"
	PhaseGame = "game"
	PhaseWon  = "won"
	PhaseLost = "lost"
)

var Phases = []string{PhaseMenu, PhaseGame, PhaseWon, PhaseLost}

var (
	DirectorNames = []string{"none", "random", "constraint"}
	BackendNames  = []string{"pixel", "ebiten"}
)

type Config struct {
	// Minefield size, in tiles
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Screen position of the minefield's top-left corner, in pixels
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`

	// Seed for mine placement; 0 derives one from the frame counter
	Seed int64 `yaml:"seed"`

	FlagMode FlagMode `yaml:"flag_mode"`
	// Frames during which the trailing release of a chord is ignored
	ChordFrames int `yaml:"chord_frames"`

	// Overrides of the number of mines, by lowercase difficulty name
	MineCounts map[string]int `yaml:"mine_counts"`

	// Palette name to use, by phase
	Palettes map[string]string `yaml:"palettes"`
	// Extra palettes, as four CSS colours each
	CustomPalettes map[string][]string `yaml:"custom_palettes"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"snapshots_dir"`
	// Whether to copy final snapshots to the clipboard
	Clipboard bool `yaml:"clipboard"`
	// File backing the console disk; empty keeps it in memory
	DiskPath string `yaml:"disk"`

	// Computer player, one of DirectorNames
	Director string `yaml:"director"`
	// Frames between two director moves
	DirectorEvery int `yaml:"director_every"`

	// Window pixels per console pixel
	Scale int `yaml:"scale"`
	// Window back-end, one of BackendNames
	Backend string `yaml:"backend"`
}

func NewConfig() Config {
	return Config{
		Width:       15,
		Height:      13,
		OffsetX:     5,
		OffsetY:     20,
		FlagMode:    FlagToggle,
		ChordFrames: 6,
		MineCounts:  map[string]int{},
		Palettes: map[string]string{
			PhaseMenu: console.DefaultPaletteName,
			PhaseGame: console.DefaultPaletteName,
			PhaseWon:  "icecream",
			PhaseLost: "rustic",
		},
		CustomPalettes: map[string][]string{},
		Director:       "none",
		DirectorEvery:  20,
		Scale:          4,
		Backend:        "pixel",
	}
}

// LoadConfig reads a YAML file over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	config := NewConfig()
	// Strict decoding refuses keys already present in a map
	defaultPalettes := config.Palettes
	config.Palettes = nil

	data, err := os.ReadFile(path)
	if err != nil {
		return NewConfig(), errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return NewConfig(), errors.Wrapf(err, "parsing config %s", path)
	}

	if config.Palettes == nil {
		config.Palettes = map[string]string{}
	}
	for phase, name := range defaultPalettes {
		if _, ok := config.Palettes[phase]; !ok {
			config.Palettes[phase] = name
		}
	}
	return config, nil
}

func (config Config) Offset() image.Point {
	return image.Pt(config.OffsetX, config.OffsetY)
}

// MinesCount is the number of mines for d, honouring overrides
func (config Config) MinesCount(d Difficulty) int {
	if count, ok := config.MineCounts[strings.ToLower(d.String())]; ok {
		return count
	}
	return d.MinesCount()
}

// Palette resolves the palette for a phase, custom palettes first
func (config Config) Palette(phase string) console.Palette {
	name, ok := config.Palettes[phase]
	if !ok {
		name = console.DefaultPaletteName
	}
	if colors, ok := config.CustomPalettes[name]; ok {
		if palette, err := parseCustomPalette(colors); err == nil {
			return palette
		}
	}
	if palette, ok := console.LookupPalette(name); ok {
		return palette
	}
	return console.Palettes[console.DefaultPaletteName]
}

func (config Config) Validate() error {
	if config.Width < 1 || config.Width > MaxWidth {
		return fmt.Errorf("width %d outside 1..%d", config.Width, MaxWidth)
	}
	if config.Height < 1 || config.Height > MaxHeight {
		return fmt.Errorf("height %d outside 1..%d", config.Height, MaxHeight)
	}
	if config.OffsetX < 0 || config.OffsetX+config.Width*TileSize > console.ScreenSize {
		return fmt.Errorf("minefield does not fit horizontally at x offset %d", config.OffsetX)
	}
	if config.OffsetY < 0 || config.OffsetY+config.Height*TileSize > console.ScreenSize {
		return fmt.Errorf("minefield does not fit vertically at y offset %d", config.OffsetY)
	}

	for name := range config.MineCounts {
		if _, err := ParseDifficulty(name); err != nil {
			return errors.Wrap(err, "mine_counts")
		}
	}
	for _, d := range Difficulties {
		// One tile must stay free for the first click
		if count := config.MinesCount(d); count < 0 || count >= config.Width*config.Height {
			return fmt.Errorf("%d mines do not fit a %dx%d minefield (%s)", count, config.Width, config.Height, d)
		}
	}

	switch config.FlagMode {
	case FlagToggle, FlagOnly:
	default:
		return fmt.Errorf("invalid flag mode %q", config.FlagMode)
	}
	if config.ChordFrames < 0 {
		return fmt.Errorf("chord frames must not be negative")
	}

	for name, colors := range config.CustomPalettes {
		if _, err := parseCustomPalette(colors); err != nil {
			return errors.Wrapf(err, "custom palette %s", name)
		}
	}
	for phase, name := range config.Palettes {
		if !contains(Phases, phase) {
			return fmt.Errorf("unknown palette phase %q", phase)
		}
		if _, custom := config.CustomPalettes[name]; custom {
			continue
		}
		if _, ok := console.LookupPalette(name); !ok {
			return fmt.Errorf("unknown palette %q for %s", name, phase)
		}
	}

	if !contains(DirectorNames, config.Director) {
		return fmt.Errorf("invalid director %q", config.Director)
	}
	if config.DirectorEvery < 1 {
		return fmt.Errorf("director must wait at least one frame between moves")
	}
	if config.Scale < 1 || config.Scale > 8 {
		return fmt.Errorf("scale %d outside 1..8", config.Scale)
	}
	if !contains(BackendNames, config.Backend) {
		return fmt.Errorf("invalid backend %q", config.Backend)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func parseCustomPalette(colors []string) (console.Palette, error) {
	var palette [4]string
	if len(colors) != len(palette) {
		return console.Palette{}, fmt.Errorf("expected %d colours, got %d", len(palette), len(colors))
	}
	copy(palette[:], colors)
	return console.ParsePalette(palette)
}
