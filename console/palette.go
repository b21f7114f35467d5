package console

import (
	css "github.com/mazznoer/csscolorparser"
	"github.com/pkg/errors"
	"image/color"
	"math"
	"sort"
)

// Palette holds the four screen colours; palette index 0 is the background
type Palette [4]color.RGBA

const DefaultPaletteName = "default"

// Four-colour palettes, most of them from lospec.com
var paletteSources = map[string][4]string{
	DefaultPaletteName: {"#def7cd", "#86bf6b", "#306950", "#071821"},
	"gold":             {"#cfab51", "#9d654c", "#4d222c", "#210b1b"},
	"icecream":         {"#fff6d3", "#f9a875", "#eb6b6f", "#7c3f58"},
	"hollow":           {"#fafbf6", "#c6b7be", "#565a75", "#0f0f1b"},
	"wheat":            {"#fffad6", "#e6c12b", "#7a3921", "#240024"},
	"rustic":           {"#edb4a1", "#a96868", "#764462", "#2c2137"},
	"dustbyte":         {"#f5e9bf", "#aa644d", "#788374", "#372a39"},
}

var Palettes = map[string]Palette{}

func init() {
	for name, colors := range paletteSources {
		if err := RegisterPalette(name, colors); err != nil {
			panic(err)
		}
	}
}

// ParsePalette parses four CSS colour strings
func ParsePalette(colors [4]string) (Palette, error) {
	var palette Palette
	for i, str := range colors {
		c, err := css.Parse(str)
		if err != nil {
			return palette, errors.Wrapf(err, "palette colour %d", i+1)
		}
		palette[i] = color.RGBA{
			R: uint8(math.Round(255 * c.R)),
			G: uint8(math.Round(255 * c.G)),
			B: uint8(math.Round(255 * c.B)),
			A: 0xff,
		}
	}
	return palette, nil
}

// RegisterPalette parses colors and makes them available under name,
// replacing any palette already registered with that name
func RegisterPalette(name string, colors [4]string) error {
	palette, err := ParsePalette(colors)
	if err != nil {
		return errors.Wrapf(err, "palette %q", name)
	}
	Palettes[name] = palette
	return nil
}

func LookupPalette(name string) (Palette, bool) {
	palette, ok := Palettes[name]
	return palette, ok
}

// PaletteNames lists registered palettes in alphabetical order
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
