package render

import (
	"slices"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcplot/arcplot/pkg/errors"
)

// Palette maps evenly spaced sample points to colors. Sequential palettes
// blend between gradient stops in Lab space; discrete palettes cycle
// through their entries unchanged.
type Palette struct {
	Name     string
	Stops    []colorful.Color
	Discrete bool
}

// Sample returns n colors drawn at evenly spaced points across the palette,
// one per helix index. n must be at least 1.
func (p Palette) Sample(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	if p.Discrete {
		for i := range out {
			out[i] = p.Stops[i%len(p.Stops)]
		}
		return out
	}
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = p.at(t)
	}
	return out
}

// at evaluates the gradient at t in [0, 1].
func (p Palette) at(t float64) colorful.Color {
	segments := len(p.Stops) - 1
	if segments == 0 {
		return p.Stops[0]
	}
	pos := t * float64(segments)
	lo := int(pos)
	if lo >= segments {
		return p.Stops[segments]
	}
	frac := pos - float64(lo)
	if frac == 0 {
		return p.Stops[lo]
	}
	return p.Stops[lo].BlendLab(p.Stops[lo+1], frac).Clamped()
}

// DefaultPalette is used when neither flag nor config names one.
const DefaultPalette = "viridis"

var (
	paletteMu sync.RWMutex
	palettes  = builtinPalettes()
)

// LookupPalette resolves a palette by name, case-insensitively.
func LookupPalette(name string) (Palette, error) {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	if p, ok := palettes[strings.ToLower(name)]; ok {
		return p, nil
	}
	return Palette{}, errors.New(errors.ErrCodeInvalidPalette,
		"unknown palette %q (available: %s)", name, strings.Join(paletteNamesLocked(), ", "))
}

// RegisterPalette adds or replaces a palette under its lowercased name.
// Stops are given as hex strings ("#rrggbb"); at least one is required.
func RegisterPalette(name string, hexStops []string) error {
	if len(hexStops) == 0 {
		return errors.New(errors.ErrCodeInvalidPalette, "palette %q has no color stops", name)
	}
	stops := make([]colorful.Color, len(hexStops))
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette %q stop %d", name, i)
		}
		stops[i] = c
	}
	paletteMu.Lock()
	defer paletteMu.Unlock()
	palettes[strings.ToLower(name)] = Palette{Name: strings.ToLower(name), Stops: stops}
	return nil
}

// PaletteNames returns the registered palette names, sorted.
func PaletteNames() []string {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return paletteNamesLocked()
}

func paletteNamesLocked() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func builtinPalettes() map[string]Palette {
	return map[string]Palette{
		"viridis": {Name: "viridis", Stops: mustStops(
			"#440154", "#46327e", "#365c8d", "#277f8e",
			"#1fa187", "#4ac16d", "#a0da39", "#fde725",
		)},
		"plasma": {Name: "plasma", Stops: mustStops(
			"#0d0887", "#5302a3", "#8b0aa5", "#b83289",
			"#db5c68", "#f48849", "#febd2a", "#f0f921",
		)},
		"magma": {Name: "magma", Stops: mustStops(
			"#000004", "#1d1147", "#51127c", "#822681",
			"#b73779", "#e75263", "#fc8961", "#fec287", "#fcfdbf",
		)},
		"rainbow": {Name: "rainbow", Stops: mustStops(
			"#ff0000", "#ff7f00", "#ffff00", "#00ff00",
			"#0000ff", "#4b0082", "#8f00ff",
		)},
		"tab10": {Name: "tab10", Discrete: true, Stops: mustStops(
			"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
		)},
	}
}

func mustStops(hexes ...string) []colorful.Color {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err) // built-in stop tables are constants
		}
		stops[i] = c
	}
	return stops
}
