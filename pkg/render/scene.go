package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcplot/arcplot/pkg/helix"
	"github.com/arcplot/arcplot/pkg/pairing"
)

// Arc is one render primitive: a semicircle over the sequence axis,
// centered at the midpoint of its pair, with diameter equal to the pair's
// span, colored by its helix.
type Arc struct {
	Center   float64
	Diameter float64
	Helix    int
	Color    colorful.Color
}

// Scene is a fully resolved arc diagram: one arc per pair, plus the
// horizontal axis range. The vertical axis is implicit (hidden in output).
type Scene struct {
	Arcs   []Arc
	Colors []colorful.Color // one per helix index
	XMin   float64
	XMax   float64
}

// Axis padding matches the source tool: slightly below the minimum and
// slightly above the maximum position, both relative to the maximum.
const axisPad = 0.01

// BuildScene assigns one sampled color per helix index and emits arcs in
// increasing helix order, list order within each helix. The palette is
// sampled exactly once, at maxIndex+1 evenly spaced points.
func BuildScene(helices []helix.Helix, bounds pairing.Bounds, p Palette) Scene {
	colors := p.Sample(helix.MaxIndex(helices) + 1)

	scene := Scene{
		Colors: colors,
		XMin:   float64(bounds.Min) - float64(bounds.Max)*axisPad,
		XMax:   float64(bounds.Max) * (1 + axisPad),
	}
	for _, h := range helices {
		for _, pr := range h.Pairs {
			scene.Arcs = append(scene.Arcs, Arc{
				Center:   pr.Midpoint(),
				Diameter: float64(pr.Span()),
				Helix:    h.Index,
				Color:    colors[h.Index],
			})
		}
	}
	return scene
}

// MaxDiameter returns the widest arc's diameter, 0 for an empty scene.
func (s Scene) MaxDiameter() float64 {
	var m float64
	for _, a := range s.Arcs {
		m = max(m, a.Diameter)
	}
	return m
}
