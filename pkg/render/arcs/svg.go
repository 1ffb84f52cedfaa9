// Package arcs renders a [render.Scene] as a 1-D topology diagram in SVG.
//
// Each pair becomes an upward semicircle over a shared horizontal sequence
// axis; the vertical axis is hidden. Output height is derived from the
// widest arc so nothing clips.
package arcs

import (
	"bytes"
	"fmt"
	"math"

	"github.com/arcplot/arcplot/pkg/render"
)

// Layout constants, in output pixels.
const (
	defaultWidth = 800.0
	marginX      = 40.0
	marginTop    = 20.0
	axisHeight   = 30.0 // baseline, ticks and labels
	strokeWidth  = 1.5
	tickLen      = 4.0
	fontSize     = 11.0
)

// Options configures SVG arc rendering.
type Options struct {
	// Width is the output width in pixels. Zero means the default (800).
	Width float64
}

// RenderSVG serializes the scene as a standalone SVG document.
func RenderSVG(s render.Scene, opts Options) []byte {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	span := s.XMax - s.XMin
	if span <= 0 {
		span = 1
	}
	scale := (width - 2*marginX) / span
	toX := func(x float64) float64 { return marginX + (x-s.XMin)*scale }

	maxRadius := s.MaxDiameter() / 2 * scale
	baseline := marginTop + maxRadius
	height := baseline + axisHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	for _, a := range s.Arcs {
		r := a.Diameter / 2 * scale
		x1 := toX(a.Center - a.Diameter/2)
		x2 := toX(a.Center + a.Diameter/2)
		fmt.Fprintf(&buf,
			`  <path d="M %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n",
			x1, baseline, r, r, x2, baseline, a.Color.Hex(), strokeWidth)
	}

	renderAxis(&buf, s, toX, baseline, width)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderAxis draws the baseline with tick marks and position labels.
// Only the horizontal axis is drawn.
func renderAxis(buf *bytes.Buffer, s render.Scene, toX func(float64) float64, baseline, width float64) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black" stroke-width="1"/>`+"\n",
		marginX, baseline, width-marginX, baseline)

	for _, tick := range tickPositions(s.XMin, s.XMax) {
		x := toX(tick)
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black" stroke-width="1"/>`+"\n",
			x, baseline, x, baseline+tickLen)
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.0f" font-family="sans-serif" text-anchor="middle">%d</text>`+"\n",
			x, baseline+tickLen+fontSize+2, fontSize, int(tick))
	}
}

// tickPositions picks round tick values covering [min, max].
func tickPositions(min, max float64) []float64 {
	span := max - min
	if span <= 0 {
		return []float64{min}
	}
	step := niceStep(span / 8)
	var ticks []float64
	for t := math.Ceil(min/step) * step; t <= max; t += step {
		ticks = append(ticks, t)
	}
	return ticks
}

// niceStep rounds raw up to a 1/2/5 multiple of a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch frac := raw / mag; {
	case frac <= 1:
		return mag
	case frac <= 2:
		return 2 * mag
	case frac <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
