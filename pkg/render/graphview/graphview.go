// Package graphview renders the helix structure as a node-link diagram.
//
// Each helix becomes one node labeled with its index, sequence extent and
// pair count. Edges follow the nesting of helices on the sequence: a helix
// points at the helices whose extent it immediately encloses. The diagram
// complements the arc view when structures get too dense to read as arcs.
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering of the generated DOT graph.
package graphview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcplot/arcplot/pkg/helix"
	"github.com/arcplot/arcplot/pkg/pairing"
	"github.com/arcplot/arcplot/pkg/render"
)

// extent is the sequence range a helix covers, over both strands.
type extent struct {
	lo, hi int
}

func extentOf(h helix.Helix) extent {
	b := pairing.BoundsOf(h.Pairs)
	return extent{lo: b.Min, hi: b.Max}
}

// encloses reports whether e strictly contains other.
func (e extent) encloses(other extent) bool {
	return e.lo <= other.lo && other.hi <= e.hi && e != other
}

// ToDOT converts a helix segmentation to Graphviz DOT format.
// Node fill colors come from the same palette sampling the arc view uses,
// so both visualizations agree on helix colors.
func ToDOT(helices []helix.Helix, p render.Palette) string {
	colors := p.Sample(helix.MaxIndex(helices) + 1)

	var buf bytes.Buffer
	buf.WriteString("digraph helices {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n")
	buf.WriteString("\n")

	extents := make([]extent, len(helices))
	for i, h := range helices {
		extents[i] = extentOf(h)
		label := fmt.Sprintf("helix %d\\n%d-%d\\n%d pairs", h.Index, extents[i].lo, extents[i].hi, len(h.Pairs))
		fmt.Fprintf(&buf, "  %q [label=\"%s\", fillcolor=%q, fontcolor=%q];\n",
			nodeID(h.Index), label, colors[h.Index].Hex(), fontColor(colors[h.Index]))
	}

	buf.WriteString("\n")
	for child, parent := range parents(extents) {
		if parent >= 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(helices[parent].Index), nodeID(helices[child].Index))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(index int) string {
	return "h" + strconv.Itoa(index)
}

// fontColor picks black or white for legibility against the fill.
func fontColor(c colorful.Color) string {
	l, _, _ := c.Luv()
	if l < 0.45 {
		return "white"
	}
	return "black"
}

// parents computes, for every helix, the index of its immediate enclosing
// helix, or -1 for top-level helices. The immediate parent is the enclosing
// extent with the smallest span.
func parents(extents []extent) []int {
	out := make([]int, len(extents))
	for i := range extents {
		out[i] = -1
		best := -1
		for j := range extents {
			if i == j || !extents[j].encloses(extents[i]) {
				continue
			}
			if best < 0 || extents[j].hi-extents[j].lo < extents[best].hi-extents[best].lo {
				best = j
			}
		}
		out[i] = best
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so downstream
// converters see a zero-origin viewBox with explicit dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
