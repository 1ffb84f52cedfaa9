// Package render turns a helix segmentation into drawable output.
//
// # Overview
//
// Rendering happens in two steps. [BuildScene] resolves a segmentation into
// a [Scene]: one semicircular [Arc] per pair, colored per helix from a
// sampled [Palette], plus the horizontal axis range. Sinks then serialize
// the scene:
//
//   - [arcs]: the 1-D topology diagram as hand-written SVG
//   - [graphview]: a node-link view of helix nesting via Graphviz
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both sinks share them.
//
//	svg := arcs.RenderSVG(scene, arcs.Options{})
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Palettes
//
// Palettes are gradient stop tables blended in Lab space, sampled at one
// point per helix index. Built-ins cover viridis (default), plasma, magma,
// rainbow and the discrete tab10; user config may register more.
//
// [arcs]: github.com/arcplot/arcplot/pkg/render/arcs
// [graphview]: github.com/arcplot/arcplot/pkg/render/graphview
package render
