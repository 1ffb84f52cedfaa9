// Package pipeline runs the core arcplot flow: parse → normalize →
// segment → render.
//
// The [Runner] centralizes this logic so every entry point behaves the
// same, and layers artifact caching on top: rendering is deterministic in
// its inputs, so outputs are reused across runs for unchanged input.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Palette: "viridis", Formats: []string{"svg"}}
//	result, err := runner.Execute(ctx, source, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"strings"

	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/render"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatDOT = "dot"
)

// Visualization types.
const (
	VizTypeArcs  = "arcs"
	VizTypeGraph = "graph"
)

const (
	// DefaultWidth is the default frame width in pixels for the arc view.
	DefaultWidth = 800.0

	// DefaultPNGScale is the raster scale factor (2x for high-DPI output).
	DefaultPNGScale = 2.0
)

// ValidFormats is the set of supported output formats.
// DOT output is only meaningful for the graph visualization.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
	FormatDOT: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeArcs:  true,
	VizTypeGraph: true,
}

// Options controls one pipeline run.
type Options struct {
	Palette string   // palette name (default "viridis")
	Formats []string // output formats (default ["svg"])
	VizType string   // "arcs" (default) or "graph"
	Width   float64  // arc view width in pixels
	Scale   float64  // PNG raster scale factor
}

// ValidateAndSetDefaults fills unset fields and rejects invalid ones.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Palette == "" {
		o.Palette = render.DefaultPalette
	}
	if _, err := render.LookupPalette(o.Palette); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.VizType == "" {
		o.VizType = VizTypeArcs
	}
	if !ValidVizTypes[o.VizType] {
		return errors.New(errors.ErrCodeInvalidVizType,
			"unknown visualization type %q (available: %s, %s)", o.VizType, VizTypeArcs, VizTypeGraph)
	}
	if o.VizType == VizTypeArcs && contains(o.Formats, FormatDOT) {
		return errors.New(errors.ErrCodeInvalidFormat, "format %q requires --type %s", FormatDOT, VizTypeGraph)
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Scale <= 0 {
		o.Scale = DefaultPNGScale
	}
	return nil
}

// ValidateFormats rejects unknown output formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"unknown format %q (available: %s)", f, strings.Join(formatNames(), ", "))
		}
	}
	return nil
}

func formatNames() []string {
	return []string{FormatSVG, FormatPNG, FormatPDF, FormatDOT}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
