package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/arcplot/arcplot/pkg/errors"
)

// converterTool is the external SVG rasterizer both diagram sinks share.
// Arc and graph views alike produce SVG first; PNG and PDF exports pipe
// that SVG through this tool.
const converterTool = "rsvg-convert"

// ToPDF converts a rendered diagram from SVG to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convertSVG(svg, "pdf")
}

// ToPNG converts a rendered diagram from SVG to PNG at the given scale
// factor. A scale of 2.0 doubles the raster resolution over the SVG's
// nominal width, which keeps arc strokes and tick labels crisp on
// high-DPI displays.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convertSVG(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// convertSVG pipes diagram SVG through the external converter.
func convertSVG(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(converterTool); err != nil {
		return nil, errors.New(errors.ErrCodeInternal,
			"%s output needs %s (librsvg): brew install librsvg (macOS) or apt install librsvg2-bin (Linux)",
			format, converterTool)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command(converterTool, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"convert diagram to %s: %s", format, stderr.String())
	}
	return out.Bytes(), nil
}
