package arcs

import (
	"strings"
	"testing"

	"github.com/arcplot/arcplot/pkg/helix"
	"github.com/arcplot/arcplot/pkg/pairing"
	"github.com/arcplot/arcplot/pkg/render"
)

func testScene(t *testing.T) render.Scene {
	t.Helper()
	ordered := []pairing.Pair{
		{First: 1, Second: 20}, {First: 2, Second: 19}, {First: 10, Second: 11},
	}
	helices, err := helix.Segment(ordered)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	p, err := render.LookupPalette("viridis")
	if err != nil {
		t.Fatal(err)
	}
	return render.BuildScene(helices, pairing.BoundsOf(ordered), p)
}

func TestRenderSVG(t *testing.T) {
	scene := testScene(t)
	svg := string(RenderSVG(scene, Options{}))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output is not an SVG document")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output is not closed")
	}

	// One path element per arc, i.e. per pair.
	if got := strings.Count(svg, "<path "); got != len(scene.Arcs) {
		t.Errorf("found %d paths, want %d", got, len(scene.Arcs))
	}
	// Arcs carry their helix colors.
	for _, c := range scene.Colors {
		if !strings.Contains(svg, c.Hex()) {
			t.Errorf("color %s missing from output", c.Hex())
		}
	}
	// The vertical axis is hidden; only the baseline and ticks appear.
	if !strings.Contains(svg, "<line ") {
		t.Error("baseline missing from output")
	}
}

func TestRenderSVG_WidthOption(t *testing.T) {
	scene := testScene(t)

	def := string(RenderSVG(scene, Options{}))
	if !strings.Contains(def, `width="800"`) {
		t.Error("default width is not 800")
	}
	wide := string(RenderSVG(scene, Options{Width: 1200}))
	if !strings.Contains(wide, `width="1200"`) {
		t.Error("explicit width not honored")
	}
}

func TestTickPositions(t *testing.T) {
	ticks := tickPositions(0, 100)
	if len(ticks) < 4 {
		t.Fatalf("got %d ticks for [0,100], want several", len(ticks))
	}
	for _, tick := range ticks {
		if tick < 0 || tick > 100 {
			t.Errorf("tick %v outside range", tick)
		}
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{0.7, 1},
		{1.3, 2},
		{3, 5},
		{7, 10},
		{12, 20},
		{130, 200},
	}
	for _, tt := range tests {
		if got := niceStep(tt.raw); got != tt.want {
			t.Errorf("niceStep(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
