package render

import (
	"math"
	"testing"

	"github.com/arcplot/arcplot/pkg/helix"
	"github.com/arcplot/arcplot/pkg/pairing"
)

func segment(t *testing.T, pairs []pairing.Pair) []helix.Helix {
	t.Helper()
	helices, err := helix.Segment(pairs)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	return helices
}

func TestBuildScene(t *testing.T) {
	ordered := []pairing.Pair{{First: 1, Second: 20}, {First: 2, Second: 19}, {First: 10, Second: 11}}
	helices := segment(t, ordered)
	p, err := LookupPalette("viridis")
	if err != nil {
		t.Fatal(err)
	}

	scene := BuildScene(helices, pairing.BoundsOf(ordered), p)

	// One arc per pair.
	if len(scene.Arcs) != len(ordered) {
		t.Fatalf("scene has %d arcs, want %d", len(scene.Arcs), len(ordered))
	}
	// One sampled color per helix index.
	if len(scene.Colors) != 2 {
		t.Errorf("scene has %d colors, want 2", len(scene.Colors))
	}

	first := scene.Arcs[0]
	if first.Center != 10.5 {
		t.Errorf("arc 0 center = %v, want 10.5", first.Center)
	}
	if first.Diameter != 19 {
		t.Errorf("arc 0 diameter = %v, want 19", first.Diameter)
	}
	if first.Color != scene.Colors[0] {
		t.Error("arc 0 color does not match helix 0 sample")
	}
	if last := scene.Arcs[2]; last.Helix != 1 || last.Color != scene.Colors[1] {
		t.Errorf("arc 2 = helix %d, want helix 1 with its sampled color", last.Helix)
	}
}

func TestBuildScene_AxisRange(t *testing.T) {
	ordered := []pairing.Pair{{First: 5, Second: 100}}
	scene := BuildScene(segment(t, ordered), pairing.BoundsOf(ordered), Palette{Stops: mustStops("#000000", "#ffffff")})

	wantMin := 5 - 100*0.01
	wantMax := 100 * 1.01
	if math.Abs(scene.XMin-wantMin) > 1e-9 {
		t.Errorf("XMin = %v, want %v", scene.XMin, wantMin)
	}
	if math.Abs(scene.XMax-wantMax) > 1e-9 {
		t.Errorf("XMax = %v, want %v", scene.XMax, wantMax)
	}
	if got := scene.MaxDiameter(); got != 95 {
		t.Errorf("MaxDiameter = %v, want 95", got)
	}
}

func TestBuildScene_SampleCount(t *testing.T) {
	// Three helices: indices 0..2, so maxIndex+1 = 3 colors.
	ordered := []pairing.Pair{
		{First: 1, Second: 40}, {First: 2, Second: 39},
		{First: 10, Second: 30},
		{First: 20, Second: 24},
	}
	scene := BuildScene(segment(t, ordered), pairing.BoundsOf(ordered), Palette{Stops: mustStops("#ff0000", "#0000ff")})
	if len(scene.Colors) != 3 {
		t.Errorf("requested %d colors, want 3", len(scene.Colors))
	}
}
