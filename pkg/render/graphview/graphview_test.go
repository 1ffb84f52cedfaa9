package graphview

import (
	"strings"
	"testing"

	"github.com/arcplot/arcplot/pkg/helix"
	"github.com/arcplot/arcplot/pkg/pairing"
	"github.com/arcplot/arcplot/pkg/render"
)

func TestToDOT(t *testing.T) {
	// Helix 0 (1-40) encloses helix 1 (10-30), which encloses helix 2 (20-24).
	ordered := []pairing.Pair{
		{First: 1, Second: 40}, {First: 2, Second: 39},
		{First: 10, Second: 30},
		{First: 20, Second: 24},
	}
	helices, err := helix.Segment(ordered)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	p, err := render.LookupPalette("viridis")
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(helices, p)

	if !strings.HasPrefix(dot, "digraph helices {") {
		t.Error("output is not a digraph")
	}
	for _, node := range []string{`"h0"`, `"h1"`, `"h2"`} {
		if !strings.Contains(dot, node) {
			t.Errorf("node %s missing", node)
		}
	}
	for _, edge := range []string{`"h0" -> "h1"`, `"h1" -> "h2"`} {
		if !strings.Contains(dot, edge) {
			t.Errorf("edge %s missing", edge)
		}
	}
	if strings.Contains(dot, `"h0" -> "h2"`) {
		t.Error("transitive enclosure edge present, want immediate parent only")
	}
	if !strings.Contains(dot, "2 pairs") {
		t.Error("pair count missing from node label")
	}
}

func TestParents(t *testing.T) {
	tests := []struct {
		name    string
		extents []extent
		want    []int
	}{
		{
			name:    "nested chain",
			extents: []extent{{1, 40}, {10, 30}, {20, 24}},
			want:    []int{-1, 0, 1},
		},
		{
			name:    "siblings",
			extents: []extent{{1, 10}, {20, 30}},
			want:    []int{-1, -1},
		},
		{
			name:    "two roots one child",
			extents: []extent{{1, 15}, {5, 10}, {20, 30}},
			want:    []int{-1, 0, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parents(tt.extents)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("parent[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="100pt" height="50pt" viewBox="0.00 0.00 120.50 60.25" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 120.50 60.25"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="121"`) && !strings.Contains(out, `width="120"`) {
		t.Errorf("width not rewritten: %s", out)
	}
}
