package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcplot/arcplot/pkg/pairing/format"
	"github.com/arcplot/arcplot/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "svg", want: []string{"svg"}},
		{name: "multiple", input: "png,pdf", want: []string{"png", "pdf"}},
		{name: "whitespace and case", input: " SVG , Png ", want: []string{"svg", "png"}},
		{name: "trailing comma", input: "svg,", want: []string{"svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		inputPath   string
		outputPath  string
		format      string
		formatCount int
		want        string
	}{
		{
			name:        "no output, next to input",
			inputPath:   "structure.bpseq",
			format:      "svg",
			formatCount: 1,
			want:        "structure.svg",
		},
		{
			name:        "explicit file for single format",
			inputPath:   "structure.bpseq",
			outputPath:  "out.svg",
			format:      "svg",
			formatCount: 1,
			want:        "out.svg",
		},
		{
			name:        "directory output for multiple formats",
			inputPath:   "data/structure.bpseq",
			outputPath:  dir,
			format:      "png",
			formatCount: 2,
			want:        filepath.Join(dir, "structure.png"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPath(tt.inputPath, tt.outputPath, tt.format, tt.formatCount)
			if got != tt.want {
				t.Errorf("artifactPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunRenderWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "structure.bpseq")
	fixture := "1 G 20\n2 C 19\n3 A 18\n10 U 11\n"
	if err := os.WriteFile(input, []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := format.Source{Kind: format.KindResiduePairTable, Path: input}
	opts := pipeline.Options{Formats: []string{"svg"}}
	outDir := t.TempDir()

	if err := runRender(context.Background(), src, opts, outDir, true); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	out := filepath.Join(outDir, "structure.svg")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected artifact at %s: %v", out, err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("artifact does not look like SVG")
	}
}

func TestRunRenderPropagatesParseError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.bpseq")
	if err := os.WriteFile(input, []byte("1 G\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := format.Source{Kind: format.KindResiduePairTable, Path: input}
	opts := pipeline.Options{Formats: []string{"svg"}}

	err := runRender(context.Background(), src, opts, t.TempDir(), true)
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestAllCached(t *testing.T) {
	tests := []struct {
		name string
		hits map[string]bool
		want bool
	}{
		{name: "empty", hits: nil, want: false},
		{name: "all hit", hits: map[string]bool{"svg": true, "png": true}, want: true},
		{name: "partial hit", hits: map[string]bool{"svg": true, "png": false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allCached(tt.hits); got != tt.want {
				t.Errorf("allCached() = %v, want %v", got, tt.want)
			}
		})
	}
}
