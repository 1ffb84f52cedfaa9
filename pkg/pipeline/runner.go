package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/arcplot/arcplot/pkg/cache"
	"github.com/arcplot/arcplot/pkg/errors"
	"github.com/arcplot/arcplot/pkg/helix"
	"github.com/arcplot/arcplot/pkg/pairing"
	"github.com/arcplot/arcplot/pkg/pairing/format"
	"github.com/arcplot/arcplot/pkg/render"
	"github.com/arcplot/arcplot/pkg/render/arcs"
	"github.com/arcplot/arcplot/pkg/render/graphview"
)

// Runner executes the pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Each run owns its own pair sequence and helix mapping.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Result holds the outcome of one pipeline run.
type Result struct {
	Pairs     []pairing.Pair    // normalized ordered pair sequence
	Helices   []helix.Helix     // segmentation of Pairs
	Artifacts map[string][]byte // rendered output per format
	CacheHits map[string]bool   // per-format cache hit info
	Stats     Stats
}

// Stats reports per-stage timings.
type Stats struct {
	ParseTime   time.Duration
	SegmentTime time.Duration
	RenderTime  time.Duration
}

// Execute runs the complete parse → normalize → segment → render pipeline.
func (r *Runner) Execute(ctx context.Context, src format.Source, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		CacheHits: make(map[string]bool),
	}

	parseStart := time.Now()
	raw, err := src.Pairs()
	if err != nil {
		return nil, err
	}
	result.Pairs, err = pairing.Normalize(raw)
	if err != nil {
		return nil, err
	}
	result.Stats.ParseTime = time.Since(parseStart)
	r.Logger.Info("parsed pairs",
		"file", src.Path,
		"raw", len(raw),
		"unique", len(result.Pairs),
		"duration", result.Stats.ParseTime)

	segmentStart := time.Now()
	result.Helices, err = helix.Segment(result.Pairs)
	if err != nil {
		return nil, err
	}
	result.Stats.SegmentTime = time.Since(segmentStart)
	r.Logger.Info("segmented helices",
		"helices", len(result.Helices),
		"duration", result.Stats.SegmentTime)

	renderStart := time.Now()
	if err := r.renderFormats(ctx, result, opts); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderFormats fills result.Artifacts, consulting the cache per format.
func (r *Runner) renderFormats(ctx context.Context, result *Result, opts Options) error {
	rend := r.renderer(result, opts)

	for _, f := range opts.Formats {
		key := cache.ArtifactKey(f, result.Pairs, opts.Palette, opts.VizType, opts.Width, opts.Scale)
		if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			result.Artifacts[f] = data
			result.CacheHits[f] = true
			r.Logger.Debug("artifact cache hit", "format", f)
			continue
		}

		data, err := rend(f)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render %s", f)
		}
		result.Artifacts[f] = data
		if err := r.Cache.Set(ctx, key, data, 0); err != nil {
			r.Logger.Debug("artifact cache write failed", "format", f, "err", err)
		}
	}
	return nil
}

// renderer returns a per-format render function for the selected view.
// The base SVG (or DOT graph) is computed lazily, once, and shared by the
// derived formats.
func (r *Runner) renderer(result *Result, opts Options) func(string) ([]byte, error) {
	palette, _ := render.LookupPalette(opts.Palette) // validated in options

	var svg []byte
	var dot string
	baseSVG := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		if opts.VizType == VizTypeGraph {
			var err error
			svg, err = graphview.RenderSVG(r.graphDOT(result, palette, &dot))
			return svg, err
		}
		scene := render.BuildScene(result.Helices, pairing.BoundsOf(result.Pairs), palette)
		svg = arcs.RenderSVG(scene, arcs.Options{Width: opts.Width})
		return svg, nil
	}

	return func(f string) ([]byte, error) {
		switch f {
		case FormatDOT:
			return []byte(r.graphDOT(result, palette, &dot)), nil
		case FormatSVG:
			return baseSVG()
		case FormatPNG:
			if opts.VizType == VizTypeGraph {
				return graphview.RenderPNG(r.graphDOT(result, palette, &dot), opts.Scale)
			}
			base, err := baseSVG()
			if err != nil {
				return nil, err
			}
			return render.ToPNG(base, opts.Scale)
		case FormatPDF:
			if opts.VizType == VizTypeGraph {
				return graphview.RenderPDF(r.graphDOT(result, palette, &dot))
			}
			base, err := baseSVG()
			if err != nil {
				return nil, err
			}
			return render.ToPDF(base)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
		}
	}
}

// graphDOT memoizes the DOT serialization across formats.
func (r *Runner) graphDOT(result *Result, palette render.Palette, dot *string) string {
	if *dot == "" {
		*dot = graphview.ToDOT(result.Helices, palette)
	}
	return *dot
}
