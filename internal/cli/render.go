package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcplot/arcplot/pkg/cache"
	"github.com/arcplot/arcplot/pkg/config"
	"github.com/arcplot/arcplot/pkg/pairing/format"
	"github.com/arcplot/arcplot/pkg/pipeline"
)

// newRenderCmd creates the render command that turns a base-pair file into
// arc or helix-graph artifacts.
func newRenderCmd() *cobra.Command {
	var (
		contactsPath   string
		annotationPath string
		bpseqPath      string
		paletteName    string
		formatsFlag    string
		vizType        string
		outputPath     string
		width          float64
		scale          float64
		noCache        bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render base-pairing topology as an arc diagram",
		Long: `Render reads base pairs from exactly one input file (contact table,
segment annotation, or residue pair table), groups them into helices and
renders the result as an arc diagram or helix nesting graph.`,
		Example: `  # Arc diagram from a residue pair table
  arcplot render --bpseq structure.bpseq -o structure.svg

  # PNG and PDF with a different palette
  arcplot render --contacts pairs.csv -p plasma -f png,pdf

  # Helix nesting graph as DOT
  arcplot render --annotation track.ann -t graph -f dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := format.Select(contactsPath, annotationPath, bpseqPath)
			if err != nil {
				return err
			}

			cfg, err := config.LoadDefault()
			if err != nil {
				return err
			}
			if paletteName == "" {
				paletteName = cfg.Palette
			}
			formats := parseFormats(formatsFlag)
			if len(formats) == 0 {
				formats = cfg.Formats
			}

			opts := pipeline.Options{
				Palette: paletteName,
				Formats: formats,
				VizType: vizType,
				Width:   width,
				Scale:   scale,
			}

			return runRender(cmd.Context(), src, opts, outputPath, noCache)
		},
	}

	cmd.Flags().StringVar(&contactsPath, "contacts", "", "contact table input (UTF-16 CSV)")
	cmd.Flags().StringVar(&annotationPath, "annotation", "", "segment annotation input (bracket notation)")
	cmd.Flags().StringVar(&bpseqPath, "bpseq", "", "residue pair table input")
	cmd.Flags().StringVarP(&paletteName, "palette", "p", "", "helix color palette (see 'arcplot palettes')")
	cmd.Flags().StringVarP(&formatsFlag, "format", "f", "", "comma-separated output formats (svg, png, pdf, dot)")
	cmd.Flags().StringVarP(&vizType, "type", "t", pipeline.VizTypeArcs, "visualization type (arcs, graph)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file or directory (default: stdout for a single format)")
	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "arc view width in pixels")
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultPNGScale, "PNG raster scale factor")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// runRender executes the pipeline and writes the resulting artifacts.
func runRender(ctx context.Context, src format.Source, opts pipeline.Options, outputPath string, noCache bool) error {
	logger := loggerFromContext(ctx)

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	// Artifact to stdout means every other line must stay off stdout.
	stdoutMode := outputPath == "" && len(opts.Formats) == 1

	store := cache.NewNullCache()
	if !noCache {
		dir, cerr := cacheDir()
		var fc cache.Cache
		if cerr == nil {
			fc, cerr = cache.NewFileCache(dir)
		}
		switch {
		case cerr != nil && stdoutMode:
			logger.Warn("cache unavailable, rendering without it", "error", cerr)
		case cerr != nil:
			printWarning("cache unavailable, rendering without it: %v", cerr)
		default:
			store = fc
		}
	}

	runner := pipeline.NewRunner(store, logger)
	defer runner.Close()

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, fmt.Sprintf("rendering %s", filepath.Base(src.Path)))
	spin.Start()

	result, err := runner.Execute(ctx, src, opts)
	if spin.Cancelled() {
		spin.Stop()
		return ctx.Err()
	}
	if err != nil {
		spin.StopWithError(fmt.Sprintf("rendering %s failed", filepath.Base(src.Path)))
		return err
	}
	if stdoutMode {
		spin.Stop()
	} else {
		spin.StopWithSuccess(fmt.Sprintf("rendered %d format(s)", len(opts.Formats)))
	}

	if err := writeArtifacts(src, opts, result, outputPath); err != nil {
		return err
	}

	if !stdoutMode {
		printStats(len(result.Pairs), len(result.Helices), allCached(result.CacheHits))
	}
	prog.done("render complete")
	return nil
}

// writeArtifacts writes each rendered artifact. A single format with no
// output path goes to stdout so the command composes with pipes.
func writeArtifacts(src format.Source, opts pipeline.Options, result *pipeline.Result, outputPath string) error {
	if outputPath == "" && len(opts.Formats) == 1 {
		_, err := os.Stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	for _, f := range opts.Formats {
		path := artifactPath(src.Path, outputPath, f, len(opts.Formats))
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// artifactPath decides where an artifact lands. An explicit output path wins
// for a single format; otherwise artifacts sit next to the input (or inside
// the output directory) named after it.
func artifactPath(inputPath, outputPath, format string, formatCount int) string {
	if outputPath != "" {
		if formatCount == 1 && !isDir(outputPath) {
			return outputPath
		}
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		return filepath.Join(outputPath, base+"."+format)
	}
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "." + format
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// parseFormats splits a comma-separated format list, dropping empty entries.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(strings.ToLower(f))
		if f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

func allCached(hits map[string]bool) bool {
	if len(hits) == 0 {
		return false
	}
	for _, hit := range hits {
		if !hit {
			return false
		}
	}
	return true
}
