package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	sceneio "github.com/matzehuels/figtree/pkg/io"
	"github.com/matzehuels/figtree/pkg/render"
	"github.com/matzehuels/figtree/pkg/scene"
)

const defaultPNGScale = 2.0 // raster oversampling factor for PNG output

// renderOpts holds the command-line flags for the render command.
// These options control output formats and diagram detail.
type renderOpts struct {
	output   string   // output file path (or base path for multiple outputs)
	formats  []string // output formats: "svg", "pdf", "png", "dot", "text"
	detailed bool     // annotate nodes with positions in diagram output
}

// newRenderCmd creates the render command for generating visualizations.
// It reads a JSON scene document and writes one output file per requested format.
//
// Default settings:
//   - format: svg
//   - detailed: false (node labels without positions)
func newRenderCmd() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a scene document to SVG, PDF, PNG, DOT, or text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png, dot, text (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "annotate nodes with positions")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "pdf": true, "png": true, "dot": true, "text": true}

// validateFormats checks that all requested formats are valid.
// It returns an error if any format is not in validFormats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'pdf', 'png', 'dot', or 'text')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., scene.svg, scene.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the scene from input and renders it to the requested formats.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	g, err := sceneio.ImportJSON(input)
	if err != nil {
		return err
	}
	stats := render.Summarize(g)
	logger.Infof("Loaded scene: %d nodes, depth %d", stats.Nodes, stats.Depth)

	if len(opts.formats) == 1 {
		return renderSingle(ctx, g, opts.formats[0], input, opts)
	}
	return renderMultiple(ctx, g, input, opts)
}

// renderSingle renders a single format to a single output file.
// If opts.output is empty, the output path is derived from the input file name.
func renderSingle(ctx context.Context, g scene.Graphic, format, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderScene(ctx, g, format, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	// Determine output path: use provided output or derive from input
	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + formatExt(format)
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = out.Write(data); err != nil {
		return err
	}

	logger.Infof("Generated %s", outputPath)
	return nil
}

// renderMultiple renders all requested formats to separate files.
// File names are derived from basePath plus the format extension.
func renderMultiple(ctx context.Context, g scene.Graphic, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	base := basePath(opts.output, input)

	for _, format := range opts.formats {
		data, err := renderScene(ctx, g, format, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}

		path := fmt.Sprintf("%s.%s", base, formatExt(format))
		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}

		logger.Infof("Generated %s", path)
	}
	return nil
}

// formatExt maps a format name to its file extension.
func formatExt(format string) string {
	if format == "text" {
		return "txt"
	}
	return format
}

// renderScene dispatches to the appropriate renderer based on format.
// The text format emits the flat draw lines; dot emits raw Graphviz source.
func renderScene(ctx context.Context, g scene.Graphic, format string, opts *renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	if format == "text" {
		logger.Info("Rendering draw lines")
		return []byte(strings.Join(render.Lines(g), "\n") + "\n"), nil
	}

	dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})

	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		logger.Info("Rendering SVG")
		return render.RenderSVG(dot)
	case "pdf":
		logger.Info("Rendering PDF")
		return render.RenderPDF(dot)
	case "png":
		logger.Info("Rendering PNG")
		return render.RenderPNG(dot, defaultPNGScale)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
