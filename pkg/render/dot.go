package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/figtree/pkg/scene"
)

// Options configures structural diagram rendering.
type Options struct {
	// Detailed includes leaf positions and group child counts in node
	// labels. When false, only the kind is shown.
	Detailed bool
}

// ToDOT converts a scene tree to Graphviz DOT format. Groups are rendered as
// rounded boxes, leaves as ellipses, and ownership edges point from owner to
// owned in child insertion order. The resulting DOT string can be rendered
// using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g scene.Graphic, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	seq := 0
	writeDOT(&buf, g, &seq, opts)

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOT emits the node statement for g and, for groups, the edges to its
// children, returning g's DOT identifier. Identifiers are assigned in
// depth-first order so output is deterministic.
func writeDOT(buf *bytes.Buffer, g scene.Graphic, seq *int, opts Options) string {
	id := fmt.Sprintf("n%d", *seq)
	*seq++

	grp, isGroup := g.(*scene.Group)
	fmt.Fprintf(buf, "  %s [%s];\n", id, strings.Join(dotAttrs(g, opts), ", "))

	if isGroup {
		for _, c := range grp.Children() {
			childID := writeDOT(buf, c, seq, opts)
			fmt.Fprintf(buf, "  %s -> %s;\n", id, childID)
		}
	}
	return id
}

func dotAttrs(g scene.Graphic, opts Options) []string {
	if grp, ok := g.(*scene.Group); ok {
		label := "group"
		if opts.Detailed {
			label = fmt.Sprintf("group\n%d children", grp.Len())
		}
		return []string{
			fmt.Sprintf("label=%q", label),
			`shape=box`, `style="rounded,filled"`, `fillcolor=lightgrey`,
		}
	}

	label := "leaf"
	if lines := g.Draw(); opts.Detailed && len(lines) > 0 {
		label = lines[0]
	}
	return []string{
		fmt.Sprintf("label=%q", label),
		`shape=ellipse`, `style=filled`, `fillcolor=white`,
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [ToPDF] or [ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return ToPNG(svg, scale)
}
