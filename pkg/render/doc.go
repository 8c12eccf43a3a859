// Package render turns scene trees into visual and textual outputs.
//
// # Overview
//
// This package contains the rendering surface for part-whole scene trees.
// It provides:
//
//   - Textual output: [Lines] (the flat draw representation) and [Outline]
//     (an indented tree for terminal inspection)
//   - Structural diagrams: [ToDOT] plus [RenderSVG], [RenderPDF], [RenderPNG]
//     via Graphviz
//   - Generic format conversion (SVG to PDF/PNG) with [ToPDF] and [ToPNG]
//
// # Structural diagrams
//
// ToDOT emits the ownership tree itself: groups as boxes, leaves as
// ellipses, edges from owner to owned. The resulting DOT string renders
// with Graphviz:
//
//	dot := render.ToDOT(root, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(dot)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg).
package render
