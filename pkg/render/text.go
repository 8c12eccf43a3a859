package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/figtree/pkg/scene"
)

// Lines returns the flat draw representation of g, one leaf description per
// line in depth-first insertion order. This is the canonical textual form of
// a scene: nesting is invisible, only order matters.
func Lines(g scene.Graphic) []string {
	return g.Draw()
}

// Outline returns an indented textual tree of g, two spaces per level.
// Groups appear as "group (n children)" headers, leaves as their own
// description. Useful for terminal inspection of deep hierarchies.
func Outline(g scene.Graphic) string {
	var b strings.Builder
	writeOutline(&b, g, 0)
	return b.String()
}

func writeOutline(b *strings.Builder, g scene.Graphic, depth int) {
	indent := strings.Repeat("  ", depth)
	if grp, ok := g.(*scene.Group); ok {
		fmt.Fprintf(b, "%sgroup (%d children)\n", indent, grp.Len())
		for _, c := range grp.Children() {
			writeOutline(b, c, depth+1)
		}
		return
	}
	for _, line := range g.Draw() {
		fmt.Fprintf(b, "%s%s\n", indent, line)
	}
}

// Stats summarizes the structure of a scene tree.
type Stats struct {
	Nodes  int // total graphics, including the root
	Leaves int // terminal graphics
	Groups int // container graphics
	Depth  int // longest root-to-leaf chain, 0 for a bare leaf
}

// Summarize walks g and counts its nodes, leaves, groups, and depth.
func Summarize(g scene.Graphic) Stats {
	var s Stats
	if grp, ok := g.(*scene.Group); ok {
		grp.Walk(func(gr scene.Graphic, depth int) bool {
			s.Nodes++
			if gr.Kind() == scene.KindGroup {
				s.Groups++
			} else {
				s.Leaves++
			}
			if depth > s.Depth {
				s.Depth = depth
			}
			return true
		})
		return s
	}
	return Stats{Nodes: 1, Leaves: 1}
}
