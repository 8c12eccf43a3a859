package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/figtree/pkg/scene"
)

// ReadJSON decodes a JSON scene document from r into a scene tree.
//
// The document root may be any node kind; a bare leaf document produces a
// bare leaf. Each node must have a "kind" field of "dot", "circle", or
// "group". Optional fields:
//   - x, y: integer position (defaults to 0,0; leaves only)
//   - radius: integer radius (circles only, must be positive)
//   - children: array of child nodes (groups only)
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A node has an unknown kind
//   - A circle has a non-positive radius
//   - A leaf carries children
//
// Errors are wrapped with a path describing which node caused the problem.
// The returned tree is independent of r and carries fresh identities; handles
// from a previous export are not restored. ReadJSON does not close r.
func ReadJSON(r io.Reader) (scene.Graphic, error) {
	var doc node
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromNode(doc, "$")
}

// ImportJSON reads a scene tree from a JSON file at path.
// This is a convenience wrapper around [ReadJSON] for file-based input.
func ImportJSON(path string) (scene.Graphic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func fromNode(n node, path string) (scene.Graphic, error) {
	switch n.Kind {
	case kindGroup:
		g := scene.NewGroup()
		for i, c := range n.Children {
			child, err := fromNode(c, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			if _, err := g.Add(child); err != nil {
				return nil, fmt.Errorf("%s.children[%d]: %w", path, i, err)
			}
		}
		return g, nil
	case kindDot:
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("%s: leaf node carries children", path)
		}
		return scene.NewDot(n.X, n.Y), nil
	case kindCircle:
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("%s: leaf node carries children", path)
		}
		if n.Radius <= 0 {
			return nil, fmt.Errorf("%s: circle radius must be positive, got %d", path, n.Radius)
		}
		return scene.NewCircle(n.X, n.Y, n.Radius), nil
	default:
		return nil, fmt.Errorf("%s: unknown kind %q", path, n.Kind)
	}
}
