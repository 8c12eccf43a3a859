package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/figtree/pkg/scene"
)

// Node kind strings used in scene documents.
const (
	kindDot    = "dot"
	kindCircle = "circle"
	kindGroup  = "group"
)

// node is the serialized form of a single graphic.
type node struct {
	Kind     string `json:"kind"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
	Radius   int    `json:"radius,omitempty"`
	Children []node `json:"children,omitempty"`
}

// WriteJSON encodes a scene tree as JSON and writes it to w.
// The document mirrors the hierarchy with children in insertion order and
// can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(g scene.Graphic, w io.Writer) error {
	doc, err := toNode(g)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a scene tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g scene.Graphic, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

func toNode(g scene.Graphic) (node, error) {
	switch v := g.(type) {
	case *scene.Group:
		n := node{Kind: kindGroup}
		for _, c := range v.Children() {
			child, err := toNode(c)
			if err != nil {
				return node{}, err
			}
			n.Children = append(n.Children, child)
		}
		return n, nil
	case *scene.Circle:
		x, y := v.Position()
		return node{Kind: kindCircle, X: x, Y: y, Radius: v.Radius()}, nil
	case *scene.Dot:
		x, y := v.Position()
		return node{Kind: kindDot, X: x, Y: y}, nil
	default:
		return node{}, fmt.Errorf("unsupported graphic %T", g)
	}
}
