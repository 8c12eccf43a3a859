// Package io provides JSON import and export for scene trees.
//
// # Format
//
// A scene document is a nested JSON object mirroring the part-whole
// hierarchy. Leaves carry their geometric state, groups carry their
// children in insertion order:
//
//	{
//	  "kind": "group",
//	  "children": [
//	    {"kind": "dot", "x": 10, "y": 20},
//	    {"kind": "circle", "x": 5, "y": 5, "radius": 3},
//	    {"kind": "group", "children": [...]}
//	  ]
//	}
//
// Documents round-trip: [ExportJSON] followed by [ImportJSON] reproduces a
// structurally identical tree with fresh identities (handles never survive
// serialization — they are in-process references only).
package io
