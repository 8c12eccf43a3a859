// Package pkg provides the core libraries for figtree scene composition.
//
// # Overview
//
// Figtree builds part-whole scene trees where single shapes and whole groups
// expose the same interface, so callers never care which one they hold. The
// pkg directory is organized into five areas:
//
//  1. [scene] - The composite tree itself (graphics, groups, handles)
//  2. [render] - Text, DOT, SVG, PDF, and PNG output
//  3. [io] / [manifest] - JSON documents and TOML manifests
//  4. [store] - Snapshot persistence (memory, file, redis, mongo)
//  5. [errors] - Structured errors with machine-readable codes
//
// # Architecture
//
// The typical data flow through figtree:
//
//	TOML manifest
//	         ↓
//	    [manifest] package (validate + assemble)
//	         ↓
//	    [scene] package (tree structure + operations)
//	         ↓
//	    [render] package (diagram + text output)
//	         ↓
//	    SVG/PDF/PNG/DOT/text output
//
// Scene documents round-trip through [io] as JSON; [store] freezes them into
// named snapshots with optional TTLs.
//
// # Quick Start
//
//	root := scene.NewGroup()
//	h, _ := root.Add(scene.NewDot(10, 20))
//	root.Add(scene.NewCircle(5, 5, 3))
//
//	fmt.Println(root.Draw()) // [Dot(10,20) Circle(5,5,r=3)]
//	root.Remove(h)
//	root.Move(1, 1)
package pkg
