// Package scene implements a composite part-whole tree of 2D graphics.
//
// # Overview
//
// A scene is a tree of graphics. Terminal nodes ([Dot], [Circle]) hold only
// geometric state; [Group] nodes own an ordered sequence of child graphics
// and expose the same capability interface. Both kinds satisfy [Graphic], so
// callers manipulate a single element and a deeply nested hierarchy through
// the same three operations:
//
//   - Move translates a graphic (and, for groups, every descendant) by a delta
//   - Draw produces the line-by-line description of the subtree
//   - Kind reports whether the graphic is a leaf or a group
//
// # Ownership
//
// A group exclusively owns its children. Ownership transfers on [Group.Add]
// and never duplicates: a graphic has at most one owner at any time, and
// adding an already-owned graphic fails with [ErrAlreadyOwned] rather than
// silently re-parenting. Cycles are rejected at insertion time with
// [ErrCycleDetected], so traversal always terminates.
//
// Removal is driven by the [Handle] returned from Add, not by traversal.
// Handles are opaque identity references; a handle whose referent is gone is
// simply ignored, making removal idempotent:
//
//	g := scene.NewGroup()
//	h, _ := g.Add(scene.NewDot(10, 20))
//	g.Remove(h) // detaches and disposes the dot
//	g.Remove(h) // no-op
//
// # Kind checking
//
// The set of kinds is closed: [KindLeaf] and [KindGroup]. Container-only
// operations on an arbitrary [Graphic] go through [Attach] and [Detach],
// which fail with [ErrTypeMismatch] when the target is a leaf instead of
// performing an unchecked downcast.
//
// Scene trees are not safe for concurrent use. If multiple goroutines access
// a tree, they must be synchronized with external locking; only Draw calls
// may safely interleave with each other.
package scene
