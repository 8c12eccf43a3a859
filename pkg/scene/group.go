package scene

import "slices"

// groupSeq assigns a unique id to every group. Plain counter, no atomic:
// scene trees are single-threaded by contract.
var groupSeq uint64

func nextGroupID() uint64 {
	groupSeq++
	return groupSeq
}

// Handle is an opaque, non-owning reference to a graphic inside a group,
// captured at [Group.Add] time and redeemed by [Group.Remove]. A handle
// becomes invalid the instant its referent is removed; redeeming an invalid
// handle is a safe no-op. The zero Handle never matches anything.
type Handle struct {
	group uint64 // id of the issuing group
	id    uint64 // id assigned to the child by that group
}

// Group is a graphic that exclusively owns an ordered sequence of child
// graphics. Insertion order is significant: Move, Draw, and Walk all visit
// children in the order they were added, recursively.
//
// Group is not safe for concurrent use. Callers must impose external mutual
// exclusion around Add, Remove, Move, and Dispose; concurrent Draw calls are
// safe only against each other.
//
// The zero value is not usable; use [NewGroup].
type Group struct {
	graphicNode
	gid      uint64
	childSeq uint64
	children []Graphic
	index    map[uint64]int // child id -> position in children
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{
		gid:   nextGroupID(),
		index: make(map[uint64]int),
	}
}

// Add transfers ownership of child into the group, appends it to the end of
// the child sequence, and returns a handle for later removal. The caller must
// not retain a separate owning reference afterward.
//
// Returns ErrNilChild for a nil child, ErrAlreadyOwned if child already
// belongs to a group, ErrDisposed if the group or the child has been
// disposed, and ErrCycleDetected if child is this group or one of its
// ancestors. A failed Add leaves both the group and the child unchanged.
func (g *Group) Add(child Graphic) (Handle, error) {
	if child == nil {
		return Handle{}, ErrNilChild
	}
	if g.disposed || child.node().disposed {
		return Handle{}, ErrDisposed
	}
	n := child.node()
	if n.owner != nil {
		return Handle{}, ErrAlreadyOwned
	}
	if sub, ok := child.(*Group); ok && isAncestor(sub, g) {
		return Handle{}, ErrCycleDetected
	}

	g.childSeq++
	n.id = g.childSeq
	n.owner = g
	g.index[n.id] = len(g.children)
	g.children = append(g.children, child)
	return Handle{group: g.gid, id: n.id}, nil
}

// Remove detaches and disposes the child identified by h, shrinking the
// child sequence. If h is stale (already removed), foreign (issued by
// another group), or zero, Remove is a no-op: removal is idempotent by
// design. Matching is by identity, never by value, so two structurally
// identical children remain independently removable.
func (g *Group) Remove(h Handle) {
	if g.disposed || h.group != g.gid {
		return
	}
	pos, ok := g.index[h.id]
	if !ok {
		return
	}
	child := g.children[pos]

	delete(g.index, h.id)
	copy(g.children[pos:], g.children[pos+1:])
	g.children[len(g.children)-1] = nil
	g.children = g.children[:len(g.children)-1]
	for i := pos; i < len(g.children); i++ {
		g.index[g.children[i].node().id] = i
	}

	child.node().owner = nil
	dispose(child)
}

// Move translates every child by (dx, dy), recursing into nested groups.
// A group has no position of its own; moving an empty group does nothing.
func (g *Group) Move(dx, dy int) {
	for _, c := range g.children {
		c.Move(dx, dy)
	}
}

// Draw returns the concatenation, in child insertion order, of each child's
// description. An empty group draws to an empty slice.
func (g *Group) Draw() []string {
	var out []string
	for _, c := range g.children {
		out = append(out, c.Draw()...)
	}
	return out
}

// Kind returns [KindGroup].
func (g *Group) Kind() Kind { return KindGroup }

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Children returns a copy of the child sequence in insertion order.
// Mutating the returned slice does not affect the group.
func (g *Group) Children() []Graphic {
	return slices.Clone(g.children)
}

// Walk visits the group's subtree depth-first in insertion order, calling fn
// with each graphic and its depth relative to g (the group itself is visited
// at depth 0). Walk stops early if fn returns false.
func (g *Group) Walk(fn func(gr Graphic, depth int) bool) {
	walk(g, 0, fn)
}

func walk(gr Graphic, depth int, fn func(Graphic, int) bool) bool {
	if !fn(gr, depth) {
		return false
	}
	if sub, ok := gr.(*Group); ok {
		for _, c := range sub.children {
			if !walk(c, depth+1, fn) {
				return false
			}
		}
	}
	return true
}

// Dispose detaches the group from its owner (if any) and tears down every
// graphic it still owns. Teardown is iterative with an explicit work stack,
// so stack usage is bounded regardless of tree depth. Disposing an already
// disposed group is a no-op.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	if g.owner != nil {
		g.owner.discard(g)
	}
	dispose(g)
}

// discard removes child from the child sequence without disposing it.
// Used when the child drives its own teardown.
func (g *Group) discard(child Graphic) {
	n := child.node()
	pos, ok := g.index[n.id]
	if !ok {
		return
	}
	delete(g.index, n.id)
	copy(g.children[pos:], g.children[pos+1:])
	g.children[len(g.children)-1] = nil
	g.children = g.children[:len(g.children)-1]
	for i := pos; i < len(g.children); i++ {
		g.index[g.children[i].node().id] = i
	}
	n.owner = nil
}

// dispose marks gr and every graphic below it as disposed, clearing child
// sequences as it goes. Explicit stack instead of recursion: deep trees must
// not be bounded by the call stack.
func dispose(gr Graphic) {
	stack := []Graphic{gr}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := cur.node()
		n.disposed = true
		n.owner = nil

		if sub, ok := cur.(*Group); ok {
			stack = append(stack, sub.children...)
			sub.children = nil
			sub.index = nil
		}
	}
}

// isAncestor reports whether candidate is target or one of target's
// ancestors. Each graphic has at most one owner, so the chain walk is linear
// in tree depth.
func isAncestor(candidate *Group, target *Group) bool {
	for p := target; p != nil; p = p.owner {
		if p == candidate {
			return true
		}
	}
	return false
}
