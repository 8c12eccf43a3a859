package scene

import "errors"

var (
	// ErrNilChild is returned by [Group.Add] and [Attach] when the child is
	// nil. Groups own only concrete graphics.
	ErrNilChild = errors.New("child must not be nil")

	// ErrAlreadyOwned is returned by [Group.Add] and [Attach] when the child
	// already belongs to a group. Ownership is singular and transfers on Add;
	// a graphic must be removed from its current owner before it can be added
	// elsewhere.
	ErrAlreadyOwned = errors.New("graphic already has an owner")

	// ErrCycleDetected is returned by [Group.Add] and [Attach] when inserting
	// the child would make a group a descendant of itself. The check walks the
	// ancestor chain of the target group, so a rejected Add leaves the tree
	// unchanged.
	ErrCycleDetected = errors.New("insertion would create a cycle")

	// ErrDisposed is returned by [Group.Add] and [Attach] when either the
	// group or the child has been disposed. Disposal is one-directional:
	// a disposed graphic never re-enters a tree.
	ErrDisposed = errors.New("graphic is disposed")

	// ErrTypeMismatch is returned by [Attach] and [Detach] when a
	// container-only operation targets a graphic whose kind is [KindLeaf].
	ErrTypeMismatch = errors.New("graphic is not a group")
)

// Kind is the structural tag of a graphic, fixed at construction.
type Kind int

const (
	// KindLeaf marks a terminal graphic with no children.
	KindLeaf Kind = iota
	// KindGroup marks a graphic that owns an ordered sequence of children.
	KindGroup
)

// String returns "leaf" or "group".
func (k Kind) String() string {
	if k == KindGroup {
		return "group"
	}
	return "leaf"
}

// Graphic is the capability every scene element implements.
//
// The implementation set is closed: [Dot], [Circle], and [Group]. External
// types cannot satisfy Graphic, which keeps ownership tracking and kind
// dispatch sound without runtime casts.
type Graphic interface {
	// Move translates the graphic's own position by (dx, dy). Groups
	// recursively translate every descendant by the same delta. Move
	// always succeeds.
	Move(dx, dy int)

	// Draw returns the textual description of the graphic, one line per
	// leaf, in depth-first insertion order. Draw does not mutate the tree.
	Draw() []string

	// Kind reports the structural kind of the graphic. It never fails and
	// never changes after construction.
	Kind() Kind

	// node exposes the shared ownership state. Unexported to seal the
	// interface.
	node() *graphicNode
}

// graphicNode carries the ownership state embedded by every concrete graphic.
// The id is assigned by the owning group at Add time and is meaningless while
// the graphic is unowned.
type graphicNode struct {
	owner    *Group
	id       uint64
	disposed bool
}

func (n *graphicNode) node() *graphicNode { return n }

// Owned reports whether the graphic currently belongs to a group.
func Owned(g Graphic) bool {
	return g != nil && g.node().owner != nil
}

// Disposed reports whether the graphic has been disposed, either explicitly
// or by the teardown of an owning group.
func Disposed(g Graphic) bool {
	return g != nil && g.node().disposed
}

// Attach adds child to parent and returns the child's handle. It is the
// kind-checked entry point for callers holding a plain [Graphic]: if parent
// is a leaf, Attach fails with [ErrTypeMismatch] and the tree is unchanged.
func Attach(parent, child Graphic) (Handle, error) {
	g, ok := parent.(*Group)
	if !ok {
		return Handle{}, ErrTypeMismatch
	}
	return g.Add(child)
}

// Detach removes the graphic identified by h from parent. Like Attach it
// fails with [ErrTypeMismatch] when parent is a leaf; a stale or foreign
// handle is a no-op, not an error.
func Detach(parent Graphic, h Handle) error {
	g, ok := parent.(*Group)
	if !ok {
		return ErrTypeMismatch
	}
	g.Remove(h)
	return nil
}
