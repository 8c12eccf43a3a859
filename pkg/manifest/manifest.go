// Package manifest loads human-authored scene documents from TOML files.
//
// A scene manifest is a flat list of nodes referencing their parent by id;
// file order defines insertion order, so the built tree draws exactly in
// document order:
//
//	name = "demo"
//
//	[[nodes]]
//	id   = "root"
//	kind = "group"
//
//	[[nodes]]
//	id     = "d1"
//	kind   = "dot"
//	parent = "root"
//	x      = 10
//	y      = 20
//
//	[[nodes]]
//	id     = "c1"
//	kind   = "circle"
//	parent = "root"
//	x      = 5
//	y      = 5
//	radius = 3
//
// Exactly one node must be a parentless group; it becomes the root of the
// built tree. Validation failures are reported as structured errors from
// [github.com/matzehuels/figtree/pkg/errors].
package manifest

import (
	stderrors "errors"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/figtree/pkg/errors"
	"github.com/matzehuels/figtree/pkg/scene"
)

// Scene is a loaded manifest: a name and the built graphic tree.
type Scene struct {
	Name string
	Root *scene.Group
}

// document is the TOML shape of a manifest file.
type document struct {
	Name  string     `toml:"name"`
	Nodes []nodeSpec `toml:"nodes"`
}

type nodeSpec struct {
	ID     string `toml:"id"`
	Kind   string `toml:"kind"`
	Parent string `toml:"parent"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Radius int    `toml:"radius"`
}

// Load reads and builds a scene manifest from the TOML file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	return Parse(data)
}

// Parse builds a scene manifest from raw TOML bytes.
func Parse(data []byte) (*Scene, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest")
	}
	if len(doc.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest declares no nodes")
	}

	root, err := build(doc.Nodes)
	if err != nil {
		return nil, err
	}
	return &Scene{Name: doc.Name, Root: root}, nil
}

// build constructs the tree in two passes: create every graphic, then attach
// children to parents in file order. Attachment order is what preserves the
// document's draw order.
func build(specs []nodeSpec) (*scene.Group, error) {
	graphics := make(map[string]scene.Graphic, len(specs))
	var root *scene.Group

	for _, spec := range specs {
		if err := errors.ValidateNodeID(spec.ID); err != nil {
			return nil, err
		}
		if _, exists := graphics[spec.ID]; exists {
			return nil, errors.New(errors.ErrCodeDuplicateID, "node %q declared twice", spec.ID)
		}

		g, err := newGraphic(spec)
		if err != nil {
			return nil, err
		}
		graphics[spec.ID] = g

		if spec.Parent == "" {
			grp, ok := g.(*scene.Group)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidManifest, "root node %q must be a group", spec.ID)
			}
			if root != nil {
				return nil, errors.New(errors.ErrCodeInvalidManifest, "multiple root nodes: %q", spec.ID)
			}
			root = grp
		}
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest has no root group")
	}

	for _, spec := range specs {
		if spec.Parent == "" {
			continue
		}
		parent, ok := graphics[spec.Parent]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownParent, "node %q references unknown parent %q", spec.ID, spec.Parent)
		}
		if _, err := scene.Attach(parent, graphics[spec.ID]); err != nil {
			return nil, errors.Wrap(attachCode(err), err, "attach %q to %q", spec.ID, spec.Parent)
		}
	}
	return root, nil
}

// attachCode maps scene insertion failures to their structured codes.
func attachCode(err error) errors.Code {
	switch {
	case stderrors.Is(err, scene.ErrTypeMismatch):
		return errors.ErrCodeTypeMismatch
	case stderrors.Is(err, scene.ErrCycleDetected):
		return errors.ErrCodeCycleDetected
	default:
		return errors.ErrCodeInvalidManifest
	}
}

func newGraphic(spec nodeSpec) (scene.Graphic, error) {
	switch spec.Kind {
	case "group":
		return scene.NewGroup(), nil
	case "dot":
		return scene.NewDot(spec.X, spec.Y), nil
	case "circle":
		if spec.Radius <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "circle %q: radius must be positive", spec.ID)
		}
		return scene.NewCircle(spec.X, spec.Y, spec.Radius), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidKind, "node %q: unknown kind %q", spec.ID, spec.Kind)
	}
}
