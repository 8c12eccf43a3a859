package manifest

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/figtree/pkg/errors"
)

const demoManifest = `
name = "demo"

[[nodes]]
id   = "root"
kind = "group"

[[nodes]]
id     = "d1"
kind   = "dot"
parent = "root"
x      = 10
y      = 20

[[nodes]]
id     = "sub"
kind   = "group"
parent = "root"

[[nodes]]
id     = "c1"
kind   = "circle"
parent = "sub"
x      = 5
y      = 5
radius = 3
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(demoManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name != "demo" {
		t.Errorf("Name = %q, want %q", s.Name, "demo")
	}
	if s.Root.Len() != 2 {
		t.Errorf("root children = %d, want 2", s.Root.Len())
	}

	want := []string{"Dot(10,20)", "Circle(5,5,r=3)"}
	if got := s.Root.Draw(); !slices.Equal(got, want) {
		t.Errorf("Draw() = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(demoManifest), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Root.Len() != 2 {
		t.Errorf("root children = %d, want 2", s.Root.Len())
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestParse_validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{
			name: "empty",
			doc:  `name = "x"`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "unknown kind",
			doc: `[[nodes]]
id = "root"
kind = "square"`,
			code: errors.ErrCodeInvalidKind,
		},
		{
			name: "duplicate id",
			doc: `[[nodes]]
id = "root"
kind = "group"

[[nodes]]
id = "root"
kind = "group"
parent = "root"`,
			code: errors.ErrCodeDuplicateID,
		},
		{
			name: "unknown parent",
			doc: `[[nodes]]
id = "root"
kind = "group"

[[nodes]]
id = "d"
kind = "dot"
parent = "ghost"`,
			code: errors.ErrCodeUnknownParent,
		},
		{
			name: "leaf root",
			doc: `[[nodes]]
id = "root"
kind = "dot"`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "two roots",
			doc: `[[nodes]]
id = "a"
kind = "group"

[[nodes]]
id = "b"
kind = "group"`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "leaf parent",
			doc: `[[nodes]]
id = "root"
kind = "group"

[[nodes]]
id = "d"
kind = "dot"
parent = "root"

[[nodes]]
id = "d2"
kind = "dot"
parent = "d"`,
			code: errors.ErrCodeTypeMismatch,
		},
		{
			name: "self parent",
			doc: `[[nodes]]
id = "root"
kind = "group"

[[nodes]]
id = "g"
kind = "group"
parent = "g"`,
			code: errors.ErrCodeCycleDetected,
		},
		{
			name: "bad radius",
			doc: `[[nodes]]
id = "root"
kind = "group"

[[nodes]]
id = "c"
kind = "circle"
parent = "root"
radius = -1`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "malformed toml",
			doc:  `[[nodes`,
			code: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}
