package io

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/figtree/pkg/scene"
)

func TestRoundTrip(t *testing.T) {
	root := scene.NewGroup()
	sub := scene.NewGroup()
	if _, err := root.Add(scene.NewDot(10, 20)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := sub.Add(scene.NewCircle(5, 5, 3)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := root.Add(sub); err != nil {
		t.Fatalf("add: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	// Structural equality through the draw representation.
	if want := root.Draw(); !slices.Equal(got.Draw(), want) {
		t.Errorf("round-trip Draw() = %v, want %v", got.Draw(), want)
	}
	grp, ok := got.(*scene.Group)
	if !ok {
		t.Fatalf("imported root is %T, want *scene.Group", got)
	}
	if grp.Len() != 2 {
		t.Errorf("imported root has %d children, want 2", grp.Len())
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")

	root := scene.NewGroup()
	if _, err := root.Add(scene.NewDot(1, 2)); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := ExportJSON(root, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if want := []string{"Dot(1,2)"}; !slices.Equal(got.Draw(), want) {
		t.Errorf("Draw() = %v, want %v", got.Draw(), want)
	}
}

func TestReadJSON_leafDocument(t *testing.T) {
	got, err := ReadJSON(strings.NewReader(`{"kind":"circle","x":1,"y":2,"radius":4}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if _, ok := got.(*scene.Circle); !ok {
		t.Errorf("got %T, want *scene.Circle", got)
	}
}

func TestReadJSON_errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown kind", `{"kind":"square"}`, `unknown kind "square"`},
		{"leaf with children", `{"kind":"dot","children":[{"kind":"dot"}]}`, "leaf node carries children"},
		{"bad radius", `{"kind":"group","children":[{"kind":"circle","radius":0}]}`, "radius must be positive"},
		{"malformed", `{"kind":`, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestReadJSON_errorPath(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(
		`{"kind":"group","children":[{"kind":"group","children":[{"kind":"blob"}]}]}`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "$.children[0].children[0]") {
		t.Errorf("error should carry node path, got: %v", err)
	}
}
