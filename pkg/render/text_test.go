package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/figtree/pkg/scene"
)

func buildScene(t *testing.T) *scene.Group {
	t.Helper()
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
	return root
}

func TestLines(t *testing.T) {
	root := buildScene(t)

	want := []string{"Dot(10,20)", "Circle(5,5,r=3)"}
	if got := Lines(root); !slices.Equal(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestOutline(t *testing.T) {
	root := buildScene(t)

	want := strings.Join([]string{
		"group (2 children)",
		"  Dot(10,20)",
		"  group (1 children)",
		"    Circle(5,5,r=3)",
		"",
	}, "\n")
	if got := Outline(root); got != want {
		t.Errorf("Outline() =\n%s\nwant:\n%s", got, want)
	}
}

func TestOutline_bareLeaf(t *testing.T) {
	if got := Outline(scene.NewDot(1, 2)); got != "Dot(1,2)\n" {
		t.Errorf("Outline(leaf) = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	root := buildScene(t)

	s := Summarize(root)
	if s.Nodes != 4 || s.Leaves != 2 || s.Groups != 2 || s.Depth != 2 {
		t.Errorf("Summarize() = %+v, want {Nodes:4 Leaves:2 Groups:2 Depth:2}", s)
	}

	if s := Summarize(scene.NewDot(0, 0)); s.Nodes != 1 || s.Leaves != 1 || s.Depth != 0 {
		t.Errorf("Summarize(leaf) = %+v", s)
	}
}
