package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sceneio "github.com/matzehuels/figtree/pkg/io"
)

const testManifest = `name = "test scene"

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
id     = "c1"
kind   = "circle"
parent = "root"
x      = 5
y      = 5
radius = 3
`

func TestRunBuild(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(input, []byte(testManifest), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	output := filepath.Join(dir, "scene.json")
	opts := buildOpts{output: output}
	if err := runBuild(context.Background(), input, &opts); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	g, err := sceneio.ImportJSON(output)
	if err != nil {
		t.Fatalf("import built scene: %v", err)
	}
	lines := g.Draw()
	want := []string{"Dot(10,20)", "Circle(5,5,r=3)"}
	if len(lines) != len(want) {
		t.Fatalf("Draw() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Draw()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRunBuildDerivesOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(input, []byte(testManifest), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	opts := buildOpts{}
	if err := runBuild(context.Background(), input, &opts); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "scene.json")); err != nil {
		t.Errorf("expected derived output scene.json: %v", err)
	}
}

func TestRunBuildInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(input, []byte("[[nodes]]\nid = \"only\"\nkind = \"dot\"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	opts := buildOpts{output: filepath.Join(dir, "out.json")}
	if err := runBuild(context.Background(), input, &opts); err == nil {
		t.Error("runBuild() with leaf root should fail")
	}
}

func TestRunDemo(t *testing.T) {
	if err := runDemo(context.Background()); err != nil {
		t.Errorf("runDemo() error = %v", err)
	}
}
