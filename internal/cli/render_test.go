package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sceneio "github.com/matzehuels/figtree/pkg/io"
	"github.com/matzehuels/figtree/pkg/scene"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"text only", "text", []string{"text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid dot", []string{"dot"}, false},
		{"valid text", []string{"text"}, false},
		{"valid multiple", []string{"svg", "pdf", "png"}, false},
		{"invalid format", []string{"invalid"}, true},
		{"mixed valid invalid", []string{"svg", "invalid"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"empty output strips input extension", "", "scene.json", "scene"},
		{"output with format extension", "out.svg", "scene.json", "out"},
		{"output without extension", "out", "scene.json", "out"},
		{"output with unrelated extension", "out.backup", "scene.json", "out.backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExt(t *testing.T) {
	if got := formatExt("text"); got != "txt" {
		t.Errorf("formatExt(text) = %q, want txt", got)
	}
	if got := formatExt("svg"); got != "svg" {
		t.Errorf("formatExt(svg) = %q, want svg", got)
	}
}

// writeTestScene stores a small two-leaf scene as a JSON document and returns
// its path.
func writeTestScene(t *testing.T, dir string) string {
	t.Helper()

	root := scene.NewGroup()
	t.Cleanup(root.Dispose)
	if _, err := root.Add(scene.NewDot(10, 20)); err != nil {
		t.Fatalf("add dot: %v", err)
	}
	if _, err := root.Add(scene.NewCircle(5, 5, 3)); err != nil {
		t.Fatalf("add circle: %v", err)
	}

	path := filepath.Join(dir, "scene.json")
	if err := sceneio.ExportJSON(root, path); err != nil {
		t.Fatalf("export scene: %v", err)
	}
	return path
}

func TestRunRenderText(t *testing.T) {
	dir := t.TempDir()
	input := writeTestScene(t, dir)
	output := filepath.Join(dir, "scene.txt")

	opts := renderOpts{output: output, formats: []string{"text"}}
	if err := runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "Dot(10,20)\nCircle(5,5,r=3)\n"
	if string(data) != want {
		t.Errorf("text output = %q, want %q", data, want)
	}
}

func TestRunRenderDOT(t *testing.T) {
	dir := t.TempDir()
	input := writeTestScene(t, dir)
	output := filepath.Join(dir, "scene.dot")

	opts := renderOpts{output: output, formats: []string{"dot"}, detailed: true}
	if err := runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	dot := string(data)
	if !strings.Contains(dot, "digraph") {
		t.Errorf("dot output missing digraph header: %q", dot)
	}
	if !strings.Contains(dot, "Dot(10,20)") {
		t.Errorf("dot output missing leaf label: %q", dot)
	}
}

func TestRunRenderMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	input := writeTestScene(t, dir)

	opts := renderOpts{
		output:  filepath.Join(dir, "out"),
		formats: []string{"dot", "text"},
	}
	if err := runRender(context.Background(), input, &opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	for _, name := range []string{"out.dot", "out.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected output %s: %v", name, err)
		}
	}
}
