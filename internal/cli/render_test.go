package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"board.json", "svg", "board.svg"},
		{"board", "dot", "board.dot"},
		{"dir.v2/board", "png", "dir.v2/board.png"},
		{"dir/board.v1.json", "svg", "dir/board.v1.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := replaceExt(tt.path, tt.ext); got != tt.want {
				t.Errorf("replaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}

func TestValidateRenderOpts(t *testing.T) {
	if err := validateRenderOpts(&renderOpts{format: "svg"}); err != nil {
		t.Errorf("svg should be valid: %v", err)
	}
	if err := validateRenderOpts(&renderOpts{format: "pdf"}); err == nil {
		t.Error("pdf should be rejected")
	}
	if err := validateRenderOpts(&renderOpts{format: "svg", graphviz: true, shape: "a"}); err == nil {
		t.Error("--graphviz with --shape should be rejected")
	}
}

func TestRenderCommandSVG(t *testing.T) {
	path := writeTestDocument(t, cliDocument())
	out := filepath.Join(t.TempDir(), "board.svg")

	if _, err := execCommand(t, newRenderCmd(), path, "-o", out, "-f", "svg"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") {
		t.Error("output is not SVG")
	}
	for _, id := range []string{"a", "b"} {
		if !strings.Contains(svg, id) {
			t.Errorf("output missing shape %q", id)
		}
	}
}

func TestRenderCommandDOT(t *testing.T) {
	path := writeTestDocument(t, cliDocument())
	out := filepath.Join(t.TempDir(), "board.dot")

	if _, err := execCommand(t, newRenderCmd(), path, "-o", out, "-f", "dot"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "digraph") {
		t.Error("output is not DOT")
	}
}
