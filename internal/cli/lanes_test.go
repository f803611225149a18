package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/slateboard/slateboard/pkg/board"
	"github.com/slateboard/slateboard/pkg/config"
	"github.com/slateboard/slateboard/pkg/lane"
)

// cliDocument is the fixture used by the command tests: two rectangles in a
// two-lane board, one per lane.
func cliDocument() *board.Document {
	return &board.Document{
		Shapes: []board.Shape{
			{ID: "a", Kind: board.KindRect, X: 0, Y: 0, Width: 100, Height: 50},
			{ID: "b", Kind: board.KindRect, X: 300, Y: 300, Width: 100, Height: 50},
		},
		Lanes: lane.Config{
			Horizontal: []lane.Definition{
				{ID: "plan", Size: 200},
				{ID: "build", Size: 300},
			},
		},
	}
}

func writeTestDocument(t *testing.T, doc *board.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	if err := board.WriteDocumentFile(doc, path); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

// execCommand runs cmd with a quiet logger and default config attached.
func execCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	ctx := withLogger(context.Background(), newLogger(io.Discard, log.InfoLevel))
	ctx = withConfig(ctx, config.Default())
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestLanesCommandJSON(t *testing.T) {
	path := writeTestDocument(t, cliDocument())

	out, err := execCommand(t, newLanesCmd(), path, "--json")
	if err != nil {
		t.Fatalf("lanes failed: %v", err)
	}

	var got lanesOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if len(got.Horizontal) != 2 {
		t.Fatalf("expected 2 horizontal bands, got %d", len(got.Horizontal))
	}
	if got.Horizontal[1].Offset != 200 {
		t.Errorf("second band offset = %g, want 200", got.Horizontal[1].Offset)
	}
	if got.Assignments["a"] != "plan" || got.Assignments["b"] != "build" {
		t.Errorf("assignments = %v", got.Assignments)
	}
}

func TestLanesCommandMissingFile(t *testing.T) {
	if _, err := execCommand(t, newLanesCmd(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGuidesCommand(t *testing.T) {
	path := writeTestDocument(t, cliDocument())

	out, err := execCommand(t, newGuidesCmd(), path, "--shape", "b", "-x", "2", "-y", "300")
	if err != nil {
		t.Fatalf("guides failed: %v", err)
	}

	var got guidesOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	want := []float64{0, 50, 100}
	if len(got.Guides.Vertical) != len(want) {
		t.Fatalf("vertical guides = %v, want %v", got.Guides.Vertical, want)
	}
	for i, v := range want {
		if got.Guides.Vertical[i] != v {
			t.Errorf("vertical[%d] = %g, want %g", i, got.Guides.Vertical[i], v)
		}
	}
}

func TestGuidesCommandUnknownShape(t *testing.T) {
	path := writeTestDocument(t, cliDocument())

	if _, err := execCommand(t, newGuidesCmd(), path, "--shape", "zz", "-x", "0", "-y", "0"); err == nil {
		t.Fatal("expected error for unknown shape")
	}
}
