package lane

import (
	"testing"

	"github.com/slateboard/slateboard/pkg/geom"
)

func TestAssign(t *testing.T) {
	bounds := []Boundary{
		{LaneID: "top", Offset: 0, Size: 100},
		{LaneID: "bottom", Offset: 100, Size: 100},
	}

	tests := []struct {
		name   string
		center float64
		wantID string
		wantOK bool
	}{
		{name: "inside first band", center: 50, wantID: "top", wantOK: true},
		{name: "start of first band", center: 0, wantID: "top", wantOK: true},
		{name: "divider belongs to the next band", center: 100, wantID: "bottom", wantOK: true},
		{name: "inside second band", center: 199.999, wantID: "bottom", wantOK: true},
		{name: "end of last band is outside", center: 200, wantOK: false},
		{name: "before first band", center: -1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Assign(bounds, tt.center)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("Assign(%v) = (%q,%v), want (%q,%v)", tt.center, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestAssignDividerClaimedOnce(t *testing.T) {
	bounds := []Boundary{
		{LaneID: "a", Offset: 0, Size: 100},
		{LaneID: "b", Offset: 100, Size: 100},
		{LaneID: "c", Offset: 200, Size: 100},
	}

	for _, divider := range []float64{0, 100, 200} {
		claims := 0
		for _, b := range bounds {
			if b.Contains(divider) {
				claims++
			}
		}
		if claims != 1 {
			t.Errorf("divider %v claimed by %d bands, want exactly 1", divider, claims)
		}
	}
}

func TestResolve(t *testing.T) {
	cfg := Config{
		Horizontal: []Definition{
			{ID: "h0", Size: 100, Order: 0},
			{ID: "h1", Size: 100, Order: 1},
		},
		Vertical: []Definition{
			{ID: "v0", Size: 150, Order: 0},
			{ID: "v1", Size: 150, Order: 1},
		},
	}
	offset := geom.Point{X: 10, Y: 20}

	tests := []struct {
		name   string
		rect   geom.Rect
		wantID string
		wantOK bool
	}{
		{
			// y-center 70, lane-local 50 → h0
			name:   "horizontal lane wins",
			rect:   geom.Rect{X: 50, Y: 40, Width: 80, Height: 60},
			wantID: "h0",
			wantOK: true,
		},
		{
			// y-center 290, lane-local 270, beyond horizontal bands;
			// x-center 90, lane-local 80 → v0
			name:   "falls through to vertical",
			rect:   geom.Rect{X: 50, Y: 260, Width: 80, Height: 60},
			wantID: "v0",
			wantOK: true,
		},
		{
			// outside both axes
			name:   "unassigned",
			rect:   geom.Rect{X: 400, Y: 400, Width: 80, Height: 60},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Resolve(cfg, tt.rect, offset)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("Resolve() = (%q,%v), want (%q,%v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestResolveMatrixSingleAssignment(t *testing.T) {
	// In matrix mode a shape inside both a horizontal and a vertical
	// band gets only the horizontal lane id.
	cfg := Config{
		Horizontal: []Definition{{ID: "row", Size: 500, Order: 0}},
		Vertical:   []Definition{{ID: "col", Size: 500, Order: 0}},
	}

	id, ok := Resolve(cfg, geom.Rect{X: 100, Y: 100, Width: 50, Height: 50}, geom.Point{})
	if !ok || id != "row" {
		t.Fatalf("Resolve() = (%q,%v), want (row,true)", id, ok)
	}
}

func TestResolveHeaderOffsets(t *testing.T) {
	cfg := Config{
		Horizontal:    []Definition{{ID: "h", Size: 100, Order: 0}},
		Vertical:      []Definition{{ID: "v", Size: 100, Order: 0}},
		HHeaderWidth:  40,
		VHeaderHeight: 32,
	}

	hb := cfg.HorizontalBoundaries()
	if hb[0].Offset != 32 {
		t.Errorf("horizontal band offset = %v, want 32", hb[0].Offset)
	}
	vb := cfg.VerticalBoundaries()
	if vb[0].Offset != 40 {
		t.Errorf("vertical band offset = %v, want 40", vb[0].Offset)
	}

	// A shape above the first horizontal band (inside the header strip)
	// is unassigned on y but can match a vertical band on x.
	id, ok := Resolve(cfg, geom.Rect{X: 60, Y: 0, Width: 40, Height: 20}, geom.Point{})
	if !ok || id != "v" {
		t.Fatalf("Resolve() = (%q,%v), want (v,true)", id, ok)
	}
}
