package align

import (
	"math"
	"testing"

	"github.com/slateboard/slateboard/pkg/geom"
)

func TestFindGapsNearestNeighborPerSide(t *testing.T) {
	dragged := geom.Rect{ID: "d", X: 300, Y: 0, Width: 100, Height: 50}
	shapes := []geom.Rect{
		dragged,
		{ID: "far-left", X: 0, Y: 0, Width: 50, Height: 50},    // gap 250
		{ID: "near-left", X: 150, Y: 0, Width: 100, Height: 50}, // gap 50
		{ID: "right", X: 460, Y: 0, Width: 80, Height: 50},      // gap 60
	}

	gaps, snap := FindGaps(dragged, shapes, EqualTolerance)

	if len(gaps) != 2 {
		t.Fatalf("got %d gaps, want 2: %+v", len(gaps), gaps)
	}
	left, right := gaps[0], gaps[1]
	if left.Distance != 50 {
		t.Errorf("left gap distance = %v, want 50 (nearest neighbor)", left.Distance)
	}
	if left.LineStart != 250 || left.LineEnd != 300 {
		t.Errorf("left gap line = [%v,%v], want [250,300]", left.LineStart, left.LineEnd)
	}
	if right.Distance != 60 {
		t.Errorf("right gap distance = %v, want 60", right.Distance)
	}
	if right.LineStart != 400 || right.LineEnd != 460 {
		t.Errorf("right gap line = [%v,%v], want [400,460]", right.LineStart, right.LineEnd)
	}

	// 50 vs 60 differ by more than the tolerance: no equal spacing.
	if snap != nil {
		t.Errorf("unexpected equal-spacing snap %+v", snap)
	}
	for _, g := range gaps {
		if g.IsEqual {
			t.Errorf("gap unexpectedly marked equal: %+v", g)
		}
	}
}

func TestFindGapsEqualSpacing(t *testing.T) {
	// Zero-width sentinels at x=0, dragged at 100, right at 205:
	// gaps are 100 and 105, within tolerance 8.
	dragged := geom.Rect{ID: "d", X: 100, Y: 0, Width: 0, Height: 50}
	shapes := []geom.Rect{
		dragged,
		{ID: "l", X: 0, Y: 0, Width: 0, Height: 50},
		{ID: "r", X: 205, Y: 0, Width: 0, Height: 50},
	}

	gaps, snap := FindGaps(dragged, shapes, 8)

	if len(gaps) != 2 {
		t.Fatalf("got %d gaps, want 2", len(gaps))
	}
	for _, g := range gaps {
		if !g.IsEqual {
			t.Errorf("gap not marked equal: %+v", g)
		}
	}
	if snap == nil || snap.X == nil {
		t.Fatal("expected an equal-spacing snap on x")
	}
	if *snap.X != 102.5 {
		t.Errorf("snap.X = %v, want 102.5", *snap.X)
	}
	if snap.Y != nil {
		t.Errorf("unexpected snap.Y = %v", *snap.Y)
	}

	// Applying the snap makes both gaps exactly equal.
	snapped := dragged
	snapped.X = *snap.X
	leftGap := snapped.Left() - 0
	rightGap := 205 - snapped.Right()
	if math.Abs(leftGap-rightGap) > 1e-9 {
		t.Errorf("after snap gaps are %v and %v, want equal", leftGap, rightGap)
	}
}

func TestFindGapsEqualSpacingWithWidths(t *testing.T) {
	// Facing edges at 100 and 360 around a 100-wide shape: centering
	// gives two 80px gaps.
	dragged := geom.Rect{ID: "d", X: 178, Y: 0, Width: 100, Height: 50}
	shapes := []geom.Rect{
		dragged,
		{ID: "l", X: 0, Y: 0, Width: 100, Height: 50},
		{ID: "r", X: 360, Y: 0, Width: 100, Height: 50},
	}

	_, snap := FindGaps(dragged, shapes, 8)
	if snap == nil || snap.X == nil {
		t.Fatal("expected an equal-spacing snap on x")
	}
	if *snap.X != 180 {
		t.Errorf("snap.X = %v, want 180", *snap.X)
	}
}

func TestFindGapsVerticalAxis(t *testing.T) {
	dragged := geom.Rect{ID: "d", X: 0, Y: 200, Width: 100, Height: 50}
	shapes := []geom.Rect{
		dragged,
		{ID: "above", X: 0, Y: 100, Width: 100, Height: 60}, // bottom 160, gap 40
		{ID: "below", X: 0, Y: 294, Width: 100, Height: 50}, // top 294, gap 44
	}

	gaps, snap := FindGaps(dragged, shapes, 8)

	if len(gaps) != 2 {
		t.Fatalf("got %d gaps, want 2", len(gaps))
	}
	for _, g := range gaps {
		if g.Axis != GapY {
			t.Errorf("gap axis = %q, want %q", g.Axis, GapY)
		}
		if !g.IsEqual {
			t.Errorf("gap not marked equal: %+v", g)
		}
	}
	if snap == nil || snap.Y == nil {
		t.Fatal("expected an equal-spacing snap on y")
	}
	// Facing edges at 160 and 294; centering a 50-high shape gives 202.
	if *snap.Y != 202 {
		t.Errorf("snap.Y = %v, want 202", *snap.Y)
	}
}

func TestFindGapsRequiresCrossOverlap(t *testing.T) {
	// The other shape sits fully below the dragged one; no vertical
	// overlap means no horizontal gap is measured.
	dragged := geom.Rect{ID: "d", X: 300, Y: 0, Width: 100, Height: 50}
	shapes := []geom.Rect{
		dragged,
		{ID: "o", X: 0, Y: 200, Width: 100, Height: 50},
	}

	gaps, snap := FindGaps(dragged, shapes, 8)
	if len(gaps) != 0 || snap != nil {
		t.Errorf("got gaps %+v snap %+v, want none", gaps, snap)
	}
}

func TestFindGapsSingleNeighborNoEqual(t *testing.T) {
	dragged := geom.Rect{ID: "d", X: 300, Y: 0, Width: 100, Height: 50}
	shapes := []geom.Rect{
		dragged,
		{ID: "l", X: 100, Y: 0, Width: 100, Height: 50},
	}

	gaps, snap := FindGaps(dragged, shapes, 8)
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1", len(gaps))
	}
	if gaps[0].IsEqual || snap != nil {
		t.Errorf("single-sided gap must not produce equal spacing: %+v %+v", gaps[0], snap)
	}
}

func TestFindGapsTieBreakByID(t *testing.T) {
	// Two left neighbors at the same distance; the lexicographically
	// smaller ID wins regardless of input order.
	dragged := geom.Rect{ID: "d", X: 300, Y: 0, Width: 100, Height: 200}
	a := geom.Rect{ID: "a", X: 100, Y: 0, Width: 100, Height: 50}
	b := geom.Rect{ID: "b", X: 100, Y: 100, Width: 100, Height: 50}

	gapsAB, _ := FindGaps(dragged, []geom.Rect{dragged, a, b}, 8)
	gapsBA, _ := FindGaps(dragged, []geom.Rect{dragged, b, a}, 8)

	if len(gapsAB) != 1 || len(gapsBA) != 1 {
		t.Fatalf("expected one gap per run, got %d and %d", len(gapsAB), len(gapsBA))
	}
	if gapsAB[0].CrossPos != gapsBA[0].CrossPos {
		t.Errorf("tie broken inconsistently: crossPos %v vs %v", gapsAB[0].CrossPos, gapsBA[0].CrossPos)
	}
	// a spans y 0-50, dragged y 0-200: overlap midpoint 25.
	if gapsAB[0].CrossPos != 25 {
		t.Errorf("crossPos = %v, want 25 (neighbor a)", gapsAB[0].CrossPos)
	}
}
