package align

import (
	"math"

	"github.com/slateboard/slateboard/pkg/geom"
)

// Snap computes the corrected position that places the dragged shape
// exactly onto its best guide per axis. For each axis the closest
// in-threshold guide wins, considering the shape's leading edge,
// trailing edge and center as snap anchors; the returned coordinate is
// the shape position (X or Y) that puts the matching anchor exactly on
// the guide. An equal-spacing candidate overrides plain alignment on
// its axis. Axes without a match return nil. Callers invoke this only
// while the snap modifier key is held; it is never automatic.
func Snap(dragged geom.Rect, guides GuideSet, equal *EqualSnap, threshold float64) (x, y *float64) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	x = snapAxis(guides.Vertical, threshold,
		dragged.Left(), dragged.Right(), dragged.CenterX(), dragged.Width)
	y = snapAxis(guides.Horizontal, threshold,
		dragged.Top(), dragged.Bottom(), dragged.CenterY(), dragged.Height)

	if equal != nil {
		if equal.X != nil {
			x = equal.X
		}
		if equal.Y != nil {
			y = equal.Y
		}
	}
	return x, y
}

// snapAxis picks the closest guide within threshold of the shape's
// leading edge, trailing edge or center on one axis and returns the
// position placing that anchor exactly on the guide.
func snapAxis(coords []float64, threshold, lead, trail, center, size float64) *float64 {
	best := math.Inf(1)
	var pos float64
	found := false

	try := func(dist, candidate float64) {
		if dist <= threshold && dist < best {
			best = dist
			pos = candidate
			found = true
		}
	}

	for _, g := range coords {
		try(math.Abs(lead-g), g)
		try(math.Abs(trail-g), g-size)
		try(math.Abs(center-g), g-size/2)
	}

	if !found {
		return nil
	}
	return &pos
}
