package align

import (
	"math"

	"github.com/slateboard/slateboard/pkg/geom"
)

// EqualTolerance is the pixel difference under which two adjacent gaps
// count as equally spaced.
const EqualTolerance = 8.0

// GapAxis identifies the axis a gap is measured along.
type GapAxis string

const (
	// GapX is a horizontal edge-to-edge measurement.
	GapX GapAxis = "x"
	// GapY is a vertical edge-to-edge measurement.
	GapY GapAxis = "y"
)

// Gap is one measured edge-to-edge distance between the dragged shape
// and its nearest facing neighbor on one side. LineStart and LineEnd
// are the gap's extent along the measured axis (the facing edges);
// CrossPos is the constant coordinate on the perpendicular axis where
// the measurement line is drawn, centered in the shapes' overlap.
type Gap struct {
	Axis      GapAxis `json:"axis" bson:"axis"`
	LineStart float64 `json:"line_start" bson:"line_start"`
	LineEnd   float64 `json:"line_end" bson:"line_end"`
	CrossPos  float64 `json:"cross_pos" bson:"cross_pos"`
	Distance  float64 `json:"distance" bson:"distance"`
	IsEqual   bool    `json:"is_equal,omitempty" bson:"is_equal,omitempty"`
}

// EqualSnap holds the corrected coordinate(s) that would make the two
// gaps flanking the dragged shape exactly equal. Only axes with an
// equal-spacing candidate are set.
type EqualSnap struct {
	X *float64 `json:"x,omitempty" bson:"x,omitempty"`
	Y *float64 `json:"y,omitempty" bson:"y,omitempty"`
}

// neighbor is the closest facing shape on one side of the dragged
// shape, with its non-negative edge-to-edge gap.
type neighbor struct {
	shape geom.Rect
	gap   float64
	found bool
}

// FindGaps measures the dragged shape's edge-to-edge distance to its
// nearest facing neighbor on each side of each axis. A neighbor faces
// the dragged shape when the two overlap on the perpendicular axis.
// When the gaps on both sides of one axis differ by no more than
// tolerance, both gaps are marked IsEqual and the returned EqualSnap
// carries the position that equalizes them exactly. With fewer than
// two facing neighbors on an axis only plain gaps are returned. A
// non-positive tolerance falls back to EqualTolerance.
func FindGaps(dragged geom.Rect, shapes []geom.Rect, tolerance float64) ([]Gap, *EqualSnap) {
	if tolerance <= 0 {
		tolerance = EqualTolerance
	}

	var left, right, above, below neighbor
	left.gap, right.gap = math.Inf(1), math.Inf(1)
	above.gap, below.gap = math.Inf(1), math.Inf(1)

	for _, o := range shapes {
		if o.ID == dragged.ID {
			continue
		}

		if overlaps(dragged.Top(), dragged.Bottom(), o.Top(), o.Bottom()) {
			if g := dragged.Left() - o.Right(); g >= 0 {
				consider(&left, o, g)
			}
			if g := o.Left() - dragged.Right(); g >= 0 {
				consider(&right, o, g)
			}
		}
		if overlaps(dragged.Left(), dragged.Right(), o.Left(), o.Right()) {
			if g := dragged.Top() - o.Bottom(); g >= 0 {
				consider(&above, o, g)
			}
			if g := o.Top() - dragged.Bottom(); g >= 0 {
				consider(&below, o, g)
			}
		}
	}

	var gaps []Gap
	var snap EqualSnap

	lg, li := gapX(dragged, left, true)
	rg, ri := gapX(dragged, right, false)
	if left.found && right.found && math.Abs(left.gap-right.gap) <= tolerance {
		lg.IsEqual, rg.IsEqual = true, true
		// Center the dragged shape between the facing edges.
		x := (left.shape.Right() + right.shape.Left() - dragged.Width) / 2
		snap.X = &x
	}
	if li {
		gaps = append(gaps, lg)
	}
	if ri {
		gaps = append(gaps, rg)
	}

	ag, ai := gapY(dragged, above, true)
	bg, bi := gapY(dragged, below, false)
	if above.found && below.found && math.Abs(above.gap-below.gap) <= tolerance {
		ag.IsEqual, bg.IsEqual = true, true
		y := (above.shape.Bottom() + below.shape.Top() - dragged.Height) / 2
		snap.Y = &y
	}
	if ai {
		gaps = append(gaps, ag)
	}
	if bi {
		gaps = append(gaps, bg)
	}

	if snap.X == nil && snap.Y == nil {
		return gaps, nil
	}
	return gaps, &snap
}

// consider keeps o as the side's neighbor when its gap is strictly
// smaller, breaking exact ties by ID so the result does not depend on
// input order.
func consider(n *neighbor, o geom.Rect, gap float64) {
	if gap < n.gap || (gap == n.gap && n.found && o.ID < n.shape.ID) {
		n.shape = o
		n.gap = gap
		n.found = true
	}
}

func overlaps(aStart, aEnd, bStart, bEnd float64) bool {
	return aStart < bEnd && bStart < aEnd
}

func gapX(d geom.Rect, n neighbor, leftSide bool) (Gap, bool) {
	if !n.found {
		return Gap{}, false
	}
	g := Gap{
		Axis:     GapX,
		CrossPos: overlapMid(d.Top(), d.Bottom(), n.shape.Top(), n.shape.Bottom()),
		Distance: roundDisplay(n.gap),
	}
	if leftSide {
		g.LineStart, g.LineEnd = n.shape.Right(), d.Left()
	} else {
		g.LineStart, g.LineEnd = d.Right(), n.shape.Left()
	}
	return g, true
}

func gapY(d geom.Rect, n neighbor, aboveSide bool) (Gap, bool) {
	if !n.found {
		return Gap{}, false
	}
	g := Gap{
		Axis:     GapY,
		CrossPos: overlapMid(d.Left(), d.Right(), n.shape.Left(), n.shape.Right()),
		Distance: roundDisplay(n.gap),
	}
	if aboveSide {
		g.LineStart, g.LineEnd = n.shape.Bottom(), d.Top()
	} else {
		g.LineStart, g.LineEnd = d.Bottom(), n.shape.Top()
	}
	return g, true
}

// overlapMid returns the midpoint of the two spans' intersection, the
// natural place to draw a measurement line between facing shapes.
func overlapMid(aStart, aEnd, bStart, bEnd float64) float64 {
	start := math.Max(aStart, bStart)
	end := math.Min(aEnd, bEnd)
	return (start + end) / 2
}

// roundDisplay rounds a distance to two decimals for display labels.
func roundDisplay(v float64) float64 {
	return math.Round(v*100) / 100
}
