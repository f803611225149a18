package align

import (
	"math"
	"sort"

	"github.com/slateboard/slateboard/pkg/geom"
)

// DefaultThreshold is the pixel distance within which an edge or center
// counts as aligned. Typical editor values are 6-8 pixels.
const DefaultThreshold = 8.0

// GuideSet holds the alignment guide coordinates found for one drag
// frame. Vertical guides are x coordinates, horizontal guides are y
// coordinates, both in canvas space, deduplicated and sorted ascending.
type GuideSet struct {
	Vertical   []float64 `json:"vertical" bson:"vertical"`
	Horizontal []float64 `json:"horizontal" bson:"horizontal"`
}

// Empty reports whether no guides were found on either axis.
func (g GuideSet) Empty() bool {
	return len(g.Vertical) == 0 && len(g.Horizontal) == 0
}

// FindGuides scans all shapes once and collects the coordinates where
// the dragged shape's edges or center nearly coincide with another
// shape's edges or center. Per axis, five pairs are compared:
// left/left, right/right, center/center, left/right and right/left
// (top/bottom/center on y). When a pair is within threshold the OTHER
// shape's coordinate is added, so snapping onto it lands exactly on the
// stationary geometry. The dragged shape is skipped by ID. A
// non-positive threshold falls back to DefaultThreshold.
func FindGuides(dragged geom.Rect, shapes []geom.Rect, threshold float64) GuideSet {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	vertical := map[float64]struct{}{}
	horizontal := map[float64]struct{}{}

	near := func(a, b float64) bool { return math.Abs(a-b) <= threshold }

	for _, o := range shapes {
		if o.ID == dragged.ID {
			continue
		}

		// x axis: vertical guide lines
		if near(dragged.Left(), o.Left()) {
			vertical[o.Left()] = struct{}{}
		}
		if near(dragged.Right(), o.Right()) {
			vertical[o.Right()] = struct{}{}
		}
		if near(dragged.CenterX(), o.CenterX()) {
			vertical[o.CenterX()] = struct{}{}
		}
		if near(dragged.Left(), o.Right()) {
			vertical[o.Right()] = struct{}{}
		}
		if near(dragged.Right(), o.Left()) {
			vertical[o.Left()] = struct{}{}
		}

		// y axis: horizontal guide lines
		if near(dragged.Top(), o.Top()) {
			horizontal[o.Top()] = struct{}{}
		}
		if near(dragged.Bottom(), o.Bottom()) {
			horizontal[o.Bottom()] = struct{}{}
		}
		if near(dragged.CenterY(), o.CenterY()) {
			horizontal[o.CenterY()] = struct{}{}
		}
		if near(dragged.Top(), o.Bottom()) {
			horizontal[o.Bottom()] = struct{}{}
		}
		if near(dragged.Bottom(), o.Top()) {
			horizontal[o.Top()] = struct{}{}
		}
	}

	return GuideSet{
		Vertical:   sortedKeys(vertical),
		Horizontal: sortedKeys(horizontal),
	}
}

func sortedKeys(set map[float64]struct{}) []float64 {
	if len(set) == 0 {
		return nil
	}
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
