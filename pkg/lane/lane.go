package lane

import (
	"sort"
)

// CollapsedSize is the fixed band size of a collapsed lane, regardless
// of its stored size.
const CollapsedSize = 32.0

// Axis identifies which board axis a lane set partitions.
type Axis string

const (
	// Horizontal lanes are full-width bands stacked along y.
	Horizontal Axis = "horizontal"
	// Vertical lanes are full-height bands stacked along x.
	Vertical Axis = "vertical"
)

// Definition describes one lane as authored on the board.
type Definition struct {
	ID        string  `json:"id" bson:"id"`
	Label     string  `json:"label,omitempty" bson:"label,omitempty"`
	Size      float64 `json:"size" bson:"size"`
	Collapsed bool    `json:"collapsed,omitempty" bson:"collapsed,omitempty"`
	Order     int     `json:"order" bson:"order"`
}

// EffectiveSize returns the band size the lane occupies on screen:
// CollapsedSize when collapsed, the stored size otherwise.
func (d Definition) EffectiveSize() float64 {
	if d.Collapsed {
		return CollapsedSize
	}
	return d.Size
}

// Boundary is one derived band along an axis. Offset is measured in
// lane-local coordinates from the container origin.
type Boundary struct {
	LaneID string  `json:"lane_id" bson:"lane_id"`
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`
	Offset float64 `json:"offset" bson:"offset"`
	Size   float64 `json:"size" bson:"size"`
}

// End returns the exclusive end coordinate of the band.
func (b Boundary) End() float64 { return b.Offset + b.Size }

// Contains reports whether center falls inside the band under the
// half-open convention [Offset, Offset+Size).
func (b Boundary) Contains(center float64) bool {
	return center >= b.Offset && center < b.End()
}

// Boundaries lays the given lanes out along one axis, starting at
// headerOffset. Lanes are taken in Order, ties broken by input
// position, and bands are emitted contiguously: each band starts where
// the previous one ends. An empty definition list yields nil.
func Boundaries(defs []Definition, headerOffset float64) []Boundary {
	if len(defs) == 0 {
		return nil
	}

	ordered := make([]Definition, len(defs))
	copy(ordered, defs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	out := make([]Boundary, 0, len(ordered))
	cursor := headerOffset
	for _, d := range ordered {
		size := d.EffectiveSize()
		out = append(out, Boundary{
			LaneID: d.ID,
			Label:  d.Label,
			Offset: cursor,
			Size:   size,
		})
		cursor += size
	}
	return out
}
