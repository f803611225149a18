package board

import (
	"github.com/slateboard/slateboard/pkg/geom"
	"github.com/slateboard/slateboard/pkg/lane"
)

// Shape kinds understood by the size resolver and renderers.
const (
	KindRect    = "rect"
	KindCircle  = "circle"
	KindDiamond = "diamond"
	KindGroup   = "group"
)

// Shape is one positioned element of the document. Width/Height are the
// authored size; MeasuredWidth/MeasuredHeight are the live-rendered
// dimensions reported by the host, when available. Zero means unset.
type Shape struct {
	ID     string  `json:"id" bson:"id"`
	Kind   string  `json:"kind,omitempty" bson:"kind,omitempty"`
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`

	MeasuredWidth  float64 `json:"measured_width,omitempty" bson:"measured_width,omitempty"`
	MeasuredHeight float64 `json:"measured_height,omitempty" bson:"measured_height,omitempty"`

	// LaneID is the persisted lane assignment, refreshed at drag-end.
	LaneID string `json:"lane_id,omitempty" bson:"lane_id,omitempty"`

	// LinkedTo lists target shape ids of outgoing connectors.
	LinkedTo []string `json:"linked_to,omitempty" bson:"linked_to,omitempty"`
}

// AuthoredSize implements geom.Sized.
func (s Shape) AuthoredSize() (float64, float64) { return s.Width, s.Height }

// MeasuredSize implements geom.Sized.
func (s Shape) MeasuredSize() (float64, float64) { return s.MeasuredWidth, s.MeasuredHeight }

// SizeKind implements geom.Sized.
func (s Shape) SizeKind() string { return s.Kind }

// DisplayLabel returns the label if set, otherwise the ID.
func (s Shape) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.ID
}

// Document is the serialized diagram: all shapes, the lane
// configuration, and the lane container's screen offset used to
// convert shape coordinates into lane-local space.
type Document struct {
	Shapes []Shape     `json:"shapes" bson:"shapes"`
	Lanes  lane.Config `json:"lanes,omitempty" bson:"lanes,omitempty"`
	Offset geom.Point  `json:"offset,omitempty" bson:"offset,omitempty"`
}

// Rect resolves a shape's footprint through the canonical size
// resolver. defaults may be nil for the built-in table.
func Rect(s Shape, defaults geom.SizeDefaults) geom.Rect {
	w, h := geom.ResolveSize(s, defaults)
	return geom.Rect{ID: s.ID, X: s.X, Y: s.Y, Width: w, Height: h}
}

// Rects resolves every shape in the document. The returned slice is
// freshly allocated each call so concurrent drags cannot share state.
func (d *Document) Rects(defaults geom.SizeDefaults) []geom.Rect {
	out := make([]geom.Rect, len(d.Shapes))
	for i, s := range d.Shapes {
		out[i] = Rect(s, defaults)
	}
	return out
}

// Shape returns the shape with the given id.
func (d *Document) Shape(id string) (Shape, bool) {
	for _, s := range d.Shapes {
		if s.ID == id {
			return s, true
		}
	}
	return Shape{}, false
}

// ResolveLane computes the lane a shape currently belongs to, or
// ("", false) when it lies outside all bands.
func (d *Document) ResolveLane(s Shape, defaults geom.SizeDefaults) (string, bool) {
	return lane.Resolve(d.Lanes, Rect(s, defaults), d.Offset)
}
