package lane

import "github.com/slateboard/slateboard/pkg/geom"

// Config holds the full lane setup of a board: zero, one, or both axes,
// plus the header space each axis reserves for the other's labels.
type Config struct {
	Horizontal []Definition `json:"horizontal,omitempty" bson:"horizontal,omitempty"`
	Vertical   []Definition `json:"vertical,omitempty" bson:"vertical,omitempty"`

	// HHeaderWidth is the space reserved left of the horizontal bands
	// for their labels; it offsets the vertical bands.
	HHeaderWidth float64 `json:"h_header_width,omitempty" bson:"h_header_width,omitempty"`
	// VHeaderHeight is the space reserved above the vertical bands for
	// their labels; it offsets the horizontal bands.
	VHeaderHeight float64 `json:"v_header_height,omitempty" bson:"v_header_height,omitempty"`
}

// Empty reports whether no lanes are configured on either axis.
func (c Config) Empty() bool {
	return len(c.Horizontal) == 0 && len(c.Vertical) == 0
}

// HorizontalBoundaries returns the derived bands along y.
func (c Config) HorizontalBoundaries() []Boundary {
	return Boundaries(c.Horizontal, c.VZHeaderOffset())
}

// VerticalBoundaries returns the derived bands along x.
func (c Config) VerticalBoundaries() []Boundary {
	return Boundaries(c.Vertical, c.HZHeaderOffset())
}

// VZHeaderOffset is the leading offset of the horizontal bands: the
// vertical axis's header row sits above them.
func (c Config) VZHeaderOffset() float64 { return c.VHeaderHeight }

// HZHeaderOffset is the leading offset of the vertical bands: the
// horizontal axis's header column sits before them.
func (c Config) HZHeaderOffset() float64 { return c.HHeaderWidth }

// Assign returns the id of the band containing center, testing bands in
// order under the half-open rule. ok is false when center falls before
// the first band or at/after the last band's end.
func Assign(bounds []Boundary, center float64) (laneID string, ok bool) {
	for _, b := range bounds {
		if b.Contains(center) {
			return b.LaneID, true
		}
	}
	return "", false
}

// Resolve determines the lane a shape belongs to. The rect is in canvas
// coordinates; containerOffset is subtracted to obtain lane-local
// coordinates before containment testing. Horizontal lanes are checked
// first; vertical lanes are consulted only when no horizontal band
// matches. Returns ("", false) when the shape sits outside all bands,
// which is a valid unassigned state, not an error.
func Resolve(cfg Config, r geom.Rect, containerOffset geom.Point) (laneID string, ok bool) {
	if len(cfg.Horizontal) > 0 {
		center := r.CenterY() - containerOffset.Y
		if id, ok := Assign(cfg.HorizontalBoundaries(), center); ok {
			return id, true
		}
	}
	if len(cfg.Vertical) > 0 {
		center := r.CenterX() - containerOffset.X
		if id, ok := Assign(cfg.VerticalBoundaries(), center); ok {
			return id, true
		}
	}
	return "", false
}
