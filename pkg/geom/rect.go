package geom

// Point is a position in canvas units.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Rect represents a shape's resolved footprint on the board.
// All coordinates are in canvas units (pixels), origin top-left,
// y growing downward.
type Rect struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Translate returns a copy of r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
