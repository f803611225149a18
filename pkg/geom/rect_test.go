package geom

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name             string
		rect             Rect
		right, bottom    float64
		centerX, centerY float64
	}{
		{
			name:    "at origin",
			rect:    Rect{X: 0, Y: 0, Width: 160, Height: 60},
			right:   160,
			bottom:  60,
			centerX: 80,
			centerY: 30,
		},
		{
			name:    "offset",
			rect:    Rect{X: 40, Y: 20, Width: 100, Height: 100},
			right:   140,
			bottom:  120,
			centerX: 90,
			centerY: 70,
		},
		{
			name:    "negative position",
			rect:    Rect{X: -50, Y: -10, Width: 100, Height: 40},
			right:   50,
			bottom:  30,
			centerX: 0,
			centerY: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
			if got := tt.rect.CenterX(); got != tt.centerX {
				t.Errorf("CenterX() = %v, want %v", got, tt.centerX)
			}
			if got := tt.rect.CenterY(); got != tt.centerY {
				t.Errorf("CenterY() = %v, want %v", got, tt.centerY)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{ID: "a", X: 10, Y: 20, Width: 30, Height: 40}
	got := r.Translate(5, -5)

	if got.X != 15 || got.Y != 15 {
		t.Errorf("Translate(5,-5) = (%v,%v), want (15,15)", got.X, got.Y)
	}
	if r.X != 10 || r.Y != 20 {
		t.Errorf("Translate mutated receiver: %+v", r)
	}
	if got.Width != 30 || got.Height != 40 {
		t.Errorf("Translate changed size: %+v", got)
	}
}
