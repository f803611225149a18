package geom

// Sized is the minimal view of a shape record this package needs to
// resolve an effective size. Zero and negative values count as unset,
// so a partially filled record is always acceptable.
type Sized interface {
	// AuthoredSize returns the explicitly stored width/height.
	AuthoredSize() (w, h float64)
	// MeasuredSize returns the live-rendered width/height, if any.
	MeasuredSize() (w, h float64)
	// SizeKind returns the shape kind used for default lookup.
	SizeKind() string
}

// SizeDefaults maps a shape kind to its fallback dimensions.
// The zero key ("") holds the generic default used for unknown kinds.
type SizeDefaults map[string][2]float64

// DefaultSizes is the canonical fallback table. Circles and diamonds
// render square, everything else gets the generic card footprint.
var DefaultSizes = SizeDefaults{
	"":        {160, 60},
	"circle":  {100, 100},
	"diamond": {100, 100},
}

// Lookup returns the default dimensions for kind, falling back to the
// generic entry when the kind is unknown.
func (d SizeDefaults) Lookup(kind string) (w, h float64) {
	if dims, ok := d[kind]; ok {
		return dims[0], dims[1]
	}
	dims := d[""]
	return dims[0], dims[1]
}

// ResolveSize resolves a shape's effective footprint: measured size if
// present, else authored size, else the kind default from defaults.
// Width and height fall through independently, so a shape with only a
// measured width still picks up its authored or default height.
// A nil defaults table uses [DefaultSizes]. Never fails.
func ResolveSize(s Sized, defaults SizeDefaults) (w, h float64) {
	if defaults == nil {
		defaults = DefaultSizes
	}
	dw, dh := defaults.Lookup(s.SizeKind())

	mw, mh := s.MeasuredSize()
	aw, ah := s.AuthoredSize()

	w = firstPositive(mw, aw, dw)
	h = firstPositive(mh, ah, dh)
	return w, h
}

func firstPositive(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
