// Package geom provides the canonical rectangle model for board shapes.
//
// Every subsystem that needs a shape's footprint (lane assignment,
// alignment guides, spacing measurement, rendering) goes through this
// package so that all of them agree on the same resolved geometry.
//
// # Size Resolution
//
// A shape's effective size is resolved in three tiers:
//
//  1. Measured size: live dimensions reported by the host renderer
//  2. Authored size: explicit width/height stored on the shape
//  3. Kind default: a per-shape-kind fallback from [SizeDefaults]
//
// The fallback constants live in exactly one place ([DefaultSizes]).
// Duplicating them at call sites causes visible jitter when two
// subsystems disagree about a shape's footprint, so consumers must
// call [ResolveSize] rather than carrying their own defaults.
//
// # Usage
//
//	w, h := geom.ResolveSize(shape, geom.DefaultSizes)
//	r := geom.Rect{ID: shape.ID, X: shape.X, Y: shape.Y, Width: w, Height: h}
//	cx := r.CenterX()
package geom
