// Package align detects alignment and spacing relationships between a
// dragged shape and the rest of the board, and computes snap positions.
//
// Everything here is a pure function over freshly passed-in rectangles:
// no caching, no internal state, no I/O. The functions are built to be
// re-run on every pointer-move event of an active drag, so each call is
// a single O(n) scan of the shape set.
//
// # Pipeline
//
// During a drag the caller runs, per frame:
//
//	guides := align.FindGuides(dragged, shapes, align.DefaultThreshold)
//	gaps, equal := align.FindGaps(dragged, shapes)
//	x, y := align.Snap(dragged, guides, equal, align.DefaultThreshold)
//
// Guides are coordinates where an edge or center of the dragged shape
// nearly coincides with an edge or center of another shape. Gaps are
// edge-to-edge distance measurements against the nearest neighbor on
// each side; when the two gaps flanking the dragged shape along one
// axis are nearly equal, an equal-spacing snap target is produced that
// would make them exactly equal. The snapper picks the closest guide
// per axis and places the matching edge or center exactly on it, with
// equal-spacing targets taking priority over plain alignment.
package align
