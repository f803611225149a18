package board

import (
	"context"
	"time"

	"github.com/slateboard/slateboard/pkg/align"
	"github.com/slateboard/slateboard/pkg/errors"
	"github.com/slateboard/slateboard/pkg/geom"
	"github.com/slateboard/slateboard/pkg/observability"
)

// FrameResult is the engine output for one pointer-move frame.
type FrameResult struct {
	Guides align.GuideSet
	Gaps   []align.Gap
	Equal  *align.EqualSnap

	// X, Y is the shape position after the frame: the raw pointer
	// position, or the snapped position when Snapped is true.
	X, Y    float64
	Snapped bool
}

// CommitResult is the outcome of ending a drag.
type CommitResult struct {
	// X, Y is the final committed position. When a snap was applied on
	// the last frame this is the snapped position, even if the host
	// wrote its own raw position afterwards.
	X, Y float64

	// LaneID is the re-resolved lane assignment; Assigned is false
	// when the shape ended up outside all bands.
	LaneID   string
	Assigned bool
}

// DragSession drives the drag lifecycle for one shape:
// idle → dragging (one Move per pointer event) → Commit.
// Sessions hold no engine state beyond the current drag; every drag
// starts fresh with NewDragSession.
//
// The session also carries the reconciliation the host rendering
// library forces on us: the host commits its own final position from
// raw mouse input after the engine's mid-drag snap already ran, which
// would silently undo the snap. The session remembers the last snap it
// produced and Commit re-applies it over the host's write. Both writes
// are sequential on the caller's event loop; this is last-writer-wins,
// not locking.
type DragSession struct {
	doc      *Document
	defaults geom.SizeDefaults
	shape    Shape
	cur      geom.Rect

	threshold float64
	tolerance float64

	lastSnap *geom.Point
	started  time.Time
}

// DragOptions tunes a drag session. Zero values fall back to the
// package defaults of pkg/align.
type DragOptions struct {
	Threshold float64
	Tolerance float64
	Defaults  geom.SizeDefaults
}

// NewDragSession starts a drag for the shape with the given id.
// Returns a SHAPE_NOT_FOUND error when the document has no such shape.
func NewDragSession(ctx context.Context, doc *Document, shapeID string, opts DragOptions) (*DragSession, error) {
	s, ok := doc.Shape(shapeID)
	if !ok {
		return nil, errors.New(errors.ErrCodeShapeNotFound, "shape %q not in document", shapeID)
	}

	sess := &DragSession{
		doc:       doc,
		defaults:  opts.Defaults,
		shape:     s,
		cur:       Rect(s, opts.Defaults),
		threshold: opts.Threshold,
		tolerance: opts.Tolerance,
		started:   time.Now(),
	}
	observability.Drag().OnDragStart(ctx, shapeID)
	return sess, nil
}

// Move processes one pointer-move frame at the given raw position.
// Guides and gaps are recomputed from scratch; nothing is cached
// between frames. When snapHeld is true (the modifier key is down) the
// snapper runs and any correction is applied to the returned position
// and remembered for Commit.
func (s *DragSession) Move(ctx context.Context, x, y float64, snapHeld bool) FrameResult {
	s.cur.X, s.cur.Y = x, y

	rects := s.doc.Rects(s.defaults)
	// The document still holds the shape's pre-drag position; compare
	// against the live dragged rect instead.
	for i := range rects {
		if rects[i].ID == s.cur.ID {
			rects[i] = s.cur
		}
	}

	res := FrameResult{X: x, Y: y}
	res.Guides = align.FindGuides(s.cur, rects, s.threshold)
	res.Gaps, res.Equal = align.FindGaps(s.cur, rects, s.tolerance)

	if snapHeld {
		sx, sy := align.Snap(s.cur, res.Guides, res.Equal, s.threshold)
		if sx != nil {
			res.X = *sx
			res.Snapped = true
		}
		if sy != nil {
			res.Y = *sy
			res.Snapped = true
		}
	}

	if res.Snapped {
		s.lastSnap = &geom.Point{X: res.X, Y: res.Y}
	} else {
		s.lastSnap = nil
	}

	guideCount := len(res.Guides.Vertical) + len(res.Guides.Horizontal)
	observability.Drag().OnDragFrame(ctx, s.cur.ID, guideCount, res.Snapped)
	return res
}

// Commit ends the drag. hostX, hostY is the final position the host
// rendering library wrote from raw mouse input; if the last frame
// produced a snap, the snapped position overrides it. The shape's lane
// is re-resolved at the final position. The session is spent after
// Commit and must not be reused.
func (s *DragSession) Commit(ctx context.Context, hostX, hostY float64) CommitResult {
	res := CommitResult{X: hostX, Y: hostY}
	if s.lastSnap != nil {
		res.X, res.Y = s.lastSnap.X, s.lastSnap.Y
		s.lastSnap = nil
	}

	final := s.shape
	final.X, final.Y = res.X, res.Y
	res.LaneID, res.Assigned = s.doc.ResolveLane(final, s.defaults)

	observability.Layout().OnAssign(ctx, s.shape.ID, res.LaneID, res.Assigned)
	observability.Drag().OnDragEnd(ctx, s.shape.ID, res.LaneID, time.Since(s.started))
	return res
}
