// Package board defines the diagram document model the geometry engine
// operates on, and the drag session that ties the engine's pieces
// together.
//
// A [Document] is a read-only snapshot of the editor's state: shapes
// with optional authored and measured sizes, connector references, and
// the lane configuration for both axes. The engine never mutates a
// document; it derives rectangles from it each frame and hands
// corrections back to the caller.
//
// # Serialization
//
// Documents round-trip through JSON with [ReadDocument] and
// [WriteDocument]. Reading validates the document: duplicate shape or
// lane ids, negative lane sizes, and connectors pointing at missing
// shapes are rejected with structured errors from pkg/errors.
//
// # Drag Lifecycle
//
// A [DragSession] runs the idle → dragging → drag-end state machine for
// one shape. [DragSession.Move] recomputes guides and gaps per
// pointer-move and applies snapping while the modifier is held.
// [DragSession.Commit] finishes the drag, re-resolves the shape's lane
// and re-applies the last snap position over the host library's own
// final position write (the host commits raw mouse coordinates after
// the snap already ran; last writer wins, so the session writes again).
package board
