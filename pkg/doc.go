// Package pkg provides the core libraries for Slateboard diagram geometry.
//
// # Overview
//
// Slateboard is the spatial engine behind an interactive diagram editor. It
// owns everything that turns pointer positions into tidy diagrams: swimlane
// bands derived from lane definitions, shape-to-lane assignment, alignment
// guide detection, distance and equal-spacing measurement, and snapping.
// The pkg directory is organized into four main areas:
//
//  1. Geometry ([geom], [lane], [align]) - The pure engine: rectangles,
//     bands, guides, gaps, and snapping. No I/O, no document model.
//  2. Document ([board]) - The serialized diagram and the drag lifecycle
//     that drives the engine.
//  3. Output ([render], [httpapi]) - SVG/PNG/DOT rendering and the HTTP
//     service exposing the engine to editor frontends.
//  4. Ambient ([config], [errors], [observability], [buildinfo]) - TOML
//     configuration, coded errors, instrumentation hooks, build metadata.
//
// # Architecture
//
// The typical data flow during a drag:
//
//	Document (shapes + lane definitions)
//	         ↓
//	    [geom] package (resolve every shape's footprint)
//	         ↓
//	    [align] package (guides, gaps, equal spacing, snap)
//	         ↓
//	    [board] package (drag session: frame results, commit)
//	         ↓
//	    [lane] package (re-resolve the lane at the final position)
//
// # Quick Start
//
// Drive one drag through the engine:
//
//	import (
//	    "context"
//	    "github.com/slateboard/slateboard/pkg/board"
//	)
//
//	// 1. Load the document
//	doc, _ := board.ReadDocumentFile("board.json")
//
//	// 2. Start a drag
//	sess, _ := board.NewDragSession(context.Background(), doc, "task-1", board.DragOptions{})
//
//	// 3. Feed pointer frames; snapHeld mirrors the modifier key
//	frame := sess.Move(context.Background(), 412, 180, true)
//
//	// 4. Commit; the last snap wins over the host's raw position
//	res := sess.Commit(context.Background(), 412, 180)
//	_ = res.LaneID
//	_ = frame.Guides
//
// # Main Packages
//
// ## Geometry
//
// [geom] - Rectangles, points, and the three-tier size resolver (measured,
// authored, kind default) every other package goes through.
//
// [lane] - Swimlane bands: cumulative boundary derivation from ordered lane
// definitions, half-open containment, and center-based assignment with
// horizontal lanes taking precedence over vertical ones.
//
// [align] - Drag-time detection: alignment guides from edge and center
// comparisons, nearest facing-neighbor gaps with cross-axis overlap,
// equal-spacing midpoints, and the snapper that picks the closest guide.
//
// ## Document
//
// [board] - The serialized diagram (shapes, lanes, connectors), JSON
// round-tripping with validation, ID generation, and the drag session
// driving the idle → dragging → commit lifecycle.
//
// ## Output
//
// [render] - SVG and PNG rendering of documents with optional guide and gap
// overlays, plus Graphviz DOT export with one cluster per lane.
//
// [httpapi] - Stateless HTTP service exposing lanes, guides, and snap
// computations to frontends that keep document state on their side.
//
// ## Ambient
//
// [config] - TOML configuration: snap threshold, equal-spacing tolerance,
// and per-kind default shape sizes.
//
// [errors] - Coded errors with user-facing messages, shared across the CLI
// and the HTTP service.
//
// [observability] - Pluggable hooks for drag, layout, and HTTP events.
//
// [buildinfo] - Version metadata injected at build time.
package pkg
