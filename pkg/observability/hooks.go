// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about drag sessions, layout computation, and HTTP serving.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drag().OnDragStart(ctx, shapeID)
//	// ... per pointer-move ...
//	observability.Drag().OnDragFrame(ctx, shapeID, guideCount, snapped)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from drag sessions.
type DragHooks interface {
	// OnDragStart records the beginning of a drag.
	OnDragStart(ctx context.Context, shapeID string)

	// OnDragFrame records one pointer-move frame: how many guides were
	// found and whether a snap correction was applied.
	OnDragFrame(ctx context.Context, shapeID string, guideCount int, snapped bool)

	// OnDragEnd records the committed drag: the final position, the
	// resolved lane (empty when unassigned), and the drag duration.
	OnDragEnd(ctx context.Context, shapeID, laneID string, duration time.Duration)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from lane boundary and assignment runs.
type LayoutHooks interface {
	// OnBoundaries records a boundary computation for one axis.
	OnBoundaries(ctx context.Context, axis string, laneCount int)

	// OnAssign records a lane assignment resolution.
	OnAssign(ctx context.Context, shapeID, laneID string, assigned bool)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the geometry service handlers.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(context.Context, string)                      {}
func (NoopDragHooks) OnDragFrame(context.Context, string, int, bool)           {}
func (NoopDragHooks) OnDragEnd(context.Context, string, string, time.Duration) {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnBoundaries(context.Context, string, int)      {}
func (NoopLayoutHooks) OnAssign(context.Context, string, string, bool) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks   DragHooks   = NoopDragHooks{}
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any drag operations.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	layoutHooks = NoopLayoutHooks{}
	httpHooks = NoopHTTPHooks{}
}
