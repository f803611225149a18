// Package httpapi exposes the geometry engine over HTTP for the web
// editor frontend.
//
// The service is stateless: every request carries the full document
// snapshot, mirroring how the in-process engine receives a fresh
// snapshot per call. No persistence, sessions, or authentication.
//
// # Endpoints
//
//	POST /v1/lanes   — lane boundaries for both axes plus per-shape assignments
//	POST /v1/guides  — alignment guides, distance gaps and the optional
//	                   equal-spacing snap for a dragged shape position
//	POST /v1/snap    — the corrected position for a dragged shape
//
// Validation failures map to 400 with the structured error code in the
// body; unknown shape ids map to 404.
package httpapi
