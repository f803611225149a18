// Package lane partitions a board axis into ordered swimlane bands and
// assigns shapes to them.
//
// A board can carry horizontal lanes (bands stacked along y), vertical
// lanes (bands stacked along x), both at once ("matrix mode"), or none.
// Bands are derived data: [Boundaries] recomputes them from the lane
// definitions whenever definitions or the container offset change, and
// nothing in this package caches them.
//
// Containment is half-open: a band owns [offset, offset+size), so a
// shape whose center sits exactly on a divider belongs to the band that
// starts there, never to two bands at once.
//
// In matrix mode [Resolve] checks horizontal lanes first and only falls
// through to vertical lanes when no horizontal band matches, so a shape
// carries at most one lane id. That mirrors the editor's current
// behavior; see DESIGN.md for why it is preserved rather than
// generalized to one id per axis.
package lane
