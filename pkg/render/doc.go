// Package render produces visual exports of board documents.
//
// Three sinks are provided:
//   - SVG: hand-built markup with lane bands, shapes, and an optional
//     guide/gap overlay for debugging alignment behavior
//   - PNG: the same scene rasterized with fogleman/gg
//   - DOT: the document's connector graph in Graphviz DOT form, with
//     optional rasterization through the embedded Graphviz engine
//
// All sinks read the document through the canonical size resolver, so
// exported geometry matches what the alignment and lane engines see.
package render
