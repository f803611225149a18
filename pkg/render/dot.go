package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/slateboard/slateboard/pkg/board"
)

// ToDOT converts a document's connector graph to Graphviz DOT format.
// Shapes become nodes labeled with their display label; connectors
// become directed edges. Lane membership, when assigned, is rendered
// as a cluster per lane so related shapes group visually.
func ToDOT(doc *board.Document) string {
	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	byLane := map[string][]board.Shape{}
	var unassigned []board.Shape
	for _, s := range doc.Shapes {
		if s.LaneID != "" {
			byLane[s.LaneID] = append(byLane[s.LaneID], s)
		} else {
			unassigned = append(unassigned, s)
		}
	}

	clusterIdx := 0
	writeNode := func(s board.Shape, indent string) {
		attrs := fmt.Sprintf("label=%q", s.DisplayLabel())
		if s.Kind == board.KindDiamond {
			attrs += ", shape=diamond"
		} else if s.Kind == board.KindCircle {
			attrs += ", shape=ellipse"
		}
		fmt.Fprintf(&buf, "%s%q [%s];\n", indent, s.ID, attrs)
	}

	// Lanes in the order the horizontal then vertical definitions give.
	for _, def := range append(append([]string{}, laneIDs(doc, true)...), laneIDs(doc, false)...) {
		shapes, ok := byLane[def]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", clusterIdx)
		fmt.Fprintf(&buf, "    label=%q;\n", def)
		for _, s := range shapes {
			writeNode(s, "    ")
		}
		buf.WriteString("  }\n")
		clusterIdx++
		delete(byLane, def)
	}
	// Lane ids persisted on shapes but absent from the configuration
	// still render, just without a cluster.
	for _, s := range unassigned {
		writeNode(s, "  ")
	}
	for _, shapes := range byLane {
		for _, s := range shapes {
			writeNode(s, "  ")
		}
	}

	buf.WriteString("\n")
	for _, s := range doc.Shapes {
		for _, target := range s.LinkedTo {
			fmt.Fprintf(&buf, "  %q -> %q;\n", s.ID, target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func laneIDs(doc *board.Document, horizontal bool) []string {
	defs := doc.Lanes.Horizontal
	if !horizontal {
		defs = doc.Lanes.Vertical
	}
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}

// RenderDOTSVG renders a DOT graph to SVG using the embedded Graphviz
// engine.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using the embedded Graphviz
// engine.
func RenderDOTPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
