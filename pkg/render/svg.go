package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/slateboard/slateboard/pkg/align"
	"github.com/slateboard/slateboard/pkg/board"
	"github.com/slateboard/slateboard/pkg/geom"
	"github.com/slateboard/slateboard/pkg/lane"
)

// Scene palette. Lane bands alternate between the two fills.
const (
	laneFillEven = "#f4f6f8"
	laneFillOdd  = "#ffffff"
	laneStroke   = "#cbd5e1"
	shapeFill    = "#ffffff"
	shapeStroke  = "#334155"
	guideStroke  = "#ef4444"
	gapStroke    = "#2563eb"
	textColor    = "#1e293b"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	defaults      geom.SizeDefaults
	guides        *align.GuideSet
	gaps          []align.Gap
}

// WithSize sets the viewport dimensions (default 800x600).
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// WithSizeDefaults overrides the size-resolution fallback table.
func WithSizeDefaults(d geom.SizeDefaults) SVGOption {
	return func(r *svgRenderer) { r.defaults = d }
}

// WithGuides overlays alignment guide lines onto the scene.
func WithGuides(g align.GuideSet) SVGOption {
	return func(r *svgRenderer) { r.guides = &g }
}

// WithGaps overlays distance measurement lines onto the scene.
func WithGaps(gaps []align.Gap) SVGOption {
	return func(r *svgRenderer) { r.gaps = gaps }
}

// RenderSVG renders a document to SVG markup.
func RenderSVG(doc *board.Document, opts ...SVGOption) []byte {
	r := svgRenderer{width: 800, height: 600}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)

	r.writeLanes(&buf, doc)
	r.writeConnectors(&buf, doc)
	r.writeShapes(&buf, doc)
	r.writeOverlay(&buf)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) writeLanes(buf *bytes.Buffer, doc *board.Document) {
	ox, oy := doc.Offset.X, doc.Offset.Y

	for i, b := range doc.Lanes.HorizontalBoundaries() {
		fill := laneFillEven
		if i%2 == 1 {
			fill = laneFillOdd
		}
		fmt.Fprintf(buf,
			`  <rect class="lane" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
			ox, oy+b.Offset, r.width-ox, b.Size, fill, laneStroke)
		writeLaneLabel(buf, b, ox+8, oy+b.Offset+16)
	}
	for i, b := range doc.Lanes.VerticalBoundaries() {
		fill := laneFillEven
		if i%2 == 1 {
			fill = laneFillOdd
		}
		fmt.Fprintf(buf,
			`  <rect class="lane" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
			ox+b.Offset, oy, b.Size, r.height-oy, fill, laneStroke)
		writeLaneLabel(buf, b, ox+b.Offset+8, oy+16)
	}
}

func writeLaneLabel(buf *bytes.Buffer, b lane.Boundary, x, y float64) {
	label := b.Label
	if label == "" {
		label = b.LaneID
	}
	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" font-size="12" fill="%s">%s</text>`+"\n",
		x, y, textColor, html.EscapeString(label))
}

func (r *svgRenderer) writeShapes(buf *bytes.Buffer, doc *board.Document) {
	for _, s := range doc.Shapes {
		rect := board.Rect(s, r.defaults)
		switch s.Kind {
		case board.KindCircle:
			fmt.Fprintf(buf,
				`  <ellipse id="shape-%s" cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="%s" stroke="%s"/>`+"\n",
				html.EscapeString(s.ID), rect.CenterX(), rect.CenterY(),
				rect.Width/2, rect.Height/2, shapeFill, shapeStroke)
		case board.KindDiamond:
			fmt.Fprintf(buf,
				`  <polygon id="shape-%s" points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" stroke="%s"/>`+"\n",
				html.EscapeString(s.ID),
				rect.CenterX(), rect.Top(),
				rect.Right(), rect.CenterY(),
				rect.CenterX(), rect.Bottom(),
				rect.Left(), rect.CenterY(),
				shapeFill, shapeStroke)
		default:
			fmt.Fprintf(buf,
				`  <rect id="shape-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s"/>`+"\n",
				html.EscapeString(s.ID), rect.X, rect.Y, rect.Width, rect.Height, shapeFill, shapeStroke)
		}
		fmt.Fprintf(buf,
			`  <text x="%.1f" y="%.1f" font-size="13" text-anchor="middle" fill="%s">%s</text>`+"\n",
			rect.CenterX(), rect.CenterY()+4, textColor, html.EscapeString(s.DisplayLabel()))
	}
}

func (r *svgRenderer) writeConnectors(buf *bytes.Buffer, doc *board.Document) {
	rects := make(map[string]geom.Rect, len(doc.Shapes))
	for _, s := range doc.Shapes {
		rects[s.ID] = board.Rect(s, r.defaults)
	}
	for _, s := range doc.Shapes {
		from := rects[s.ID]
		for _, target := range s.LinkedTo {
			to, ok := rects[target]
			if !ok {
				continue
			}
			fmt.Fprintf(buf,
				`  <line class="connector" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
				from.CenterX(), from.CenterY(), to.CenterX(), to.CenterY(), shapeStroke)
		}
	}
}

func (r *svgRenderer) writeOverlay(buf *bytes.Buffer) {
	if r.guides != nil {
		for _, x := range r.guides.Vertical {
			fmt.Fprintf(buf,
				`  <line class="guide" x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
				x, x, r.height, guideStroke)
		}
		for _, y := range r.guides.Horizontal {
			fmt.Fprintf(buf,
				`  <line class="guide" x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4 4"/>`+"\n",
				y, r.width, y, guideStroke)
		}
	}
	for _, g := range r.gaps {
		if g.Axis == align.GapX {
			fmt.Fprintf(buf,
				`  <line class="gap" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
				g.LineStart, g.CrossPos, g.LineEnd, g.CrossPos, gapStroke)
			fmt.Fprintf(buf,
				`  <text x="%.1f" y="%.1f" font-size="11" text-anchor="middle" fill="%s">%v</text>`+"\n",
				(g.LineStart+g.LineEnd)/2, g.CrossPos-4, gapStroke, g.Distance)
		} else {
			fmt.Fprintf(buf,
				`  <line class="gap" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
				g.CrossPos, g.LineStart, g.CrossPos, g.LineEnd, gapStroke)
			fmt.Fprintf(buf,
				`  <text x="%.1f" y="%.1f" font-size="11" fill="%s">%v</text>`+"\n",
				g.CrossPos+4, (g.LineStart+g.LineEnd)/2, gapStroke, g.Distance)
		}
	}
}
