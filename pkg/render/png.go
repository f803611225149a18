package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/slateboard/slateboard/pkg/align"
	"github.com/slateboard/slateboard/pkg/board"
)

var (
	pngLaneFillEven = color.RGBA{R: 0xf4, G: 0xf6, B: 0xf8, A: 0xff}
	pngLaneStroke   = color.RGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0xff}
	pngShapeStroke  = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	pngGuideStroke  = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	pngText         = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
)

// RenderPNG rasterizes a document to PNG. It accepts the same options
// as RenderSVG; gap overlays are drawn without distance labels.
func RenderPNG(doc *board.Document, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{width: 800, height: 600}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(int(r.width), int(r.height))
	dc.SetColor(color.White)
	dc.Clear()

	face, err := loadFace(13)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	drawLanes(dc, doc, r)
	drawConnectors(dc, doc, r)
	drawShapes(dc, doc, r)
	drawOverlay(dc, r)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func loadFace(points float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

func drawLanes(dc *gg.Context, doc *board.Document, r svgRenderer) {
	ox, oy := doc.Offset.X, doc.Offset.Y

	for i, b := range doc.Lanes.HorizontalBoundaries() {
		if i%2 == 0 {
			dc.SetColor(pngLaneFillEven)
			dc.DrawRectangle(ox, oy+b.Offset, r.width-ox, b.Size)
			dc.Fill()
		}
		dc.SetColor(pngLaneStroke)
		dc.DrawRectangle(ox, oy+b.Offset, r.width-ox, b.Size)
		dc.Stroke()
		dc.SetColor(pngText)
		dc.DrawString(laneLabel(b.Label, b.LaneID), ox+8, oy+b.Offset+16)
	}
	for i, b := range doc.Lanes.VerticalBoundaries() {
		if i%2 == 0 {
			dc.SetColor(pngLaneFillEven)
			dc.DrawRectangle(ox+b.Offset, oy, b.Size, r.height-oy)
			dc.Fill()
		}
		dc.SetColor(pngLaneStroke)
		dc.DrawRectangle(ox+b.Offset, oy, b.Size, r.height-oy)
		dc.Stroke()
		dc.SetColor(pngText)
		dc.DrawString(laneLabel(b.Label, b.LaneID), ox+b.Offset+8, oy+16)
	}
}

func laneLabel(label, id string) string {
	if label != "" {
		return label
	}
	return id
}

func drawShapes(dc *gg.Context, doc *board.Document, r svgRenderer) {
	for _, s := range doc.Shapes {
		rect := board.Rect(s, r.defaults)

		dc.SetColor(color.White)
		switch s.Kind {
		case board.KindCircle:
			dc.DrawEllipse(rect.CenterX(), rect.CenterY(), rect.Width/2, rect.Height/2)
		case board.KindDiamond:
			dc.MoveTo(rect.CenterX(), rect.Top())
			dc.LineTo(rect.Right(), rect.CenterY())
			dc.LineTo(rect.CenterX(), rect.Bottom())
			dc.LineTo(rect.Left(), rect.CenterY())
			dc.ClosePath()
		default:
			dc.DrawRoundedRectangle(rect.X, rect.Y, rect.Width, rect.Height, 4)
		}
		dc.FillPreserve()
		dc.SetColor(pngShapeStroke)
		dc.Stroke()

		dc.SetColor(pngText)
		dc.DrawStringAnchored(s.DisplayLabel(), rect.CenterX(), rect.CenterY(), 0.5, 0.35)
	}
}

func drawConnectors(dc *gg.Context, doc *board.Document, r svgRenderer) {
	dc.SetColor(pngShapeStroke)
	for _, s := range doc.Shapes {
		from := board.Rect(s, r.defaults)
		for _, target := range s.LinkedTo {
			ts, ok := doc.Shape(target)
			if !ok {
				continue
			}
			to := board.Rect(ts, r.defaults)
			dc.DrawLine(from.CenterX(), from.CenterY(), to.CenterX(), to.CenterY())
			dc.Stroke()
		}
	}
}

func drawOverlay(dc *gg.Context, r svgRenderer) {
	dc.SetColor(pngGuideStroke)
	if r.guides != nil {
		dc.SetDash(4, 4)
		for _, x := range r.guides.Vertical {
			dc.DrawLine(x, 0, x, r.height)
			dc.Stroke()
		}
		for _, y := range r.guides.Horizontal {
			dc.DrawLine(0, y, r.width, y)
			dc.Stroke()
		}
		dc.SetDash()
	}
	for _, g := range r.gaps {
		if g.Axis == align.GapX {
			dc.DrawLine(g.LineStart, g.CrossPos, g.LineEnd, g.CrossPos)
		} else {
			dc.DrawLine(g.CrossPos, g.LineStart, g.CrossPos, g.LineEnd)
		}
		dc.Stroke()
	}
}
