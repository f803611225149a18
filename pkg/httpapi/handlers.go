package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/slateboard/slateboard/pkg/align"
	"github.com/slateboard/slateboard/pkg/board"
	"github.com/slateboard/slateboard/pkg/errors"
	"github.com/slateboard/slateboard/pkg/geom"
	"github.com/slateboard/slateboard/pkg/lane"
)

// lanesRequest carries a document snapshot.
type lanesRequest struct {
	Document board.Document `json:"document"`
}

// lanesResponse returns the derived bands and every shape's lane.
type lanesResponse struct {
	Horizontal  []lane.Boundary   `json:"horizontal,omitempty"`
	Vertical    []lane.Boundary   `json:"vertical,omitempty"`
	Assignments map[string]string `json:"assignments"`
}

func (s *Server) handleLanes(w http.ResponseWriter, r *http.Request) {
	var req lanesRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	doc := &req.Document
	resp := lanesResponse{
		Horizontal:  doc.Lanes.HorizontalBoundaries(),
		Vertical:    doc.Lanes.VerticalBoundaries(),
		Assignments: make(map[string]string, len(doc.Shapes)),
	}
	for _, shape := range doc.Shapes {
		if id, ok := doc.ResolveLane(shape, s.defaults); ok {
			resp.Assignments[shape.ID] = id
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// dragRequest carries a document snapshot plus the dragged shape's id
// and its current pointer position.
type dragRequest struct {
	Document board.Document `json:"document"`
	ShapeID  string         `json:"shape_id"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
}

// guidesResponse is one drag frame's engine output.
type guidesResponse struct {
	Guides align.GuideSet   `json:"guides"`
	Gaps   []align.Gap      `json:"gaps,omitempty"`
	Equal  *align.EqualSnap `json:"equal,omitempty"`
}

func (s *Server) handleGuides(w http.ResponseWriter, r *http.Request) {
	var req dragRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	dragged, rects, err := s.draggedRect(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	var resp guidesResponse
	resp.Guides = align.FindGuides(dragged, rects, s.threshold)
	resp.Gaps, resp.Equal = align.FindGaps(dragged, rects, s.tolerance)
	writeJSON(w, http.StatusOK, resp)
}

// snapResponse carries the corrected position; axes without a match
// are omitted.
type snapResponse struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

func (s *Server) handleSnap(w http.ResponseWriter, r *http.Request) {
	var req dragRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	dragged, rects, err := s.draggedRect(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	guides := align.FindGuides(dragged, rects, s.threshold)
	_, equal := align.FindGaps(dragged, rects, s.tolerance)
	x, y := align.Snap(dragged, guides, equal, s.threshold)
	writeJSON(w, http.StatusOK, snapResponse{X: x, Y: y})
}

// draggedRect resolves all rectangles and moves the dragged shape to
// the request's pointer position.
func (s *Server) draggedRect(req *dragRequest) (geom.Rect, []geom.Rect, error) {
	shape, ok := req.Document.Shape(req.ShapeID)
	if !ok {
		return geom.Rect{}, nil, errors.New(errors.ErrCodeShapeNotFound,
			"shape %q not in document", req.ShapeID)
	}

	dragged := board.Rect(shape, s.defaults)
	dragged.X, dragged.Y = req.X, req.Y

	rects := req.Document.Rects(s.defaults)
	for i := range rects {
		if rects[i].ID == dragged.ID {
			rects[i] = dragged
		}
	}
	return dragged, rects, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	if req, ok := v.(*lanesRequest); ok {
		return board.Validate(&req.Document)
	}
	if req, ok := v.(*dragRequest); ok {
		return board.Validate(&req.Document)
	}
	return nil
}
