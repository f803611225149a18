package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slateboard/slateboard/pkg/board"
	"github.com/slateboard/slateboard/pkg/lane"
)

func testDocument() board.Document {
	return board.Document{
		Shapes: []board.Shape{
			{ID: "a", Kind: board.KindRect, X: 0, Y: 0, Width: 100, Height: 50},
			{ID: "b", Kind: board.KindRect, X: 300, Y: 300, Width: 100, Height: 50},
		},
		Lanes: lane.Config{
			Horizontal: []lane.Definition{
				{ID: "plan", Label: "Plan", Size: 200},
				{ID: "build", Label: "Build", Size: 300},
			},
		},
	}
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf)))
	return rec
}

func TestHandleLanes(t *testing.T) {
	h := New().Handler()
	rec := postJSON(t, h, "/v1/lanes", lanesRequest{Document: testDocument()})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp lanesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Horizontal, 2)
	assert.Equal(t, "plan", resp.Horizontal[0].LaneID)
	assert.Equal(t, 0.0, resp.Horizontal[0].Offset)
	assert.Equal(t, "build", resp.Horizontal[1].LaneID)
	assert.Equal(t, 200.0, resp.Horizontal[1].Offset)

	assert.Equal(t, map[string]string{"a": "plan", "b": "build"}, resp.Assignments)
}

func TestHandleGuides(t *testing.T) {
	h := New().Handler()
	rec := postJSON(t, h, "/v1/guides", dragRequest{
		Document: testDocument(),
		ShapeID:  "b",
		X:        2,
		Y:        300,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp guidesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// b's left/center/right at x=2 all land within the threshold of
	// a's corresponding edges.
	assert.Equal(t, []float64{0, 50, 100}, resp.Guides.Vertical)
	assert.Empty(t, resp.Guides.Horizontal)
}

func TestHandleSnap(t *testing.T) {
	h := New().Handler()
	rec := postJSON(t, h, "/v1/snap", dragRequest{
		Document: testDocument(),
		ShapeID:  "b",
		X:        2,
		Y:        300,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp snapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.X)
	assert.Equal(t, 0.0, *resp.X)
	assert.Nil(t, resp.Y)
}

func TestHandleSnapNoMatch(t *testing.T) {
	h := New().Handler()
	rec := postJSON(t, h, "/v1/snap", dragRequest{
		Document: testDocument(),
		ShapeID:  "b",
		X:        500,
		Y:        500,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp snapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.X)
	assert.Nil(t, resp.Y)
}

func TestHandleErrors(t *testing.T) {
	h := New().Handler()

	t.Run("unknown shape", func(t *testing.T) {
		rec := postJSON(t, h, "/v1/guides", dragRequest{
			Document: testDocument(),
			ShapeID:  "missing",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "SHAPE_NOT_FOUND", body.Code)
	})

	t.Run("duplicate shape ids", func(t *testing.T) {
		doc := testDocument()
		doc.Shapes[1].ID = "a"
		rec := postJSON(t, h, "/v1/lanes", lanesRequest{Document: doc})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/snap", strings.NewReader("{"))
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INVALID_INPUT", body.Code)
	})
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
