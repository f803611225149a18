package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/slateboard/slateboard/pkg/errors"
	"github.com/slateboard/slateboard/pkg/geom"
	"github.com/slateboard/slateboard/pkg/observability"
)

// Server wires the geometry endpoints onto a chi router.
type Server struct {
	logger   *log.Logger
	defaults geom.SizeDefaults

	threshold float64
	tolerance float64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSizeDefaults overrides the size-resolution fallback table.
func WithSizeDefaults(d geom.SizeDefaults) Option {
	return func(s *Server) { s.defaults = d }
}

// WithSnapSettings sets the guide threshold and equal-spacing
// tolerance applied to all requests. Non-positive values fall back to
// the pkg/align defaults.
func WithSnapSettings(threshold, tolerance float64) Option {
	return func(s *Server) { s.threshold, s.tolerance = threshold, tolerance }
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/lanes", s.handleLanes)
		r.Post("/guides", s.handleGuides)
		r.Post("/snap", s.handleSnap)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

// observe logs each request and forwards timing to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed.Round(time.Microsecond))
	})
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidShape,
		errors.ErrCodeInvalidLane, errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case errors.ErrCodeShapeNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorBody{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
