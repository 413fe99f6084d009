// Package server exposes a quadtree over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nats-io/nuid"
	"github.com/rs/zerolog"

	"github.com/natalyag236/quadtree"
)

// Server serialises every request on one mutex; the tree itself has no
// locking.
type Server struct {
	mu   sync.Mutex
	tree *quadtree.Quadtree
	log  zerolog.Logger
}

func New(tree *quadtree.Quadtree, log zerolog.Logger) *Server {
	return &Server{tree: tree, log: log}
}

type rectRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type sizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type deleteResponse struct {
	Deleted int `json:"deleted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Router builds the chi router for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Route("/rects", func(r chi.Router) {
		r.Post("/", s.handleInsert)
		r.Get("/", s.handleFind)
		r.Put("/", s.handleUpdate)
		r.Delete("/", s.handleDelete)
		r.Get("/all", s.handleList)
	})
	r.Get("/dump", s.handleDump)
	r.Get("/stats", s.handleStats)
	return r
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("listening")
	return srv.ListenAndServe()
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := nuid.Next()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	var req rectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rect := quadtree.Rectangle{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}

	s.mu.Lock()
	err := s.tree.Insert(rect)
	s.mu.Unlock()

	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, rectRequest(rect))
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	x, y, err := pointParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	rect, ok := s.tree.Find(x, y)
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, quadtree.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rectRequest(rect))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	x, y, err := pointParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var req sizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	err = s.tree.Update(x, y, req.Width, req.Height)
	s.mu.Unlock()

	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, rectRequest{X: x, Y: y, Width: req.Width, Height: req.Height})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	x, y, err := pointParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	n := s.tree.Delete(x, y)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, deleteResponse{Deleted: n})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rects := s.tree.Rectangles()
	s.mu.Unlock()

	resp := make([]rectRequest, len(rects))
	for i, rect := range rects {
		resp[i] = rectRequest(rect)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	dump := s.tree.Dump()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(dump))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats := s.tree.Stats()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stats)
}

func pointParams(r *http.Request) (float64, float64, error) {
	q := r.URL.Query()
	x, err := strconv.ParseFloat(q.Get("x"), 64)
	if err != nil {
		return 0, 0, errors.New("x: " + err.Error())
	}
	y, err := strconv.ParseFloat(q.Get("y"), 64)
	if err != nil {
		return 0, 0, errors.New("y: " + err.Error())
	}
	return x, y, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, quadtree.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, quadtree.ErrOutOfBounds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, quadtree.ErrInvalidRectangle):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
