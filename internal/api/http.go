package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"vector3d-calc/internal/calc"
	"vector3d-calc/internal/history"
	"vector3d-calc/internal/raster"
	"vector3d-calc/internal/scenecache"
)

// UserHeader carries the caller's user ID. Requests without it are anonymous.
const UserHeader = "X-User-ID"

type Server struct {
	calc   *calc.Calculator
	store  history.Store
	scenes *scenecache.Cache
	render raster.Options
	limit  int
	mux    *http.ServeMux
}

// Options tune a Server; zero values fall back to defaults.
type Options struct {
	Render       raster.Options
	HistoryLimit int
}

func NewServer(store history.Store, scenes *scenecache.Cache, opts Options) *Server {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = history.MaxList
	}
	s := &Server{
		calc:   calc.New(store, calc.ContextUser{}),
		store:  store,
		scenes: scenes,
		render: opts.Render,
		limit:  opts.HistoryLimit,
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.health)

	s.mux.HandleFunc("POST /ops", s.operations)
	s.mux.HandleFunc("POST /ops/{op}", s.operation)
	s.mux.HandleFunc("POST /solve/{problem}", s.solve)

	s.mux.HandleFunc("GET /history", s.listHistory)
	s.mux.HandleFunc("DELETE /history/{id}", s.deleteHistory)

	s.mux.HandleFunc("GET /scene", s.scene)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// userContext attaches the header user, if any, for the calculator.
func userContext(r *http.Request) (context.Context, string) {
	id := r.Header.Get(UserHeader)
	if id == "" {
		return r.Context(), ""
	}
	return calc.WithUser(r.Context(), id), id
}

// decodeBody decodes a JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeJSON encodes v before writing anything, so a value JSON cannot hold
// (an overflowed dot product, say) becomes a 422 instead of an empty 200.
func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("api: encode response: %v", err)
		http.Error(w, "result is not representable as JSON: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(append(data, '\n'))
}
