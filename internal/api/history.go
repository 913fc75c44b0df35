package api

import (
	"errors"
	"net/http"
	"strconv"

	"vector3d-calc/internal/history"
)

type historyEntry struct {
	history.Record
	Label string `json:"label"`
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	_, user := userContext(r)
	if user == "" {
		http.Error(w, "sign in to see history", http.StatusUnauthorized)
		return
	}
	limit := s.limit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, s.limit)
	}

	recs, err := s.store.List(r.Context(), user, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	out := make([]historyEntry, len(recs))
	for i, rec := range recs {
		out[i] = historyEntry{Record: rec, Label: history.Label(rec.Kind)}
	}
	writeJSON(w, out)
}

func (s *Server) deleteHistory(w http.ResponseWriter, r *http.Request) {
	_, user := userContext(r)
	if user == "" {
		http.Error(w, "sign in to delete history", http.StatusUnauthorized)
		return
	}
	err := s.store.Delete(r.Context(), user, r.PathValue("id"))
	switch {
	case errors.Is(err, history.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
