package httpapi

import (
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

type searchResponse struct {
	SearchTerm string `json:"search_term"`
	models.SearchResults
}

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Shows []models.ShowView `json:"shows"`
	}{Shows: shows})
}

func (s *Server) handleGetShow(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid show ID"})
		return
	}

	show, err := s.shows.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, show)
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	m := mutation{entity: store.EntityShow, op: store.OpCreate}

	var form forms.ShowForm
	if err := decodeJSON(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if err := form.Validate(); err != nil {
		s.writeValidationError(w, m, err)
		return
	}

	created, err := s.shows.Create(r.Context(), form.Show(s.now()))
	if err == nil {
		m.id = created.ID
	}
	s.writeMutationResult(w, r, m, err)
}
