package httpapi

import (
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListGrouped(r.Context())
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Areas []models.Area `json:"areas"`
	}{Areas: areas})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	results, err := s.venues.Search(r.Context(), term)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{SearchTerm: term, SearchResults: results})
}

func (s *Server) handleVenueDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	detail, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	m := mutation{entity: store.EntityVenue, op: store.OpCreate}

	var form forms.VenueForm
	if err := decodeJSON(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	form.Normalize()
	m.name = form.Name
	if err := form.Validate(); err != nil {
		s.writeValidationError(w, m, err)
		return
	}

	created, err := s.venues.Create(r.Context(), form.Venue())
	if err == nil {
		m.id = created.ID
	}
	s.writeMutationResult(w, r, m, err)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}
	m := mutation{entity: store.EntityVenue, op: store.OpUpdate, id: id}

	var form forms.VenueForm
	if err := decodeJSON(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	form.Normalize()
	m.name = form.Name
	if err := form.Validate(); err != nil {
		s.writeValidationError(w, m, err)
		return
	}

	_, err = s.venues.Update(r.Context(), id, form.Venue())
	s.writeMutationResult(w, r, m, err)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue ID"})
		return
	}
	m := mutation{entity: store.EntityVenue, op: store.OpDelete, id: id}

	deleted, err := s.venues.Delete(r.Context(), id)
	if err == nil {
		m.name = deleted.Name
	}
	s.writeMutationResult(w, r, m, err)
}
