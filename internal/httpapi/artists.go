package httpapi

import (
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Artists []models.ArtistRef `json:"artists"`
	}{Artists: artists})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	results, err := s.artists.Search(r.Context(), term)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{SearchTerm: term, SearchResults: results})
}

func (s *Server) handleArtistDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	detail, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	m := mutation{entity: store.EntityArtist, op: store.OpCreate}

	var form forms.ArtistForm
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

	created, err := s.artists.Create(r.Context(), form.Artist())
	if err == nil {
		m.id = created.ID
	}
	s.writeMutationResult(w, r, m, err)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}
	m := mutation{entity: store.EntityArtist, op: store.OpUpdate, id: id}

	var form forms.ArtistForm
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

	_, err = s.artists.Update(r.Context(), id, form.Artist())
	s.writeMutationResult(w, r, m, err)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist ID"})
		return
	}
	m := mutation{entity: store.EntityArtist, op: store.OpDelete, id: id}

	deleted, err := s.artists.Delete(r.Context(), id)
	if err == nil {
		m.name = deleted.Name
	}
	s.writeMutationResult(w, r, m, err)
}
