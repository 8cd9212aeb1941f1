package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"fyyur/internal/logging"
	"fyyur/internal/metrics"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

// VenueService describes venue pages and venue mutations.
type VenueService interface {
	ListGrouped(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (models.SearchResults, error)
	Detail(ctx context.Context, id int64) (models.VenueDetail, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	Delete(ctx context.Context, id int64) (models.Venue, error)
}

// ArtistService describes artist pages and artist mutations.
type ArtistService interface {
	List(ctx context.Context) ([]models.ArtistRef, error)
	Search(ctx context.Context, term string) (models.SearchResults, error)
	Detail(ctx context.Context, id int64) (models.ArtistDetail, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	Delete(ctx context.Context, id int64) (models.Artist, error)
}

// ShowService describes the show listing and show creation.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowView, error)
	Get(ctx context.Context, id int64) (models.ShowView, error)
	Create(ctx context.Context, show models.Show) (models.Show, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	now     func() time.Time
}

// New configures a Server with the given services.
func New(venues VenueService, artists ArtistService, shows ShowService) *Server {
	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
		now:     time.Now,
	}
}

// Routes exposes the HTTP handlers for venues, artists and shows.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Venues
	mux.HandleFunc("GET /api/v1/venues", s.handleListVenues)
	mux.HandleFunc("GET /api/v1/venues/search", s.handleSearchVenues)
	mux.HandleFunc("POST /api/v1/venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /api/v1/venues/{id}", s.handleVenueDetail)
	mux.HandleFunc("GET /api/v1/venues/{id}/edit", s.handleEditVenue)
	mux.HandleFunc("POST /api/v1/venues", s.handleCreateVenue)
	mux.HandleFunc("PUT /api/v1/venues/{id}", s.handleUpdateVenue)
	mux.HandleFunc("DELETE /api/v1/venues/{id}", s.handleDeleteVenue)

	// Artists
	mux.HandleFunc("GET /api/v1/artists", s.handleListArtists)
	mux.HandleFunc("GET /api/v1/artists/search", s.handleSearchArtists)
	mux.HandleFunc("POST /api/v1/artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /api/v1/artists/{id}", s.handleArtistDetail)
	mux.HandleFunc("GET /api/v1/artists/{id}/edit", s.handleEditArtist)
	mux.HandleFunc("POST /api/v1/artists", s.handleCreateArtist)
	mux.HandleFunc("PUT /api/v1/artists/{id}", s.handleUpdateArtist)
	mux.HandleFunc("DELETE /api/v1/artists/{id}", s.handleDeleteArtist)

	// Shows
	mux.HandleFunc("GET /api/v1/shows", s.handleListShows)
	mux.HandleFunc("GET /api/v1/shows/{id}", s.handleGetShow)
	mux.HandleFunc("POST /api/v1/shows", s.handleCreateShow)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields validation.Errors `json:"fields,omitempty"`
}

type failureResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

// mutation describes one create, update or delete request for logging,
// metrics and user-facing messages.
type mutation struct {
	entity string
	op     string
	id     int64
	name   string
}

var entityLabels = map[string]string{
	store.EntityVenue:  "Venue",
	store.EntityArtist: "Artist",
	store.EntityShow:   "Show",
}

var pastTense = map[string]string{
	store.OpCreate: "listed",
	store.OpUpdate: "updated",
	store.OpDelete: "deleted",
}

// success returns the confirmation shown after the mutation commits.
func (m mutation) success() string {
	if m.entity == store.EntityShow {
		return fmt.Sprintf("Show was successfully %s!", pastTense[m.op])
	}
	return fmt.Sprintf("%s %s was successfully %s!", entityLabels[m.entity], m.name, pastTense[m.op])
}

// failure returns the message shown after the store rejects the mutation.
// Update and delete failures name the id, since the record may never have
// been loaded.
func (m mutation) failure() string {
	subject := entityLabels[m.entity]
	switch {
	case m.op != store.OpCreate:
		subject += " " + store.IDRef(m.id)
	case m.name != "":
		subject += " " + m.name
	}
	return fmt.Sprintf("An error occurred. %s could not be %s.", subject, pastTense[m.op])
}

func (s *Server) writeMutationResult(w http.ResponseWriter, r *http.Request, m mutation, err error) {
	metrics.RecordMutation(m.entity, m.op, err)

	if err == nil {
		status := http.StatusOK
		if m.op == store.OpCreate {
			status = http.StatusCreated
		}
		writeJSON(w, status, messageResponse{Message: m.success(), ID: m.id})
		return
	}

	logger := logging.WithContext(r.Context())
	var perr *store.PersistenceError
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Warn().Err(err).Str("entity", m.entity).Str("op", m.op).Int64("id", m.id).Msg("Mutation target not found")
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &perr):
		logger.Error().Err(err).Str("entity", m.entity).Str("op", m.op).Int64("id", m.id).Msg("Mutation rejected by store")
		writeJSON(w, http.StatusUnprocessableEntity, failureResponse{Error: m.failure(), Reason: perr.Err.Error()})
	default:
		logger.Error().Err(err).Str("entity", m.entity).Str("op", m.op).Int64("id", m.id).Msg("Mutation failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func (s *Server) writeValidationError(w http.ResponseWriter, m mutation, err error) {
	metrics.RecordRejectedForm(m.entity, m.op)

	var fields validation.Errors
	if errors.As(err, &fields) {
		writeJSON(w, http.StatusBadRequest, validationResponse{Error: "invalid form", Fields: fields})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// writeLookupError maps a failed read to 404 for unknown ids and 500 for
// everything else.
func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	logging.WithContext(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Request failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
