package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

type stubVenueService struct {
	areas     []models.Area
	results   models.SearchResults
	detail    models.VenueDetail
	venue     models.Venue
	deleted   models.Venue
	err       error
	lastTerm  string
	lastID    int64
	lastVenue models.Venue
}

func (s *stubVenueService) ListGrouped(context.Context) ([]models.Area, error) {
	return s.areas, s.err
}

func (s *stubVenueService) Search(_ context.Context, term string) (models.SearchResults, error) {
	s.lastTerm = term
	return s.results, s.err
}

func (s *stubVenueService) Detail(_ context.Context, id int64) (models.VenueDetail, error) {
	s.lastID = id
	return s.detail, s.err
}

func (s *stubVenueService) Get(_ context.Context, id int64) (models.Venue, error) {
	s.lastID = id
	return s.venue, s.err
}

func (s *stubVenueService) Create(_ context.Context, venue models.Venue) (models.Venue, error) {
	s.lastVenue = venue
	if s.err != nil {
		return models.Venue{}, s.err
	}
	venue.ID = 41
	return venue, nil
}

func (s *stubVenueService) Update(_ context.Context, id int64, venue models.Venue) (models.Venue, error) {
	s.lastID = id
	s.lastVenue = venue
	if s.err != nil {
		return models.Venue{}, s.err
	}
	venue.ID = id
	return venue, nil
}

func (s *stubVenueService) Delete(_ context.Context, id int64) (models.Venue, error) {
	s.lastID = id
	return s.deleted, s.err
}

type stubArtistService struct {
	refs       []models.ArtistRef
	results    models.SearchResults
	detail     models.ArtistDetail
	artist     models.Artist
	deleted    models.Artist
	err        error
	lastTerm   string
	lastID     int64
	lastArtist models.Artist
}

func (s *stubArtistService) List(context.Context) ([]models.ArtistRef, error) {
	return s.refs, s.err
}

func (s *stubArtistService) Search(_ context.Context, term string) (models.SearchResults, error) {
	s.lastTerm = term
	return s.results, s.err
}

func (s *stubArtistService) Detail(_ context.Context, id int64) (models.ArtistDetail, error) {
	s.lastID = id
	return s.detail, s.err
}

func (s *stubArtistService) Get(_ context.Context, id int64) (models.Artist, error) {
	s.lastID = id
	return s.artist, s.err
}

func (s *stubArtistService) Create(_ context.Context, artist models.Artist) (models.Artist, error) {
	s.lastArtist = artist
	if s.err != nil {
		return models.Artist{}, s.err
	}
	artist.ID = 7
	return artist, nil
}

func (s *stubArtistService) Update(_ context.Context, id int64, artist models.Artist) (models.Artist, error) {
	s.lastID = id
	s.lastArtist = artist
	if s.err != nil {
		return models.Artist{}, s.err
	}
	artist.ID = id
	return artist, nil
}

func (s *stubArtistService) Delete(_ context.Context, id int64) (models.Artist, error) {
	s.lastID = id
	return s.deleted, s.err
}

type stubShowService struct {
	views    []models.ShowView
	view     models.ShowView
	err      error
	lastShow models.Show
}

func (s *stubShowService) List(context.Context) ([]models.ShowView, error) {
	return s.views, s.err
}

func (s *stubShowService) Get(context.Context, int64) (models.ShowView, error) {
	return s.view, s.err
}

func (s *stubShowService) Create(_ context.Context, show models.Show) (models.Show, error) {
	s.lastShow = show
	if s.err != nil {
		return models.Show{}, s.err
	}
	show.ID = 3
	return show, nil
}

var fixedNow = time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, venues *stubVenueService, artists *stubArtistService, shows *stubShowService) *Server {
	t.Helper()
	if venues == nil {
		venues = &stubVenueService{}
	}
	if artists == nil {
		artists = &stubArtistService{}
	}
	if shows == nil {
		shows = &stubShowService{}
	}
	server := New(venues, artists, shows)
	server.now = func() time.Time { return fixedNow }
	return server
}

func serve(t *testing.T, server *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var payload T
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func validVenueForm() map[string]any {
	return map[string]any{
		"name":          "The Musical Hop",
		"city":          "San Francisco",
		"state":         "ca",
		"address":       "1015 Folsom Street",
		"phone":         "123-123-1234",
		"genres":        []string{"Jazz", "Reggae"},
		"website_link":  "https://www.themusicalhop.com",
		"facebook_link": "https://www.facebook.com/TheMusicalHop",
	}
}

func validArtistForm() map[string]any {
	return map[string]any{
		"name":   "Guns N Petals",
		"city":   "San Francisco",
		"state":  "CA",
		"phone":  "326-123-5000",
		"genres": []string{"Rock n Roll"},
	}
}

func TestHealth(t *testing.T) {
	rr := serve(t, newTestServer(t, nil, nil, nil), http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK || rr.Body.String() != "OK" {
		t.Fatalf("expected 200 OK, got %d %q", rr.Code, rr.Body.String())
	}
}

func TestListVenuesGrouped(t *testing.T) {
	venues := &stubVenueService{areas: []models.Area{{
		City:  "San Francisco",
		State: "CA",
		Venues: []models.VenueSummary{
			{Venue: models.Venue{ID: 1, Name: "The Musical Hop"}, NumUpcomingShows: 0},
			{Venue: models.Venue{ID: 3, Name: "Park Square Live Music & Coffee"}, NumUpcomingShows: 1},
		},
	}}}

	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodGet, "/api/v1/venues", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	payload := decodeBody[struct {
		Areas []struct {
			City   string `json:"city"`
			State  string `json:"state"`
			Venues []struct {
				ID               int64 `json:"id"`
				NumUpcomingShows int   `json:"num_upcoming_shows"`
			} `json:"venues"`
		} `json:"areas"`
	}](t, rr)
	if len(payload.Areas) != 1 || len(payload.Areas[0].Venues) != 2 {
		t.Fatalf("unexpected areas payload: %#v", payload.Areas)
	}
	if payload.Areas[0].Venues[1].NumUpcomingShows != 1 {
		t.Fatalf("expected upcoming count 1, got %d", payload.Areas[0].Venues[1].NumUpcomingShows)
	}
}

func TestSearchVenuesQueryAndForm(t *testing.T) {
	venues := &stubVenueService{results: models.SearchResults{
		Count: 1,
		Data:  []models.SearchMatch{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0}},
	}}
	server := newTestServer(t, venues, nil, nil)

	rr := serve(t, server, http.MethodGet, "/api/v1/venues/search?search_term=hop", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if venues.lastTerm != "hop" {
		t.Fatalf("expected term 'hop', got %q", venues.lastTerm)
	}
	payload := decodeBody[struct {
		SearchTerm string `json:"search_term"`
		Count      int    `json:"count"`
		Data       []struct {
			Name string `json:"name"`
		} `json:"data"`
	}](t, rr)
	if payload.SearchTerm != "hop" || payload.Count != 1 || payload.Data[0].Name != "The Musical Hop" {
		t.Fatalf("unexpected search payload: %#v", payload)
	}

	form := url.Values{"search_term": {"Music"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/venues/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr = httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if venues.lastTerm != "Music" {
		t.Fatalf("expected term 'Music', got %q", venues.lastTerm)
	}
}

func TestVenueDetail(t *testing.T) {
	venues := &stubVenueService{detail: models.VenueDetail{
		Venue:              models.Venue{ID: 4, Name: "The Dueling Pianos Bar"},
		PastShows:          []models.ArtistShow{},
		UpcomingShows:      []models.ArtistShow{{ArtistID: 6, ArtistName: "The Wild Sax Band", StartTime: fixedNow.Add(time.Hour)}},
		UpcomingShowsCount: 1,
	}}

	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodGet, "/api/v1/venues/4", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if venues.lastID != 4 {
		t.Fatalf("expected id 4, got %d", venues.lastID)
	}
	payload := decodeBody[struct {
		ID                 int64 `json:"id"`
		PastShowsCount     int   `json:"past_shows_count"`
		UpcomingShowsCount int   `json:"upcoming_shows_count"`
		UpcomingShows      []struct {
			ArtistName string `json:"artist_name"`
		} `json:"upcoming_shows"`
	}](t, rr)
	if payload.ID != 4 || payload.UpcomingShowsCount != 1 || payload.UpcomingShows[0].ArtistName != "The Wild Sax Band" {
		t.Fatalf("unexpected detail payload: %#v", payload)
	}
}

func TestVenueDetailNotFound(t *testing.T) {
	venues := &stubVenueService{err: store.ErrVenueNotFound}
	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodGet, "/api/v1/venues/99", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestVenueDetailInvalidID(t *testing.T) {
	rr := serve(t, newTestServer(t, nil, nil, nil), http.MethodGet, "/api/v1/venues/abc", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestVenueDetailInfrastructureFailure(t *testing.T) {
	venues := &stubVenueService{err: errors.New("connection refused")}
	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodGet, "/api/v1/venues/1", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	payload := decodeBody[errorResponse](t, rr)
	if payload.Error != "internal server error" {
		t.Fatalf("expected generic error, got %q", payload.Error)
	}
}

func TestEditVenueReturnsStoredRecord(t *testing.T) {
	venues := &stubVenueService{venue: models.Venue{ID: 2, Name: "The Dueling Pianos Bar", Genres: []string{"Classical"}}}
	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodGet, "/api/v1/venues/2/edit", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	payload := decodeBody[models.Venue](t, rr)
	if payload.Name != "The Dueling Pianos Bar" || len(payload.Genres) != 1 {
		t.Fatalf("unexpected venue payload: %#v", payload)
	}
}

func TestCreateVenueSuccess(t *testing.T) {
	venues := &stubVenueService{}
	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodPost, "/api/v1/venues", validVenueForm())

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	payload := decodeBody[messageResponse](t, rr)
	if payload.Message != "Venue The Musical Hop was successfully listed!" || payload.ID != 41 {
		t.Fatalf("unexpected response: %#v", payload)
	}
	if venues.lastVenue.State != "CA" || !venues.lastVenue.SeekingTalent {
		t.Fatalf("expected normalized state and default seeking talent, got %#v", venues.lastVenue)
	}
}

func TestCreateVenueValidationError(t *testing.T) {
	venues := &stubVenueService{}
	form := validVenueForm()
	form["name"] = "  "
	form["genres"] = []string{"Polka"}

	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodPost, "/api/v1/venues", form)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	payload := decodeBody[struct {
		Fields map[string]any `json:"fields"`
	}](t, rr)
	if payload.Fields["name"] == nil || payload.Fields["genres"] == nil {
		t.Fatalf("expected name and genres errors, got %#v", payload.Fields)
	}
	if venues.lastVenue.Name != "" {
		t.Fatalf("service should not be called, got %#v", venues.lastVenue)
	}
}

func TestCreateVenueInvalidJSON(t *testing.T) {
	server := newTestServer(t, nil, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/venues", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	server.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestCreateVenuePersistenceFailure(t *testing.T) {
	venues := &stubVenueService{err: &store.PersistenceError{
		Op:     store.OpCreate,
		Entity: store.EntityVenue,
		Ref:    store.NameRef("The Musical Hop"),
		Err:    errors.New("value too long"),
	}}

	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodPost, "/api/v1/venues", validVenueForm())
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}
	payload := decodeBody[failureResponse](t, rr)
	if payload.Error != "An error occurred. Venue The Musical Hop could not be listed." {
		t.Fatalf("unexpected error message %q", payload.Error)
	}
	if payload.Reason != "value too long" {
		t.Fatalf("unexpected reason %q", payload.Reason)
	}
}

func TestCreateVenueStoreUnavailable(t *testing.T) {
	venues := &stubVenueService{err: errors.Join(store.ErrUnavailable, errors.New("connection refused"))}

	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodPost, "/api/v1/venues", validVenueForm())
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	payload := decodeBody[errorResponse](t, rr)
	if payload.Error != "internal server error" {
		t.Fatalf("unexpected error message %q", payload.Error)
	}
}

func TestUpdateVenue(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"success", nil, http.StatusOK, "Venue The Musical Hop was successfully updated!"},
		{"not found", store.ErrVenueNotFound, http.StatusNotFound, "venue not found"},
		{"rejected", &store.PersistenceError{Op: store.OpUpdate, Entity: store.EntityVenue, Ref: store.IDRef(5), Err: errors.New("deadlock")}, http.StatusUnprocessableEntity, "An error occurred. Venue #5 could not be updated."},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			venues := &stubVenueService{err: tc.err}
			rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodPut, "/api/v1/venues/5", validVenueForm())

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if venues.lastID != 5 {
				t.Fatalf("expected id 5, got %d", venues.lastID)
			}
			if !strings.Contains(rr.Body.String(), tc.wantText) {
				t.Fatalf("expected body to contain %q, got %s", tc.wantText, rr.Body.String())
			}
		})
	}
}

func TestDeleteVenue(t *testing.T) {
	venues := &stubVenueService{deleted: models.Venue{ID: 1, Name: "The Musical Hop"}}
	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodDelete, "/api/v1/venues/1", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	payload := decodeBody[messageResponse](t, rr)
	if payload.Message != "Venue The Musical Hop was successfully deleted!" || payload.ID != 1 {
		t.Fatalf("unexpected response: %#v", payload)
	}
}

func TestDeleteVenueNotFound(t *testing.T) {
	venues := &stubVenueService{err: store.ErrVenueNotFound}
	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodDelete, "/api/v1/venues/12", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestDeleteVenueFailureNamesID(t *testing.T) {
	venues := &stubVenueService{err: &store.PersistenceError{Op: store.OpDelete, Entity: store.EntityVenue, Ref: store.IDRef(12), Err: errors.New("lock timeout")}}
	rr := serve(t, newTestServer(t, venues, nil, nil), http.MethodDelete, "/api/v1/venues/12", nil)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}
	payload := decodeBody[failureResponse](t, rr)
	if payload.Error != "An error occurred. Venue #12 could not be deleted." {
		t.Fatalf("unexpected error message %q", payload.Error)
	}
}

func TestListArtists(t *testing.T) {
	artists := &stubArtistService{refs: []models.ArtistRef{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}}
	rr := serve(t, newTestServer(t, nil, artists, nil), http.MethodGet, "/api/v1/artists", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	payload := decodeBody[struct {
		Artists []models.ArtistRef `json:"artists"`
	}](t, rr)
	if len(payload.Artists) != 2 || payload.Artists[1].Name != "Matt Quevedo" {
		t.Fatalf("unexpected artists payload: %#v", payload.Artists)
	}
}

func TestSearchArtists(t *testing.T) {
	artists := &stubArtistService{results: models.SearchResults{Count: 0, Data: []models.SearchMatch{}}}
	rr := serve(t, newTestServer(t, nil, artists, nil), http.MethodGet, "/api/v1/artists/search?search_term=band", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if artists.lastTerm != "band" {
		t.Fatalf("expected term 'band', got %q", artists.lastTerm)
	}
	if !strings.Contains(rr.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty data array, got %s", rr.Body.String())
	}
}

func TestArtistDetailNotFound(t *testing.T) {
	artists := &stubArtistService{err: store.ErrArtistNotFound}
	rr := serve(t, newTestServer(t, nil, artists, nil), http.MethodGet, "/api/v1/artists/8", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestCreateArtistSuccess(t *testing.T) {
	artists := &stubArtistService{}
	form := validArtistForm()
	form["seeking_venue"] = false

	rr := serve(t, newTestServer(t, nil, artists, nil), http.MethodPost, "/api/v1/artists", form)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	payload := decodeBody[messageResponse](t, rr)
	if payload.Message != "Artist Guns N Petals was successfully listed!" || payload.ID != 7 {
		t.Fatalf("unexpected response: %#v", payload)
	}
	if artists.lastArtist.SeekingVenue {
		t.Fatalf("expected seeking venue false, got %#v", artists.lastArtist)
	}
}

func TestUpdateArtistNotFound(t *testing.T) {
	artists := &stubArtistService{err: store.ErrArtistNotFound}
	rr := serve(t, newTestServer(t, nil, artists, nil), http.MethodPut, "/api/v1/artists/77", validArtistForm())
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestDeleteArtist(t *testing.T) {
	artists := &stubArtistService{deleted: models.Artist{ID: 6, Name: "The Wild Sax Band"}}
	rr := serve(t, newTestServer(t, nil, artists, nil), http.MethodDelete, "/api/v1/artists/6", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	payload := decodeBody[messageResponse](t, rr)
	if payload.Message != "Artist The Wild Sax Band was successfully deleted!" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestListShows(t *testing.T) {
	shows := &stubShowService{views: []models.ShowView{{
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.com/gnp.jpg",
		StartTime:       time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC),
	}}}

	rr := serve(t, newTestServer(t, nil, nil, shows), http.MethodGet, "/api/v1/shows", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, `"id"`) {
		t.Fatalf("show listing must not expose show ids: %s", body)
	}
	if !strings.Contains(body, `"venue_name":"The Musical Hop"`) || !strings.Contains(body, `"start_time":"2019-05-21T21:30:00Z"`) {
		t.Fatalf("unexpected shows payload: %s", body)
	}
}

func TestCreateShowDefaultsStartTime(t *testing.T) {
	shows := &stubShowService{}
	rr := serve(t, newTestServer(t, nil, nil, shows), http.MethodPost, "/api/v1/shows", map[string]any{
		"artist_id": 4,
		"venue_id":  1,
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if !shows.lastShow.StartTime.Equal(fixedNow) {
		t.Fatalf("expected start time %v, got %v", fixedNow, shows.lastShow.StartTime)
	}
	payload := decodeBody[messageResponse](t, rr)
	if payload.Message != "Show was successfully listed!" || payload.ID != 3 {
		t.Fatalf("unexpected response: %#v", payload)
	}
}

func TestCreateShowInvalidReference(t *testing.T) {
	shows := &stubShowService{err: &store.PersistenceError{
		Op:     store.OpCreate,
		Entity: store.EntityShow,
		Err:    store.ErrInvalidReference,
	}}

	rr := serve(t, newTestServer(t, nil, nil, shows), http.MethodPost, "/api/v1/shows", map[string]any{
		"artist_id":  4,
		"venue_id":   999,
		"start_time": "2035-04-01T20:00:00Z",
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rr.Code)
	}
	payload := decodeBody[failureResponse](t, rr)
	if payload.Error != "An error occurred. Show could not be listed." {
		t.Fatalf("unexpected error message %q", payload.Error)
	}
	if payload.Reason != store.ErrInvalidReference.Error() {
		t.Fatalf("unexpected reason %q", payload.Reason)
	}
}

func TestCreateShowValidationError(t *testing.T) {
	shows := &stubShowService{}
	rr := serve(t, newTestServer(t, nil, nil, shows), http.MethodPost, "/api/v1/shows", map[string]any{
		"venue_id": 1,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	payload := decodeBody[struct {
		Fields map[string]any `json:"fields"`
	}](t, rr)
	if payload.Fields["artist_id"] == nil {
		t.Fatalf("expected artist_id error, got %#v", payload.Fields)
	}
}
