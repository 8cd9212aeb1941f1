// Package memstore keeps venues, artists and shows in process memory. It
// enforces the same references and cascades as the Postgres schema and is
// meant for local runs and tests.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

// Store is a concurrency-safe in-memory record store.
type Store struct {
	mu      sync.RWMutex
	venues  map[int64]models.Venue
	artists map[int64]models.Artist
	shows   map[int64]models.Show
	nextID  map[string]int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		venues:  make(map[int64]models.Venue),
		artists: make(map[int64]models.Artist),
		shows:   make(map[int64]models.Show),
		nextID:  map[string]int64{store.EntityVenue: 1, store.EntityArtist: 1, store.EntityShow: 1},
	}
}

func (s *Store) allocID(entity string) int64 {
	id := s.nextID[entity]
	s.nextID[entity] = id + 1
	return id
}

// containsFold reports whether name contains term under Unicode case folding.
func containsFold(name, term string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(name), folder.String(term))
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ListVenues returns every venue in id order.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.SearchVenues(ctx, "")
}

// SearchVenues returns the venues whose name contains term, ignoring case.
func (s *Store) SearchVenues(_ context.Context, term string) ([]models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var venues []models.Venue
	for _, id := range sortedKeys(s.venues) {
		v := s.venues[id]
		if containsFold(v.Name, term) {
			venues = append(venues, cloneVenue(v))
		}
	}
	return venues, nil
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(_ context.Context, id int64) (models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.venues[id]
	if !ok {
		return models.Venue{}, store.ErrVenueNotFound
	}
	return cloneVenue(v), nil
}

// UpcomingShowCountsByVenue counts, per venue, the shows starting at or after
// since.
func (s *Store) UpcomingShowCountsByVenue(_ context.Context, since time.Time) (map[int64]int, error) {
	return s.upcomingCounts(since, func(sh models.Show) int64 { return sh.VenueID }), nil
}

// ListShowsByVenue returns the shows hosted by a venue ordered by start time.
func (s *Store) ListShowsByVenue(_ context.Context, venueID int64) ([]models.ShowListing, error) {
	return s.listings(func(sh models.Show) bool { return sh.VenueID == venueID }), nil
}

// CreateVenue stores a venue under a fresh id.
func (s *Store) CreateVenue(_ context.Context, venue models.Venue) (models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	venue.ID = s.allocID(store.EntityVenue)
	s.venues[venue.ID] = cloneVenue(venue)
	return cloneVenue(venue), nil
}

// UpdateVenue replaces every mutable field of an existing venue.
func (s *Store) UpdateVenue(_ context.Context, id int64, venue models.Venue) (models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[id]; !ok {
		return models.Venue{}, store.ErrVenueNotFound
	}
	venue.ID = id
	s.venues[id] = cloneVenue(venue)
	return cloneVenue(venue), nil
}

// DeleteVenue removes a venue and the shows it hosts.
func (s *Store) DeleteVenue(_ context.Context, id int64) (models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.venues[id]
	if !ok {
		return models.Venue{}, store.ErrVenueNotFound
	}
	delete(s.venues, id)
	s.cascade(func(sh models.Show) bool { return sh.VenueID == id })
	return v, nil
}

// ListArtists returns every artist in id order.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.SearchArtists(ctx, "")
}

// SearchArtists returns the artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(_ context.Context, term string) ([]models.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var artists []models.Artist
	for _, id := range sortedKeys(s.artists) {
		a := s.artists[id]
		if containsFold(a.Name, term) {
			artists = append(artists, cloneArtist(a))
		}
	}
	return artists, nil
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(_ context.Context, id int64) (models.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.artists[id]
	if !ok {
		return models.Artist{}, store.ErrArtistNotFound
	}
	return cloneArtist(a), nil
}

// UpcomingShowCountsByArtist counts, per artist, the shows starting at or
// after since.
func (s *Store) UpcomingShowCountsByArtist(_ context.Context, since time.Time) (map[int64]int, error) {
	return s.upcomingCounts(since, func(sh models.Show) int64 { return sh.ArtistID }), nil
}

// ListShowsByArtist returns the shows an artist plays ordered by start time.
func (s *Store) ListShowsByArtist(_ context.Context, artistID int64) ([]models.ShowListing, error) {
	return s.listings(func(sh models.Show) bool { return sh.ArtistID == artistID }), nil
}

// CreateArtist stores an artist under a fresh id.
func (s *Store) CreateArtist(_ context.Context, artist models.Artist) (models.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	artist.ID = s.allocID(store.EntityArtist)
	s.artists[artist.ID] = cloneArtist(artist)
	return cloneArtist(artist), nil
}

// UpdateArtist replaces every mutable field of an existing artist.
func (s *Store) UpdateArtist(_ context.Context, id int64, artist models.Artist) (models.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.artists[id]; !ok {
		return models.Artist{}, store.ErrArtistNotFound
	}
	artist.ID = id
	s.artists[id] = cloneArtist(artist)
	return cloneArtist(artist), nil
}

// DeleteArtist removes an artist and the shows it plays.
func (s *Store) DeleteArtist(_ context.Context, id int64) (models.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.artists[id]
	if !ok {
		return models.Artist{}, store.ErrArtistNotFound
	}
	delete(s.artists, id)
	s.cascade(func(sh models.Show) bool { return sh.ArtistID == id })
	return a, nil
}

// ListShows returns every show with its venue and artist, ordered by start
// time.
func (s *Store) ListShows(_ context.Context) ([]models.ShowListing, error) {
	return s.listings(func(models.Show) bool { return true }), nil
}

// GetShow retrieves a single show with its venue and artist.
func (s *Store) GetShow(_ context.Context, id int64) (models.ShowListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sh, ok := s.shows[id]
	if !ok {
		return models.ShowListing{}, store.ErrShowNotFound
	}
	return s.listing(sh), nil
}

// CreateShow books an artist at a venue. A missing venue or artist fails the
// write with a PersistenceError wrapping store.ErrInvalidReference and leaves
// nothing behind.
func (s *Store) CreateShow(_ context.Context, show models.Show) (models.Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[show.VenueID]; !ok {
		return models.Show{}, invalidReference(fmt.Sprintf("venue %d", show.VenueID))
	}
	if _, ok := s.artists[show.ArtistID]; !ok {
		return models.Show{}, invalidReference(fmt.Sprintf("artist %d", show.ArtistID))
	}

	show.ID = s.allocID(store.EntityShow)
	s.shows[show.ID] = show
	return show, nil
}

func invalidReference(what string) error {
	return &store.PersistenceError{
		Op:     store.OpCreate,
		Entity: store.EntityShow,
		Err:    fmt.Errorf("%w: %s", store.ErrInvalidReference, what),
	}
}

// cascade deletes the shows matching fn. Callers hold the write lock.
func (s *Store) cascade(fn func(models.Show) bool) {
	for id, sh := range s.shows {
		if fn(sh) {
			delete(s.shows, id)
		}
	}
}

func (s *Store) upcomingCounts(since time.Time, key func(models.Show) int64) map[int64]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int64]int)
	for _, sh := range s.shows {
		if models.IsUpcoming(sh.StartTime, since) {
			counts[key(sh)]++
		}
	}
	return counts
}

func (s *Store) listings(fn func(models.Show) bool) []models.ShowListing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ShowListing
	for _, id := range sortedKeys(s.shows) {
		if sh := s.shows[id]; fn(sh) {
			out = append(out, s.listing(sh))
		}
	}
	slices.SortStableFunc(out, func(a, b models.ShowListing) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out
}

// listing joins a show with its venue and artist. Callers hold the lock.
func (s *Store) listing(sh models.Show) models.ShowListing {
	v := s.venues[sh.VenueID]
	a := s.artists[sh.ArtistID]
	return models.ShowListing{
		ShowID:          sh.ID,
		VenueID:         sh.VenueID,
		VenueName:       v.Name,
		VenueImageLink:  v.ImageLink,
		ArtistID:        sh.ArtistID,
		ArtistName:      a.Name,
		ArtistImageLink: a.ImageLink,
		StartTime:       sh.StartTime,
	}
}

func cloneVenue(v models.Venue) models.Venue {
	v.Genres = cloneGenres(v.Genres)
	return v
}

func cloneArtist(a models.Artist) models.Artist {
	a.Genres = cloneGenres(a.Genres)
	return a
}

// cloneGenres copies a genre list. An absent list reads back empty, as it
// does from Postgres.
func cloneGenres(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return slices.Clone(genres)
}
