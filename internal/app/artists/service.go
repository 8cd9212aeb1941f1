package artists

import (
	"context"
	"time"

	"fyyur/internal/models"
)

// Store defines persistence operations for artists.
type Store interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	UpcomingShowCountsByArtist(ctx context.Context, since time.Time) (map[int64]int, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowListing, error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) (models.Artist, error)
}

// Service provides artist-centric operations.
type Service interface {
	// List returns every artist as an id and name.
	List(ctx context.Context) ([]models.ArtistRef, error)
	// Search finds artists whose name contains term, ignoring case.
	Search(ctx context.Context, term string) (models.SearchResults, error)
	// Detail returns the artist page with its past and upcoming shows.
	Detail(ctx context.Context, id int64) (models.ArtistDetail, error)
	// Get returns the stored artist for the edit form.
	Get(ctx context.Context, id int64) (models.Artist, error)
	// Create stores a new artist and returns it with its id.
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	// Update overwrites an existing artist.
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	// Delete removes an artist and its shows.
	Delete(ctx context.Context, id int64) (models.Artist, error)
}

// Option configures a Service.
type Option func(*service)

// WithClock overrides the time source used to split past and upcoming shows.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artist Service backed by the supplied store.
func New(store Store, opts ...Option) Service {
	s := &service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) List(ctx context.Context) ([]models.ArtistRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artists, err := s.store.ListArtists(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]models.ArtistRef, 0, len(artists))
	for _, a := range artists {
		refs = append(refs, a.Ref())
	}
	return refs, nil
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResults{}, err
	}

	artists, err := s.store.SearchArtists(ctx, term)
	if err != nil {
		return models.SearchResults{}, err
	}
	counts, err := s.store.UpcomingShowCountsByArtist(ctx, s.now())
	if err != nil {
		return models.SearchResults{}, err
	}

	data := make([]models.SearchMatch, 0, len(artists))
	for _, a := range artists {
		data = append(data, models.SearchMatch{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return models.SearchResults{Count: len(data), Data: data}, nil
}

func (s *service) Detail(ctx context.Context, id int64) (models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.ArtistDetail{}, err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, err
	}
	shows, err := s.store.ListShowsByArtist(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, err
	}
	return models.NewArtistDetail(artist, shows, s.now()), nil
}

func (s *service) Get(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}

func (s *service) Delete(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.DeleteArtist(ctx, id)
}
