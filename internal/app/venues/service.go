package venues

import (
	"context"
	"time"

	"fyyur/internal/models"
)

// Store defines persistence operations for venues.
type Store interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	UpcomingShowCountsByVenue(ctx context.Context, since time.Time) (map[int64]int, error)
	ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowListing, error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) (models.Venue, error)
}

// Service coordinates venue pages and venue mutations.
type Service interface {
	// ListGrouped returns every venue grouped by (city, state).
	ListGrouped(ctx context.Context) ([]models.Area, error)
	// Search finds venues whose name contains term, ignoring case.
	Search(ctx context.Context, term string) (models.SearchResults, error)
	// Detail returns the venue page with its past and upcoming shows.
	Detail(ctx context.Context, id int64) (models.VenueDetail, error)
	// Get returns the stored venue for the edit form.
	Get(ctx context.Context, id int64) (models.Venue, error)
	// Create stores a new venue and returns it with its id.
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	// Update overwrites an existing venue.
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	// Delete removes a venue and its shows.
	Delete(ctx context.Context, id int64) (models.Venue, error)
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

// New constructs a venue Service backed by the provided Store.
func New(store Store, opts ...Option) Service {
	s := &service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type areaKey struct {
	city  string
	state string
}

// ListGrouped returns every venue grouped by its exact (city, state) pair.
// Groups appear in the order their first venue is listed.
func (s *service) ListGrouped(ctx context.Context) ([]models.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.UpcomingShowCountsByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	areas := make([]models.Area, 0)
	index := make(map[areaKey]int)
	for _, v := range venues {
		key := areaKey{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, models.Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, models.VenueSummary{
			Venue:            v,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

// Search matches venue names by case-insensitive substring. An empty term
// matches every venue.
func (s *service) Search(ctx context.Context, term string) (models.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResults{}, err
	}

	venues, err := s.store.SearchVenues(ctx, term)
	if err != nil {
		return models.SearchResults{}, err
	}
	counts, err := s.store.UpcomingShowCountsByVenue(ctx, s.now())
	if err != nil {
		return models.SearchResults{}, err
	}

	data := make([]models.SearchMatch, 0, len(venues))
	for _, v := range venues {
		data = append(data, models.SearchMatch{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return models.SearchResults{Count: len(data), Data: data}, nil
}

func (s *service) Detail(ctx context.Context, id int64) (models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.VenueDetail{}, err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return models.VenueDetail{}, err
	}
	shows, err := s.store.ListShowsByVenue(ctx, id)
	if err != nil {
		return models.VenueDetail{}, err
	}
	return models.NewVenueDetail(venue, shows, s.now()), nil
}

func (s *service) Get(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.DeleteVenue(ctx, id)
}
