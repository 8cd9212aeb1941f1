package shows

import (
	"context"

	"fyyur/internal/models"
)

// Store defines persistence operations for shows.
type Store interface {
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	GetShow(ctx context.Context, id int64) (models.ShowListing, error)
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
}

// Service coordinates show-related operations. Shows are never updated;
// they disappear only when their venue or artist is deleted.
type Service interface {
	List(ctx context.Context) ([]models.ShowView, error)
	Get(ctx context.Context, id int64) (models.ShowView, error)
	Create(ctx context.Context, show models.Show) (models.Show, error)
}

type service struct {
	store Store
}

// New constructs a shows Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.ShowView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	listings, err := s.store.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.ShowView, 0, len(listings))
	for _, l := range listings {
		views = append(views, l.View())
	}
	return views, nil
}

func (s *service) Get(ctx context.Context, id int64) (models.ShowView, error) {
	if err := ctx.Err(); err != nil {
		return models.ShowView{}, err
	}

	listing, err := s.store.GetShow(ctx, id)
	if err != nil {
		return models.ShowView{}, err
	}
	return listing.View(), nil
}

func (s *service) Create(ctx context.Context, show models.Show) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}
	return s.store.CreateShow(ctx, show)
}
