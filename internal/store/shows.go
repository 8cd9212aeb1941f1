package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/internal/models"
)

const showListingSelect = `
		SELECT s.id, s.venue_id, v.name, v.image_link,
		       s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON v.id = s.venue_id
		INNER JOIN artists a ON a.id = s.artist_id`

func (s *Store) queryShowListings(ctx context.Context, query string, args ...any) ([]models.ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	var listings []models.ShowListing
	for rows.Next() {
		var l models.ShowListing
		if err := rows.Scan(&l.ShowID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return listings, nil
}

// ListShows returns every show with its venue and artist, ordered by start
// time.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingSelect+`
		ORDER BY s.start_time ASC
	`)
}

// GetShow retrieves a single show with its venue and artist.
func (s *Store) GetShow(ctx context.Context, id int64) (models.ShowListing, error) {
	var l models.ShowListing
	err := s.db.QueryRowContext(ctx, showListingSelect+`
		WHERE s.id = $1
	`, id).Scan(&l.ShowID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
		&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ShowListing{}, ErrShowNotFound
	}
	if err != nil {
		return models.ShowListing{}, fmt.Errorf("get show: %w", err)
	}
	return l, nil
}

// CreateShow books an artist at a venue. Both must exist; otherwise the
// insert is rolled back and the error wraps ErrInvalidReference.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO shows (venue_id, artist_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)
	})
	if err != nil {
		return models.Show{}, persistErr(OpCreate, EntityShow, "", err)
	}
	return show, nil
}
