package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/models"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
		       website_link, genres, seeking_talent, seeking_description`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, pq.Array(&v.Genres),
		&v.SeekingTalent, &v.SeekingDescription)
	return v, err
}

func (s *Store) queryVenues(ctx context.Context, query string, args ...any) ([]models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return venues, nil
}

// ListVenues returns every venue in id order.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.queryVenues(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		ORDER BY id ASC
	`)
}

// SearchVenues returns the venues whose name contains term, ignoring case.
func (s *Store) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	return s.queryVenues(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY id ASC
	`, likePattern(term))
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	v, err := scanVenue(s.db.QueryRowContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("get venue: %w", err)
	}
	return v, nil
}

// UpcomingShowCountsByVenue counts, per venue, the shows starting at or after
// since. Venues without such shows are absent from the map.
func (s *Store) UpcomingShowCountsByVenue(ctx context.Context, since time.Time) (map[int64]int, error) {
	return s.upcomingCounts(ctx, `
		SELECT venue_id, COUNT(*)
		FROM shows
		WHERE start_time >= $1
		GROUP BY venue_id
	`, since)
}

// ListShowsByVenue returns the shows hosted by a venue ordered by start time.
func (s *Store) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingSelect+`
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC
	`, venueID)
}

// CreateVenue inserts a venue and returns it with its generated id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
			                    website_link, genres, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.ImageLink,
			venue.FacebookLink, venue.WebsiteLink, genresArg(venue.Genres), venue.SeekingTalent,
			venue.SeekingDescription,
		).Scan(&venue.ID)
	})
	if err != nil {
		return models.Venue{}, persistErr(OpCreate, EntityVenue, NameRef(venue.Name), err)
	}
	return venue, nil
}

// UpdateVenue overwrites every mutable field of an existing venue.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			UPDATE venues
			SET name = $1, city = $2, state = $3, address = $4, phone = $5,
			    image_link = $6, facebook_link = $7, website_link = $8, genres = $9,
			    seeking_talent = $10, seeking_description = $11
			WHERE id = $12
			RETURNING id
		`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.ImageLink,
			venue.FacebookLink, venue.WebsiteLink, genresArg(venue.Genres), venue.SeekingTalent,
			venue.SeekingDescription, id,
		).Scan(&venue.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	})
	if err != nil {
		return models.Venue{}, persistErr(OpUpdate, EntityVenue, IDRef(id), err)
	}
	return venue, nil
}

// DeleteVenue removes a venue and, through the foreign key cascade, every
// show it hosts. It returns the record as it was before deletion.
func (s *Store) DeleteVenue(ctx context.Context, id int64) (models.Venue, error) {
	var deleted models.Venue
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		v, err := scanVenue(tx.QueryRowContext(ctx, `
			DELETE FROM venues
			WHERE id = $1
			RETURNING `+venueColumns, id))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		deleted = v
		return err
	})
	if err != nil {
		return models.Venue{}, persistErr(OpDelete, EntityVenue, IDRef(id), err)
	}
	return deleted, nil
}
