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

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
		       website_link, seeking_venue, seeking_description`

func scanArtist(row rowScanner) (models.Artist, error) {
	var a models.Artist
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, pq.Array(&a.Genres),
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription)
	return a, err
}

func (s *Store) queryArtists(ctx context.Context, query string, args ...any) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

// ListArtists returns every artist in id order.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.queryArtists(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		ORDER BY id ASC
	`)
}

// SearchArtists returns the artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	return s.queryArtists(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY id ASC
	`, likePattern(term))
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	a, err := scanArtist(s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("get artist: %w", err)
	}
	return a, nil
}

// UpcomingShowCountsByArtist counts, per artist, the shows starting at or
// after since.
func (s *Store) UpcomingShowCountsByArtist(ctx context.Context, since time.Time) (map[int64]int, error) {
	return s.upcomingCounts(ctx, `
		SELECT artist_id, COUNT(*)
		FROM shows
		WHERE start_time >= $1
		GROUP BY artist_id
	`, since)
}

// ListShowsByArtist returns the shows an artist plays ordered by start time.
func (s *Store) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingSelect+`
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC
	`, artistID)
}

// CreateArtist inserts an artist and returns it with its generated id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
			                     website_link, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, artist.Name, artist.City, artist.State, artist.Phone, genresArg(artist.Genres),
			artist.ImageLink, artist.FacebookLink, artist.WebsiteLink, artist.SeekingVenue,
			artist.SeekingDescription,
		).Scan(&artist.ID)
	})
	if err != nil {
		return models.Artist{}, persistErr(OpCreate, EntityArtist, NameRef(artist.Name), err)
	}
	return artist, nil
}

// UpdateArtist overwrites every mutable field of an existing artist.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			UPDATE artists
			SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
			    image_link = $6, facebook_link = $7, website_link = $8,
			    seeking_venue = $9, seeking_description = $10
			WHERE id = $11
			RETURNING id
		`, artist.Name, artist.City, artist.State, artist.Phone, genresArg(artist.Genres),
			artist.ImageLink, artist.FacebookLink, artist.WebsiteLink, artist.SeekingVenue,
			artist.SeekingDescription, id,
		).Scan(&artist.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return err
	})
	if err != nil {
		return models.Artist{}, persistErr(OpUpdate, EntityArtist, IDRef(id), err)
	}
	return artist, nil
}

// DeleteArtist removes an artist and every show it plays.
func (s *Store) DeleteArtist(ctx context.Context, id int64) (models.Artist, error) {
	var deleted models.Artist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		a, err := scanArtist(tx.QueryRowContext(ctx, `
			DELETE FROM artists
			WHERE id = $1
			RETURNING `+artistColumns, id))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		deleted = a
		return err
	})
	if err != nil {
		return models.Artist{}, persistErr(OpDelete, EntityArtist, IDRef(id), err)
	}
	return deleted, nil
}
