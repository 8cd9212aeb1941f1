package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	// ErrNotFound signals that an id does not resolve to a stored record.
	ErrNotFound = errors.New("not found")
	// ErrVenueNotFound is returned when a venue id does not exist.
	ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)
	// ErrArtistNotFound is returned when an artist id does not exist.
	ErrArtistNotFound = fmt.Errorf("artist %w", ErrNotFound)
	// ErrShowNotFound is returned when a show id does not exist.
	ErrShowNotFound = fmt.Errorf("show %w", ErrNotFound)
	// ErrInvalidReference indicates a write referenced a venue or artist that
	// does not exist.
	ErrInvalidReference = errors.New("referenced venue or artist does not exist")
	// ErrUnavailable reports that a write could not start because the
	// database was unreachable. Nothing was attempted.
	ErrUnavailable = errors.New("store unavailable")
)

// Entity names used in persistence errors.
const (
	EntityVenue  = "venue"
	EntityArtist = "artist"
	EntityShow   = "show"
)

// Mutation operations used in persistence errors.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// PersistenceError reports a write the store rejected. The transaction that
// carried it has been rolled back.
type PersistenceError struct {
	Op     string
	Entity string
	// Ref identifies the record to a reader: a quoted name on create, "#id"
	// on update and delete.
	Ref string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("could not %s %s: %v", e.Op, e.Entity, e.Err)
	}
	return fmt.Sprintf("could not %s %s %s: %v", e.Op, e.Entity, e.Ref, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NameRef formats a record name for a PersistenceError.
func NameRef(name string) string {
	return fmt.Sprintf("%q", name)
}

// IDRef formats a record id for a PersistenceError.
func IDRef(id int64) string {
	return fmt.Sprintf("#%d", id)
}

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// withTx runs fn inside a transaction. The transaction is rolled back on
// every path that does not reach Commit.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %w", ErrUnavailable, err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// persistErr wraps a failed write. Not-found and unavailable errors pass
// through untouched so callers can tell them apart.
func persistErr(op, entity, ref string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnavailable) {
		return err
	}
	if isForeignKeyViolation(err) {
		err = fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return &PersistenceError{Op: op, Entity: entity, Ref: ref, Err: err}
}

// genresArg binds a genre list. An absent list is stored as an empty array
// since the column is NOT NULL.
func genresArg(genres []string) any {
	if genres == nil {
		genres = []string{}
	}
	return pq.Array(genres)
}

// upcomingCounts runs a "key, count" query and collects it into a map.
func (s *Store) upcomingCounts(ctx context.Context, query string, args ...any) (map[int64]int, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			id    int64
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan upcoming count: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate upcoming counts: %w", err)
	}
	return counts, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// likePattern turns a free-text term into an ILIKE substring pattern,
// escaping the wildcard characters so they match literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
