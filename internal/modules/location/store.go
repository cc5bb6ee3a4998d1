// README: Location store backed by PostgreSQL.
package location

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gari/internal/types"
)

var ErrNotFound = errors.New("location not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const locationColumns = `id, name, address, latitude, longitude, map_url`

func (s *Store) Get(ctx context.Context, id types.ID) (*Location, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+locationColumns+`
		FROM locations
		WHERE id = $1`, string(id),
	)
	return scanLocation(row)
}

func (s *Store) List(ctx context.Context) ([]Location, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+locationColumns+`
		FROM locations
		ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func scanLocation(row pgx.Row) (*Location, error) {
	var l Location
	var address, mapURL sql.NullString
	var lat, lng sql.NullFloat64

	err := row.Scan(&l.ID, &l.Name, &address, &lat, &lng, &mapURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	l.Address = address.String
	l.MapURL = mapURL.String
	if lat.Valid {
		l.Latitude = &lat.Float64
	}
	if lng.Valid {
		l.Longitude = &lng.Float64
	}
	return &l, nil
}
