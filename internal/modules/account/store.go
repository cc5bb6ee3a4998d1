// README: User store backed by PostgreSQL.
package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gari/internal/types"
)

var ErrNotFound = errors.New("user not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (*User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, username, email, phone, is_customer, is_admin
		FROM users
		WHERE id = $1`, string(id),
	)
	var u User
	var email, phone sql.NullString
	err := row.Scan(&u.ID, &u.Username, &email, &phone, &u.IsCustomer, &u.IsAdmin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Email = email.String
	u.Phone = phone.String
	return &u, nil
}

func (s *Store) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, username, email, phone, is_customer, is_admin
		FROM users
		ORDER BY username`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		var email, phone sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &email, &phone, &u.IsCustomer, &u.IsAdmin); err != nil {
			return nil, err
		}
		u.Email = email.String
		u.Phone = phone.String
		out = append(out, u)
	}
	return out, rows.Err()
}
