// README: Promotion store backed by PostgreSQL.
package promotion

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("promotion not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// PromotionByCode expects an already upper-cased code.
func (s *Store) PromotionByCode(ctx context.Context, code string) (*Promotion, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, code, description, discount_amount, is_active, valid_from, valid_until
		FROM promotions
		WHERE code = $1`, code,
	)
	var p Promotion
	var desc sql.NullString
	err := row.Scan(&p.ID, &p.Code, &desc, &p.DiscountAmount, &p.IsActive, &p.ValidFrom, &p.ValidUntil)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Description = desc.String
	return &p, nil
}

func (s *Store) ListActiveOffers(ctx context.Context) ([]Offer, error) {
	rows, err := s.db.Query(ctx, `
		SELECT code, description, discount, percent, is_active
		FROM offers
		WHERE is_active
		ORDER BY code`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Offer
	for rows.Next() {
		var o Offer
		var discount sql.NullInt64
		var percent sql.NullFloat64
		if err := rows.Scan(&o.Code, &o.Desc, &discount, &percent, &o.IsActive); err != nil {
			return nil, err
		}
		if discount.Valid {
			o.Discount = &discount.Int64
		}
		if percent.Valid {
			o.Percent = &percent.Float64
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
