// README: Payment store backed by PostgreSQL.
package payment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gari/internal/types"
)

var ErrNotFound = errors.New("payment not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const paymentColumns = `id, booking_id, user_id, amount, currency, method, status, payment_date`

func (s *Store) Create(ctx context.Context, p *Payment) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(p.ID), string(p.BookingID), string(p.UserID),
		p.Amount.Amount, p.Amount.Currency, p.Method, string(p.Status), p.PaymentDate,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Payment, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = $1`, string(id),
	)
	p, err := scanPayment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]Payment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE user_id = $1
		ORDER BY payment_date DESC`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (s *Store) ListByBooking(ctx context.Context, bookingID types.ID) ([]Payment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE booking_id = $1
		ORDER BY payment_date DESC`, string(bookingID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]Payment, error) {
	var out []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanPayment(row pgx.Row) (*Payment, error) {
	var p Payment
	var method sql.NullString
	var status string
	err := row.Scan(
		&p.ID, &p.BookingID, &p.UserID,
		&p.Amount.Amount, &p.Amount.Currency, &method, &status, &p.PaymentDate,
	)
	if err != nil {
		return nil, err
	}
	p.Method = method.String
	p.Status = Status(status)
	return &p, nil
}
