// README: Booking store backed by PostgreSQL; creation is a transactional
// lock-check-insert so racing requests for the same car serialize.
package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gari/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const bookingColumns = `
	id, user_id, car_id, trip_type,
	pickup_location, pickup_lat, pickup_lng,
	drop_location, drop_lat, drop_lng, destination_location,
	distance_km, start_at, end_at, duration_hours,
	num_passengers, luggage_count, driver_required,
	applied_promo_code, fare_estimate, final_price,
	status, created_at`

// CreateIfAvailable inserts the booking only if no pending or confirmed
// booking occupies the car in the requested window. The car row is locked
// first so the conflict check and the insert are atomic: of two racing
// creates, exactly one wins and the other gets ErrCarUnavailable.
func (s *Store) CreateIfAvailable(ctx context.Context, b *Booking) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var carID string
	err = tx.QueryRow(ctx, `SELECT id FROM cars WHERE id = $1 FOR UPDATE`, string(b.CarID)).Scan(&carID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	// Same half-open window predicate as windowsConflict, in SQL. Pending
	// holds also block here: of two racing creates for the same window, the
	// second must lose even though neither is confirmed yet.
	var conflict bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE car_id = $1
			  AND status IN ('pending','confirmed')
			  AND (($3::timestamptz IS NOT NULL AND start_at < $3)
			    OR ($3::timestamptz IS NULL AND start_at <= $2))
			  AND (end_at IS NULL OR end_at > $2)
		)`, string(b.CarID), b.StartAt, b.EndAt,
	).Scan(&conflict)
	if err != nil {
		return err
	}
	if conflict {
		return ErrCarUnavailable
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18,
			$19, $20, $21,
			$22, $23
		)`,
		string(b.ID), string(b.UserID), string(b.CarID), b.TripType,
		b.PickupLocation, pointLat(b.PickupPoint), pointLng(b.PickupPoint),
		nullString(b.DropLocation), pointLat(b.DropPoint), pointLng(b.DropPoint), nullString(b.DestinationLocation),
		b.DistanceKm, b.StartAt, b.EndAt, b.DurationHours,
		b.NumPassengers, b.LuggageCount, b.DriverRequired,
		b.AppliedPromoCode, moneyAmount(b.FareEstimate), moneyAmount(b.FinalPrice),
		string(b.Status), b.CreatedAt,
	)
	if err != nil {
		return err
	}

	for _, code := range b.AddOnCodes {
		if _, err := tx.Exec(ctx, `
			INSERT INTO booking_add_ons (booking_id, add_on_code)
			VALUES ($1, $2)`, string(b.ID), code,
		); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO booking_state_events (booking_id, from_status, to_status, actor_id, created_at)
		VALUES ($1, '', $2, $3, $4)`,
		string(b.ID), string(b.Status), string(b.UserID), b.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1`, string(id),
	)
	b, err := scanBooking(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadAddOnCodes(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.scanBookings(ctx, rows)
}

func (s *Store) ListAll(ctx context.Context) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.scanBookings(ctx, rows)
}

// ConfirmedWindows returns the [start, end) windows of all confirmed
// bookings for the availability search. Only confirmed bookings block the
// search; pending holds matter only at creation time.
func (s *Store) ConfirmedWindows(ctx context.Context) ([]CarWindow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT car_id, start_at, end_at
		FROM bookings
		WHERE status = 'confirmed'`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CarWindow
	for rows.Next() {
		var w CarWindow
		var end sql.NullTime
		if err := rows.Scan(&w.CarID, &w.Start, &end); err != nil {
			return nil, err
		}
		if end.Valid {
			t := end.Time
			w.End = &t
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// UpdateStatus performs a compare-and-swap on the status column. When
// finalPrice is non-nil it is applied only if final_price is still unset;
// an already-settled price is never overwritten.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status, finalPrice *int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET status = $1,
		    final_price = COALESCE(final_price, $2)
		WHERE id = $3 AND status = $4`,
		string(to), finalPrice, string(id), string(from),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) AppendEvent(ctx context.Context, e *Event) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO booking_state_events (booking_id, from_status, to_status, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(e.BookingID), string(e.FromStatus), string(e.ToStatus), idPtr(e.ActorID), e.CreatedAt,
	)
	return err
}

func (s *Store) loadAddOnCodes(ctx context.Context, b *Booking) error {
	rows, err := s.db.Query(ctx, `
		SELECT add_on_code FROM booking_add_ons
		WHERE booking_id = $1
		ORDER BY add_on_code`, string(b.ID),
	)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return err
		}
		b.AddOnCodes = append(b.AddOnCodes, code)
	}
	return rows.Err()
}

func (s *Store) scanBookings(ctx context.Context, rows pgx.Rows) ([]Booking, error) {
	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := s.loadAddOnCodes(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var pickupLat, pickupLng, dropLat, dropLng sql.NullFloat64
	var dropLoc, destLoc, promoCode sql.NullString
	var endAt sql.NullTime
	var durationHours, numPassengers, luggageCount sql.NullInt64
	var fareEstimate, finalPrice sql.NullInt64

	err := row.Scan(
		&b.ID, &b.UserID, &b.CarID, &b.TripType,
		&b.PickupLocation, &pickupLat, &pickupLng,
		&dropLoc, &dropLat, &dropLng, &destLoc,
		&b.DistanceKm, &b.StartAt, &endAt, &durationHours,
		&numPassengers, &luggageCount, &b.DriverRequired,
		&promoCode, &fareEstimate, &finalPrice,
		&b.Status, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	b.PickupPoint = nullPoint(pickupLat, pickupLng)
	b.DropPoint = nullPoint(dropLat, dropLng)
	b.DropLocation = dropLoc.String
	b.DestinationLocation = destLoc.String
	if endAt.Valid {
		t := endAt.Time
		b.EndAt = &t
	}
	b.DurationHours = nullInt(durationHours)
	b.NumPassengers = nullInt(numPassengers)
	b.LuggageCount = nullInt(luggageCount)
	if promoCode.Valid {
		b.AppliedPromoCode = &promoCode.String
	}
	b.FareEstimate = nullMoney(fareEstimate)
	b.FinalPrice = nullMoney(finalPrice)
	return &b, nil
}

func pointLat(p *types.Point) *float64 {
	if p == nil {
		return nil
	}
	return &p.Lat
}

func pointLng(p *types.Point) *float64 {
	if p == nil {
		return nil
	}
	return &p.Lng
}

func nullString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func nullPoint(lat, lng sql.NullFloat64) *types.Point {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &types.Point{Lat: lat.Float64, Lng: lng.Float64}
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullMoney(v sql.NullInt64) *types.Money {
	if !v.Valid {
		return nil
	}
	return &types.Money{Amount: v.Int64, Currency: types.DefaultCurrency}
}

func moneyAmount(m *types.Money) *int64 {
	if m == nil {
		return nil
	}
	return &m.Amount
}

func idPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
