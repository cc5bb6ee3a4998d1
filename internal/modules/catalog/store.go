// README: Catalog store backed by PostgreSQL (read-mostly reference data).
package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gari/internal/types"
)

var (
	ErrNotFound      = errors.New("car not found")
	ErrUnknownAddOn  = errors.New("unknown add-on code")
	ErrInvalidReview = errors.New("invalid review")
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const carColumns = `
	c.id, c.name, c.description, c.car_type, c.car_group, c.variant,
	c.model_year, c.registration_number, c.location_id, l.name,
	c.fuel, c.transmission, c.color, c.engine, c.mileage,
	c.seats, c.luggage, c.ac, c.is_fulfillment_center,
	c.base_fare, c.tax, c.unit_fare, c.unit_fare_after_km,
	c.price_per_km_extra, c.insurance`

func (s *Store) ListCars(ctx context.Context) ([]Car, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+carColumns+`
		FROM cars c
		LEFT JOIN locations l ON l.id = c.location_id
		ORDER BY c.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCars(ctx, s, rows)
}

func (s *Store) GetCar(ctx context.Context, id types.ID) (*Car, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+carColumns+`
		FROM cars c
		LEFT JOIN locations l ON l.id = c.location_id
		WHERE c.id = $1`, string(id),
	)
	c, err := scanCar(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadCarRefs(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) loadCarRefs(ctx context.Context, c *Car) error {
	tts, err := s.carStrings(ctx, `
		SELECT t.name FROM trip_types t
		JOIN car_trip_types ct ON ct.trip_type_id = t.id
		WHERE ct.car_id = $1 ORDER BY t.name`, c.ID)
	if err != nil {
		return err
	}
	c.TripTypes = tts

	fs, err := s.carStrings(ctx, `
		SELECT f.name FROM car_features f
		JOIN car_feature_links cf ON cf.feature_id = f.id
		WHERE cf.car_id = $1 ORDER BY f.name`, c.ID)
	if err != nil {
		return err
	}
	c.Features = fs
	return nil
}

func (s *Store) carStrings(ctx context.Context, query string, id types.ID) ([]string, error) {
	rows, err := s.db.Query(ctx, query, string(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// AddOnsByCodes resolves the given codes; any unknown code fails the lookup.
func (s *Store) AddOnsByCodes(ctx context.Context, codes []string) ([]AddOn, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx, `
		SELECT code, name, description, price
		FROM add_ons
		WHERE code = ANY($1)`, codes,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AddOn
	for rows.Next() {
		var a AddOn
		var desc sql.NullString
		if err := rows.Scan(&a.Code, &a.Name, &desc, &a.Price); err != nil {
			return nil, err
		}
		a.Description = desc.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) != len(codes) {
		return nil, ErrUnknownAddOn
	}
	return out, nil
}

func (s *Store) ListAddOns(ctx context.Context) ([]AddOn, error) {
	rows, err := s.db.Query(ctx, `
		SELECT code, name, description, price
		FROM add_ons ORDER BY code`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AddOn
	for rows.Next() {
		var a AddOn
		var desc sql.NullString
		if err := rows.Scan(&a.Code, &a.Name, &desc, &a.Price); err != nil {
			return nil, err
		}
		a.Description = desc.String
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) ListPackages(ctx context.Context) ([]Package, error) {
	rows, err := s.db.Query(ctx, `SELECT label, hours, kms FROM packages ORDER BY hours`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Package
	for rows.Next() {
		var p Package
		if err := rows.Scan(&p.Label, &p.Hours, &p.Kms); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) ListPolicies(ctx context.Context) ([]Policy, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, text, is_active FROM policies
		WHERE is_active ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Policy
	for rows.Next() {
		var p Policy
		if err := rows.Scan(&p.ID, &p.Text, &p.IsActive); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) ListReviews(ctx context.Context, carID types.ID) ([]Review, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, car_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE car_id = $1
		ORDER BY created_at DESC`, string(carID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var r Review
		var comment sql.NullString
		if err := rows.Scan(&r.ID, &r.CarID, &r.UserID, &r.Rating, &comment, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Comment = comment.String
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) CreateReview(ctx context.Context, r *Review) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO reviews (id, car_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(r.ID), string(r.CarID), string(r.UserID), r.Rating, r.Comment, r.CreatedAt,
	)
	return err
}

func scanCars(ctx context.Context, s *Store, rows pgx.Rows) ([]Car, error) {
	var out []Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := s.loadCarRefs(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scanCar(row pgx.Row) (*Car, error) {
	var c Car
	var desc, regNo, fuel, transmission, color, engine, mileage, locName sql.NullString
	var locID sql.NullString

	err := row.Scan(
		&c.ID, &c.Name, &desc, &c.CarType, &c.Group, &c.Variant,
		&c.ModelYear, &regNo, &locID, &locName,
		&fuel, &transmission, &color, &engine, &mileage,
		&c.Seats, &c.Luggage, &c.AC, &c.IsFulfillmentCenter,
		&c.Pricing.BaseFare, &c.Pricing.Tax, &c.Pricing.UnitFare,
		&c.Pricing.UnitFareAfterKm, &c.Pricing.PricePerKmExtra, &c.Pricing.Insurance,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.Description = desc.String
	c.RegistrationNumber = regNo.String
	c.Fuel = fuel.String
	c.Transmission = transmission.String
	c.Color = color.String
	c.Engine = engine.String
	c.Mileage = mileage.String
	c.LocationName = locName.String
	if locID.Valid {
		id := types.ID(locID.String)
		c.LocationID = &id
	}
	return &c, nil
}
