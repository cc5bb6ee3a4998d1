// README: Booking service: availability search, creation with transactional
// re-check, lifecycle transitions, and ownership visibility.
package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"gari/internal/modules/catalog"
	"gari/internal/modules/pricing"
	"gari/internal/modules/promotion"
	"gari/internal/types"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrNotFound       = errors.New("booking not found")
	ErrCarUnavailable = errors.New("car no longer available for the requested window")
	ErrForbidden      = errors.New("caller may not access this booking")
	ErrInvalidState   = errors.New("invalid state transition")
)

type Catalog interface {
	ListCars(ctx context.Context) ([]catalog.Car, error)
	GetCar(ctx context.Context, id types.ID) (*catalog.Car, error)
	AddOnsByCodes(ctx context.Context, codes []string) ([]catalog.AddOn, error)
}

type PromoValidator interface {
	Validate(ctx context.Context, code string, now time.Time) (*promotion.Promotion, error)
}

type FareEstimator interface {
	Estimate(req pricing.EstimateRequest) (pricing.Quote, error)
}

// RouteEstimator supplies a driving distance when the client did not send
// one. Optional; a nil estimator or an estimator error leaves the distance
// at zero.
type RouteEstimator interface {
	DrivingDistanceKm(ctx context.Context, origin, destination string) (float64, error)
}

// Notifier records a message for a user after a lifecycle change.
// Best-effort: notification failures never fail the booking operation.
type Notifier interface {
	Notify(ctx context.Context, recipient types.ID, subject, message string)
}

type Service struct {
	store    *Store
	catalog  Catalog
	promos   PromoValidator
	fares    FareEstimator
	routes   RouteEstimator
	notifier Notifier
}

func NewService(store *Store, cat Catalog, promos PromoValidator, fares FareEstimator, routes RouteEstimator, notifier Notifier) *Service {
	return &Service{store: store, catalog: cat, promos: promos, fares: fares, routes: routes, notifier: notifier}
}

// Search returns the cars available for the requested window, applying the
// location and round-trip policies. Pure read; no side effects.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]catalog.Car, error) {
	if q.TripType == "" || q.Start.IsZero() {
		return nil, ErrBadRequest
	}
	if q.End != nil && !q.End.After(q.Start) {
		return nil, ErrBadRequest
	}
	cars, err := s.catalog.ListCars(ctx)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.store.ConfirmedWindows(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAvailable(cars, confirmed, q), nil
}

type CreateCommand struct {
	CarID    types.ID
	TripType string

	PickupLocation      string
	PickupPoint         *types.Point
	DropLocation        string
	DropPoint           *types.Point
	DestinationLocation string

	DistanceKm     float64
	StartAt        time.Time
	EndAt          *time.Time
	DurationHours  *int
	NumPassengers  *int
	LuggageCount   *int
	DriverRequired bool

	AddOnCodes []string
	PromoCode  string
}

// Create validates the command, prices the rental, and inserts the booking
// behind the store's transactional availability re-check. The re-check
// guards against the race between search and create: a car that was free
// when searched may have been taken since.
func (s *Service) Create(ctx context.Context, caller types.Caller, cmd CreateCommand) (*Booking, error) {
	if caller.UserID == "" {
		return nil, ErrForbidden
	}
	if cmd.CarID == "" || cmd.TripType == "" || cmd.StartAt.IsZero() || cmd.PickupLocation == "" {
		return nil, ErrBadRequest
	}
	if cmd.EndAt != nil && !cmd.EndAt.After(cmd.StartAt) {
		return nil, ErrBadRequest
	}

	car, err := s.catalog.GetCar(ctx, cmd.CarID)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	addOns, err := s.catalog.AddOnsByCodes(ctx, cmd.AddOnCodes)
	if errors.Is(err, catalog.ErrUnknownAddOn) {
		return nil, ErrBadRequest
	}
	if err != nil {
		return nil, err
	}

	var promo *promotion.Promotion
	if cmd.PromoCode != "" {
		promo, err = s.promos.Validate(ctx, cmd.PromoCode, time.Now())
		if err != nil {
			// Invalid codes reject the creation rather than silently
			// pricing without the discount the user expected.
			return nil, err
		}
	}

	distance := cmd.DistanceKm
	if distance == 0 && s.routes != nil && cmd.DestinationLocation != "" {
		if km, rerr := s.routes.DrivingDistanceKm(ctx, cmd.PickupLocation, cmd.DestinationLocation); rerr == nil {
			distance = km
		} else {
			log.Printf("route estimate failed for booking: %v", rerr)
		}
	}

	var discount int64
	if promo != nil {
		discount = promo.DiscountAmount
	}
	quote, err := s.fares.Estimate(pricing.EstimateRequest{
		Pricing:    car.Pricing,
		DistanceKm: distance,
		AddOns:     addOns,
		Discount:   discount,
	})
	if err != nil {
		return nil, ErrBadRequest
	}

	b := &Booking{
		ID:                  newID(),
		UserID:              caller.UserID,
		CarID:               car.ID,
		TripType:            cmd.TripType,
		PickupLocation:      cmd.PickupLocation,
		PickupPoint:         cmd.PickupPoint,
		DropLocation:        cmd.DropLocation,
		DropPoint:           cmd.DropPoint,
		DestinationLocation: cmd.DestinationLocation,
		DistanceKm:          distance,
		StartAt:             cmd.StartAt,
		EndAt:               cmd.EndAt,
		DurationHours:       cmd.DurationHours,
		NumPassengers:       cmd.NumPassengers,
		LuggageCount:        cmd.LuggageCount,
		DriverRequired:      cmd.DriverRequired,
		AddOnCodes:          cmd.AddOnCodes,
		FareEstimate:        &quote.Total,
		Status:              StatusPending,
		CreatedAt:           time.Now(),
	}
	if promo != nil {
		code := promo.Code
		b.AppliedPromoCode = &code
	}

	if err := s.store.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, b.UserID, "booking created",
			"Your booking for "+car.Name+" is pending confirmation.")
	}
	return b, nil
}

// Get enforces visibility: owners see their own bookings, privileged
// callers see all.
func (s *Service) Get(ctx context.Context, caller types.Caller, id types.ID) (*Booking, error) {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Privileged && b.UserID != caller.UserID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, caller types.Caller) ([]Booking, error) {
	if caller.Privileged {
		return s.store.ListAll(ctx)
	}
	return s.store.ListByUser(ctx, caller.UserID)
}

// UpdateStatus applies a lifecycle transition on behalf of the caller.
// Confirmation settles final_price from the fare estimate; a price that is
// already set stays as it is.
func (s *Service) UpdateStatus(ctx context.Context, caller types.Caller, id types.ID, to Status) (*Booking, error) {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Privileged && b.UserID != caller.UserID {
		return nil, ErrForbidden
	}
	if !CanTransition(b.Status, to) {
		return nil, ErrInvalidState
	}

	var finalPrice *int64
	if to == StatusConfirmed && b.FareEstimate != nil {
		finalPrice = &b.FareEstimate.Amount
	}

	ok, err := s.store.UpdateStatus(ctx, b.ID, b.Status, to, finalPrice)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race with another transition on the same booking.
		return nil, ErrInvalidState
	}

	actor := caller.UserID
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   to,
		ActorID:    &actor,
		CreatedAt:  time.Now(),
	})

	if s.notifier != nil {
		s.notifier.Notify(ctx, b.UserID, "booking "+string(to),
			"Your booking "+string(b.ID)+" is now "+string(to)+".")
	}

	return s.store.Get(ctx, id)
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
