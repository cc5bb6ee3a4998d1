// README: Payment service: records payments against bookings the caller can
// see. Booking visibility rules carry over unchanged, so a customer can only
// pay for their own booking.
package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gari/internal/modules/booking"
	"gari/internal/types"
)

var (
	ErrBadRequest = errors.New("bad payment request")
	ErrForbidden  = errors.New("caller may not access this payment")
)

// Bookings is satisfied by booking.Service.
type Bookings interface {
	Get(ctx context.Context, caller types.Caller, id types.ID) (*booking.Booking, error)
}

type Service struct {
	store    *Store
	bookings Bookings
}

func NewService(store *Store, bookings Bookings) *Service {
	return &Service{store: store, bookings: bookings}
}

type CreateCommand struct {
	BookingID types.ID
	Amount    types.Money
	Method    string
	Status    Status
}

func (s *Service) Create(ctx context.Context, caller types.Caller, cmd CreateCommand) (*Payment, error) {
	if cmd.BookingID == "" || cmd.Amount.Amount <= 0 {
		return nil, ErrBadRequest
	}
	if cmd.Status == "" {
		cmd.Status = StatusPending
	}
	if !ValidStatus(cmd.Status) {
		return nil, ErrBadRequest
	}

	// Reuse booking visibility: errors from the booking module pass through
	// so a hidden booking reads as not-found, not forbidden.
	b, err := s.bookings.Get(ctx, caller, cmd.BookingID)
	if err != nil {
		return nil, err
	}

	currency := cmd.Amount.Currency
	if currency == "" {
		currency = types.DefaultCurrency
	}
	p := &Payment{
		ID:          types.ID(uuid.NewString()),
		BookingID:   b.ID,
		UserID:      b.UserID,
		Amount:      types.Money{Amount: cmd.Amount.Amount, Currency: currency},
		Method:      cmd.Method,
		Status:      cmd.Status,
		PaymentDate: time.Now(),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, caller types.Caller, id types.ID) (*Payment, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Privileged && p.UserID != caller.UserID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *Service) ListMine(ctx context.Context, caller types.Caller) ([]Payment, error) {
	return s.store.ListByUser(ctx, caller.UserID)
}

func (s *Service) ListByBooking(ctx context.Context, caller types.Caller, bookingID types.ID) ([]Payment, error) {
	if _, err := s.bookings.Get(ctx, caller, bookingID); err != nil {
		return nil, err
	}
	return s.store.ListByBooking(ctx, bookingID)
}
