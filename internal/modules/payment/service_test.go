package payment

import (
	"context"
	"errors"
	"testing"

	"gari/internal/modules/booking"
	"gari/internal/types"
)

// failingBookings is a test double that rejects every lookup.
type failingBookings struct{ err error }

func (f *failingBookings) Get(context.Context, types.Caller, types.ID) (*booking.Booking, error) {
	return nil, f.err
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(nil, nil) // validation happens before any dependency is touched
	caller := types.Caller{UserID: "user1"}

	cases := []struct {
		name string
		cmd  CreateCommand
	}{
		{"missing booking id", CreateCommand{Amount: types.Money{Amount: 100}}},
		{"zero amount", CreateCommand{BookingID: "b1"}},
		{"negative amount", CreateCommand{BookingID: "b1", Amount: types.Money{Amount: -5}}},
		{"unknown status", CreateCommand{BookingID: "b1", Amount: types.Money{Amount: 100}, Status: "settled"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), caller, tc.cmd); !errors.Is(err, ErrBadRequest) {
				t.Errorf("Create = %v, want ErrBadRequest", err)
			}
		})
	}
}

func TestCreatePropagatesBookingVisibility(t *testing.T) {
	svc := NewService(nil, &failingBookings{err: booking.ErrForbidden})
	_, err := svc.Create(context.Background(), types.Caller{UserID: "user1"}, CreateCommand{
		BookingID: "b1",
		Amount:    types.Money{Amount: 100},
	})
	if !errors.Is(err, booking.ErrForbidden) {
		t.Errorf("Create = %v, want booking.ErrForbidden passed through", err)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPaid, StatusFailed, StatusRefunded} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	if ValidStatus("settled") {
		t.Error(`ValidStatus("settled") = true`)
	}
}
