// README: Booking aggregate, status table, and window-conflict predicate.
package booking

import (
	"time"

	"gari/internal/types"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID       types.ID `json:"id"`
	UserID   types.ID `json:"user_id"`
	CarID    types.ID `json:"car_id"`
	TripType string   `json:"trip_type"`

	PickupLocation      string       `json:"pickup_location"`
	PickupPoint         *types.Point `json:"pickup_point,omitempty"`
	DropLocation        string       `json:"drop_location,omitempty"`
	DropPoint           *types.Point `json:"drop_point,omitempty"`
	DestinationLocation string       `json:"destination_location,omitempty"`

	DistanceKm     float64    `json:"distance_km"`
	StartAt        time.Time  `json:"start_at"`
	EndAt          *time.Time `json:"end_at,omitempty"` // nil = open-ended rental
	DurationHours  *int       `json:"duration_hours,omitempty"`
	NumPassengers  *int       `json:"num_passengers,omitempty"`
	LuggageCount   *int       `json:"luggage_count,omitempty"`
	DriverRequired bool       `json:"driver_required"`

	AddOnCodes       []string     `json:"add_on_codes,omitempty"`
	AppliedPromoCode *string      `json:"applied_promo_code,omitempty"`
	FareEstimate     *types.Money `json:"fare_estimate,omitempty"`
	FinalPrice       *types.Money `json:"final_price,omitempty"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID         int64
	BookingID  types.ID
	FromStatus Status
	ToStatus   Status
	ActorID    *types.ID
	CreatedAt  time.Time
}

// AllowedTransitions represents the booking lifecycle as code. Creation
// always starts at pending; nothing leaves cancelled.
var AllowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// windowsConflict reports whether an existing booking window conflicts with
// a requested one. Windows are half-open [start, end): a booking ending at
// 12:00 does not block a request starting at 12:00. A nil existing end means
// the car is occupied indefinitely from its start. A nil requested end is an
// open request: any booking still open at the requested start conflicts.
func windowsConflict(exStart time.Time, exEnd *time.Time, reqStart time.Time, reqEnd *time.Time) bool {
	if reqEnd != nil && !exStart.Before(*reqEnd) {
		return false
	}
	if reqEnd == nil && exStart.After(reqStart) {
		return false
	}
	return exEnd == nil || exEnd.After(reqStart)
}
