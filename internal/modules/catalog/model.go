// README: Catalog reference data: cars, add-ons, packages, policies, trip types.
package catalog

import (
	"time"

	"gari/internal/types"
)

// Trip types used by the booking flow. Location-bound types filter the
// availability search down to cars stationed at the pickup location.
const (
	TripTypeHourly     = "Hourly Rental"
	TripTypeOutstation = "Outstation Rental"
	TripTypeOneWay     = "One Way"
	TripTypeRoundTrip  = "Round Trip"
)

func IsLocationBound(tripType string) bool {
	switch tripType {
	case TripTypeHourly, TripTypeOutstation, TripTypeOneWay, TripTypeRoundTrip:
		return true
	}
	return false
}

// Pricing is the per-car fare tuple. Amounts are whole currency units;
// UnitFareAfterKm is the included-distance threshold in km.
type Pricing struct {
	BaseFare        int64 `json:"base_fare"`
	Tax             int64 `json:"tax"`
	UnitFare        int64 `json:"unit_fare"`
	UnitFareAfterKm int   `json:"unit_fare_after_km"`
	PricePerKmExtra int64 `json:"price_per_km_extra"`
	Insurance       int64 `json:"insurance"`
}

type Car struct {
	ID                  types.ID  `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	CarType             string    `json:"car_type"` // Hatchback, Sedan, SUV
	Group               string    `json:"group,omitempty"`
	Variant             string    `json:"variant,omitempty"`
	ModelYear           int       `json:"model_year"`
	RegistrationNumber  string    `json:"registration_number,omitempty"`
	LocationID          *types.ID `json:"location_id,omitempty"`
	LocationName        string    `json:"location_name,omitempty"`
	Fuel                string    `json:"fuel,omitempty"`
	Transmission        string    `json:"transmission,omitempty"`
	Color               string    `json:"color,omitempty"`
	Engine              string    `json:"engine,omitempty"`
	Mileage             string    `json:"mileage,omitempty"`
	Seats               int       `json:"seats"`
	Luggage             int       `json:"luggage"`
	AC                  bool      `json:"ac"`
	IsFulfillmentCenter bool      `json:"is_fulfillment_center"`
	TripTypes           []string  `json:"trip_types,omitempty"`
	Features            []string  `json:"features,omitempty"`
	Pricing             Pricing   `json:"pricing"`
}

type AddOn struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
}

// Package is a display bundle like "4 hr / 40 km".
type Package struct {
	Label string `json:"label"`
	Hours int    `json:"hours"`
	Kms   int    `json:"kms"`
}

type Policy struct {
	ID       types.ID `json:"id"`
	Text     string   `json:"text"`
	IsActive bool     `json:"is_active"`
}

type Review struct {
	ID        types.ID  `json:"id"`
	CarID     types.ID  `json:"car_id"`
	UserID    types.ID  `json:"user_id"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
