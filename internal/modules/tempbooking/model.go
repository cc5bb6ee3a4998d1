// README: Ephemeral pre-booking draft saved before the user authenticates.
package tempbooking

import (
	"time"

	"gari/internal/types"
)

// Draft preserves in-progress search state across the multi-step client
// flow. It carries no car and no price; those are chosen after login.
type Draft struct {
	ID                  types.ID   `json:"id"`
	PickupLocation      string     `json:"pickup_location"`
	DestinationLocation string     `json:"destination_location,omitempty"`
	StartAt             time.Time  `json:"start_at"`
	EndAt               *time.Time `json:"end_at,omitempty"`
	Package             string     `json:"package,omitempty"`
	DriverRequired      bool       `json:"driver_required"`
	NumDays             int        `json:"num_days"`
	CreatedAt           time.Time  `json:"created_at"`
}
