// README: Pickup/drop location reference data.
package location

import "gari/internal/types"

type Location struct {
	ID      types.ID `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address,omitempty"`
	// Latitude/Longitude are optional; a location without both cannot report
	// a distance and answers "unknown" instead.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	MapURL    string   `json:"map_url,omitempty"`
}

// DistanceTo returns the great-circle distance in km from the given user
// coordinates to this location, or nil when the location has no coordinates.
func (l *Location) DistanceTo(userLat, userLng float64) *float64 {
	if l.Latitude == nil || l.Longitude == nil {
		return nil
	}
	d := greatCircleKm(*l.Latitude, *l.Longitude, userLat, userLng)
	return &d
}
