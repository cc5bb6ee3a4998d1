// README: Availability resolver: pure single-pass filter over the catalog.
package booking

import (
	"strings"
	"time"

	"gari/internal/modules/catalog"
	"gari/internal/types"
)

type SearchQuery struct {
	TripType       string
	PickupLocation string
	Start          time.Time
	End            *time.Time // nil = open-ended request
	NumCars        int        // defaults to 1
}

// CarWindow is a slim view of a confirmed booking used for conflict checks.
type CarWindow struct {
	CarID types.ID
	Start time.Time
	End   *time.Time
}

// FilterAvailable returns the cars with no conflicting confirmed booking.
// Location-bound trip types additionally filter by pickup location name,
// compared case-insensitively. A round-trip request that cannot be satisfied
// atomically (fewer candidates than NumCars) returns an empty result rather
// than a partial list.
func FilterAvailable(cars []catalog.Car, confirmed []CarWindow, q SearchQuery) []catalog.Car {
	numCars := q.NumCars
	if numCars < 1 {
		numCars = 1
	}

	conflicted := make(map[types.ID]bool)
	for _, w := range confirmed {
		if conflicted[w.CarID] {
			continue
		}
		if windowsConflict(w.Start, w.End, q.Start, q.End) {
			conflicted[w.CarID] = true
		}
	}

	out := make([]catalog.Car, 0, len(cars))
	for _, c := range cars {
		if conflicted[c.ID] {
			continue
		}
		if catalog.IsLocationBound(q.TripType) &&
			!strings.EqualFold(c.LocationName, q.PickupLocation) {
			continue
		}
		out = append(out, c)
	}

	if q.TripType == catalog.TripTypeRoundTrip && len(out) < numCars {
		return []catalog.Car{}
	}
	return out
}
