// README: Location service: listing and distance-from-user queries.
package location

import (
	"context"

	"gari/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Location, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Location, error) {
	return s.store.Get(ctx, id)
}

// Distance returns the distance in km (rounded to 2 dp) from the user's
// position to the location, or nil when the location has no coordinates.
// Missing coordinates are a valid "unknown" answer, not an error.
func (s *Service) Distance(ctx context.Context, id types.ID, userLat, userLng float64) (*float64, error) {
	loc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d := loc.DistanceTo(userLat, userLng)
	if d == nil {
		return nil, nil
	}
	rounded := roundKm(*d)
	return &rounded, nil
}
