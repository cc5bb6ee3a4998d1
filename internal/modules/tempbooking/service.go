// README: Temp-booking service: create/fetch unauthenticated drafts.
package tempbooking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gari/internal/types"
)

var ErrBadRequest = errors.New("bad temp booking request")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	PickupLocation      string
	DestinationLocation string
	StartAt             time.Time
	EndAt               *time.Time
	Package             string
	DriverRequired      bool
	NumDays             int
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Draft, error) {
	if cmd.PickupLocation == "" || cmd.StartAt.IsZero() {
		return nil, ErrBadRequest
	}
	if cmd.EndAt != nil && !cmd.EndAt.After(cmd.StartAt) {
		return nil, ErrBadRequest
	}
	numDays := cmd.NumDays
	if numDays < 1 {
		numDays = 1
	}
	d := &Draft{
		ID:                  types.ID(uuid.NewString()),
		PickupLocation:      cmd.PickupLocation,
		DestinationLocation: cmd.DestinationLocation,
		StartAt:             cmd.StartAt,
		EndAt:               cmd.EndAt,
		Package:             cmd.Package,
		DriverRequired:      cmd.DriverRequired,
		NumDays:             numDays,
		CreatedAt:           time.Now(),
	}
	if err := s.store.Put(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Draft, error) {
	return s.store.Get(ctx, id)
}
