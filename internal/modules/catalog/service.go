// README: Catalog service: lookups plus review creation.
package catalog

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"gari/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListCars(ctx context.Context) ([]Car, error) {
	return s.store.ListCars(ctx)
}

func (s *Service) GetCar(ctx context.Context, id types.ID) (*Car, error) {
	return s.store.GetCar(ctx, id)
}

func (s *Service) AddOnsByCodes(ctx context.Context, codes []string) ([]AddOn, error) {
	return s.store.AddOnsByCodes(ctx, codes)
}

func (s *Service) ListAddOns(ctx context.Context) ([]AddOn, error) {
	return s.store.ListAddOns(ctx)
}

func (s *Service) ListPackages(ctx context.Context) ([]Package, error) {
	return s.store.ListPackages(ctx)
}

func (s *Service) ListPolicies(ctx context.Context) ([]Policy, error) {
	return s.store.ListPolicies(ctx)
}

func (s *Service) ListReviews(ctx context.Context, carID types.ID) ([]Review, error) {
	return s.store.ListReviews(ctx, carID)
}

func (s *Service) CreateReview(ctx context.Context, caller types.Caller, carID types.ID, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidReview
	}
	if _, err := s.store.GetCar(ctx, carID); err != nil {
		return nil, err
	}
	r := &Review{
		ID:        newID(),
		CarID:     carID,
		UserID:    caller.UserID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateReview(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
