// README: Account service: self-retrieval for everyone, listing for admins.
package account

import (
	"context"
	"errors"

	"gari/internal/types"
)

var ErrForbidden = errors.New("caller may not access user records")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Me(ctx context.Context, caller types.Caller) (*User, error) {
	return s.store.Get(ctx, caller.UserID)
}

func (s *Service) Get(ctx context.Context, caller types.Caller, id types.ID) (*User, error) {
	if !caller.Privileged && caller.UserID != id {
		return nil, ErrForbidden
	}
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, caller types.Caller) ([]User, error) {
	if !caller.Privileged {
		return nil, ErrForbidden
	}
	return s.store.List(ctx)
}
