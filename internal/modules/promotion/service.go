// README: Promotion validation: case-folded lookup, active flag, validity window.
package promotion

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrInvalidCode is the single rejection returned for unknown, inactive, and
// out-of-window codes alike, so callers cannot probe which codes exist.
var ErrInvalidCode = errors.New("invalid or inactive code")

// Source abstracts the promotion lookup so validation logic is testable
// without a database.
type Source interface {
	PromotionByCode(ctx context.Context, code string) (*Promotion, error)
	ListActiveOffers(ctx context.Context) ([]Offer, error)
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Validate resolves a promo code at the given instant. Codes are
// case-insensitive from the caller's perspective.
func (s *Service) Validate(ctx context.Context, code string, now time.Time) (*Promotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrInvalidCode
	}
	p, err := s.source.PromotionByCode(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	if !p.Usable(now) {
		return nil, ErrInvalidCode
	}
	return p, nil
}

func (s *Service) ActiveOffers(ctx context.Context) ([]Offer, error) {
	return s.source.ListActiveOffers(ctx)
}
