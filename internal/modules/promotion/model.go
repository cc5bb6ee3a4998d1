// README: Promotion and offer discount records.
package promotion

import (
	"time"

	"gari/internal/types"
)

// Promotion is a flat booking-time discount gated by an active flag and a
// validity window. Codes are stored uppercase and matched case-insensitively.
type Promotion struct {
	ID             types.ID  `json:"id"`
	Code           string    `json:"code"`
	Description    string    `json:"description,omitempty"`
	DiscountAmount int64     `json:"discount_amount"`
	IsActive       bool      `json:"is_active"`
	ValidFrom      time.Time `json:"valid_from"`
	ValidUntil     time.Time `json:"valid_until"`
}

// Usable reports whether the promotion can be applied at the given instant.
func (p *Promotion) Usable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	return !now.Before(p.ValidFrom) && !now.After(p.ValidUntil)
}

// Offer is a display-side discount without a validity window. Flat and
// percent discounts are independent paths and never compose with Promotion.
type Offer struct {
	Code     string   `json:"code"`
	Desc     string   `json:"desc"`
	Discount *int64   `json:"discount,omitempty"`
	Percent  *float64 `json:"percent,omitempty"`
	IsActive bool     `json:"is_active"`
}
