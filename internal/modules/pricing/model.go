// README: Fare quote with a line-item breakdown for display and audit.
package pricing

import (
	"gari/internal/modules/catalog"
	"gari/internal/types"
)

type EstimateRequest struct {
	Pricing    catalog.Pricing
	DistanceKm float64
	AddOns     []catalog.AddOn
	// Discount is the resolved flat promotion discount; zero when no code
	// was applied.
	Discount int64
}

// Quote is an advisory fare estimate. The booking's final_price is settled
// separately at confirmation and is never overwritten by re-estimation.
type Quote struct {
	BaseFare      int64       `json:"base_fare"`
	Tax           int64       `json:"tax"`
	Insurance     int64       `json:"insurance"`
	ExtraDistance int64       `json:"extra_distance"`
	AddOnTotal    int64       `json:"add_on_total"`
	Discount      int64       `json:"discount"`
	Total         types.Money `json:"total"`
}
