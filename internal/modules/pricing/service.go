// README: Pricing service computes fare estimates.
package pricing

import (
	"errors"
	"math"

	"gari/internal/types"
)

var ErrBadRequest = errors.New("bad pricing request")

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate combines the car's fare tuple, extra-distance charge, add-ons,
// and a flat discount into a quote. The total never goes below zero no
// matter how large the discount is.
func (s *Service) Estimate(req EstimateRequest) (Quote, error) {
	if req.DistanceKm < 0 || req.Discount < 0 {
		return Quote{}, ErrBadRequest
	}

	q := Quote{
		BaseFare:  req.Pricing.BaseFare,
		Tax:       req.Pricing.Tax,
		Insurance: req.Pricing.Insurance,
		Discount:  req.Discount,
	}

	if included := float64(req.Pricing.UnitFareAfterKm); req.DistanceKm > included {
		extraKm := req.DistanceKm - included
		q.ExtraDistance = int64(math.Round(extraKm * float64(req.Pricing.PricePerKmExtra)))
	}

	for _, a := range req.AddOns {
		q.AddOnTotal += a.Price
	}

	total := q.BaseFare + q.Tax + q.Insurance + q.ExtraDistance + q.AddOnTotal - q.Discount
	if total < 0 {
		total = 0
	}
	q.Total = types.Money{Amount: total, Currency: types.DefaultCurrency}
	return q, nil
}
