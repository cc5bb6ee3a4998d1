package pricing

import (
	"testing"

	"gari/internal/modules/catalog"
)

func TestService_Estimate(t *testing.T) {
	svc := NewService()

	standard := catalog.Pricing{
		BaseFare:        200,
		Tax:             20,
		UnitFare:        10,
		UnitFareAfterKm: 10,
		PricePerKmExtra: 12,
		Insurance:       0,
	}

	tests := []struct {
		name      string
		req       EstimateRequest
		wantTotal int64
	}{
		{
			name:      "base fare plus tax only (within included km)",
			req:       EstimateRequest{Pricing: standard, DistanceKm: 5},
			wantTotal: 220,
		},
		{
			name:      "promo discount (base 200 + tax 20 - 50)",
			req:       EstimateRequest{Pricing: standard, DistanceKm: 5, Discount: 50},
			wantTotal: 170,
		},
		{
			name: "extra distance charge (15km -> 5km excess * 12)",
			req:  EstimateRequest{Pricing: standard, DistanceKm: 15},
			// 200 + 20 + 5*12
			wantTotal: 280,
		},
		{
			name:      "distance exactly at threshold charges nothing extra",
			req:       EstimateRequest{Pricing: standard, DistanceKm: 10},
			wantTotal: 220,
		},
		{
			name: "fractional excess rounds to nearest unit",
			req:  EstimateRequest{Pricing: standard, DistanceKm: 10.5},
			// 200 + 20 + round(0.5*12)
			wantTotal: 226,
		},
		{
			name: "add-ons summed into the total",
			req: EstimateRequest{Pricing: standard, DistanceKm: 5, AddOns: []catalog.AddOn{
				{Code: "GPS", Price: 30},
				{Code: "SEAT", Price: 15},
			}},
			wantTotal: 265,
		},
		{
			name: "insurance included in base computation",
			req: EstimateRequest{
				Pricing:    catalog.Pricing{BaseFare: 100, Tax: 10, Insurance: 40, UnitFareAfterKm: 10},
				DistanceKm: 1,
			},
			wantTotal: 150,
		},
		{
			name:      "discount larger than fare floors at zero",
			req:       EstimateRequest{Pricing: catalog.Pricing{BaseFare: 100, UnitFareAfterKm: 10}, Discount: 500},
			wantTotal: 0,
		},
		{
			name: "everything together",
			req: EstimateRequest{
				Pricing:    standard,
				DistanceKm: 20,
				AddOns:     []catalog.AddOn{{Code: "GPS", Price: 30}},
				Discount:   50,
			},
			// 200 + 20 + 10*12 + 30 - 50
			wantTotal: 320,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := svc.Estimate(tt.req)
			if err != nil {
				t.Fatalf("Estimate() error: %v", err)
			}
			if q.Total.Amount != tt.wantTotal {
				t.Errorf("Estimate() total = %d, want %d", q.Total.Amount, tt.wantTotal)
			}
			if q.Total.Amount < 0 {
				t.Errorf("Estimate() total is negative")
			}
		})
	}
}

func TestService_Estimate_Breakdown(t *testing.T) {
	svc := NewService()
	q, err := svc.Estimate(EstimateRequest{
		Pricing:    catalog.Pricing{BaseFare: 200, Tax: 20, Insurance: 10, UnitFareAfterKm: 10, PricePerKmExtra: 12},
		DistanceKm: 15,
		AddOns:     []catalog.AddOn{{Code: "GPS", Price: 30}},
		Discount:   50,
	})
	if err != nil {
		t.Fatalf("Estimate() error: %v", err)
	}
	if q.BaseFare != 200 || q.Tax != 20 || q.Insurance != 10 {
		t.Errorf("unexpected base breakdown: %+v", q)
	}
	if q.ExtraDistance != 60 {
		t.Errorf("ExtraDistance = %d, want 60", q.ExtraDistance)
	}
	if q.AddOnTotal != 30 {
		t.Errorf("AddOnTotal = %d, want 30", q.AddOnTotal)
	}
	if q.Discount != 50 {
		t.Errorf("Discount = %d, want 50", q.Discount)
	}
	sum := q.BaseFare + q.Tax + q.Insurance + q.ExtraDistance + q.AddOnTotal - q.Discount
	if q.Total.Amount != sum {
		t.Errorf("Total = %d, breakdown sums to %d", q.Total.Amount, sum)
	}
}

func TestService_Estimate_BadRequest(t *testing.T) {
	svc := NewService()
	if _, err := svc.Estimate(EstimateRequest{DistanceKm: -1}); err != ErrBadRequest {
		t.Errorf("negative distance: err = %v, want ErrBadRequest", err)
	}
	if _, err := svc.Estimate(EstimateRequest{Discount: -5}); err != ErrBadRequest {
		t.Errorf("negative discount: err = %v, want ErrBadRequest", err)
	}
}
