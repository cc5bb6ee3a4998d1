package location

import (
	"math"
	"testing"
)

func TestGreatCircleKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{
			name: "same point",
			lat1: 12.97, lng1: 77.59,
			lat2:      12.97, lng2: 77.59,
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name: "Bengaluru to Mysuru (~140km)",
			lat1: 12.9716, lng1: 77.5946,
			lat2:      12.2958, lng2: 76.6394,
			wantKm:    128,
			tolerance: 10,
		},
		{
			name: "New York to Los Angeles (~3944km)",
			lat1: 40.7128, lng1: -74.0060,
			lat2:      34.0522, lng2: -118.2437,
			wantKm:    3944,
			tolerance: 50,
		},
		{
			name: "antipodal points (half circumference)",
			lat1: 0, lng1: 0,
			lat2:      0, lng2: 180,
			wantKm:    math.Pi * earthRadiusKm,
			tolerance: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := greatCircleKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.IsNaN(got) {
				t.Fatalf("greatCircleKm() = NaN")
			}
			if got < 0 {
				t.Fatalf("greatCircleKm() = %f, want non-negative", got)
			}
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("greatCircleKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestGreatCircleKm_Symmetry(t *testing.T) {
	d1 := greatCircleKm(12.97, 77.59, 13.08, 80.27)
	d2 := greatCircleKm(13.08, 80.27, 12.97, 77.59)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

// Identical coordinates push the cosine argument marginally above 1; without
// the clamp Acos would return NaN.
func TestGreatCircleKm_ClampDefined(t *testing.T) {
	pts := []struct{ lat, lng float64 }{
		{0, 0},
		{90, 0},
		{-90, 0},
		{12.970001, 77.590001},
		{51.5074, -0.1278},
	}
	for _, p := range pts {
		got := greatCircleKm(p.lat, p.lng, p.lat, p.lng)
		if math.IsNaN(got) {
			t.Errorf("greatCircleKm(%v) = NaN, clamp failed", p)
		}
		if got > 0.001 {
			t.Errorf("greatCircleKm(%v) = %f, want ~0", p, got)
		}
	}
}

func TestDistanceTo_MissingCoordinates(t *testing.T) {
	lat := 12.97
	tests := []struct {
		name string
		loc  Location
	}{
		{"no coordinates", Location{Name: "Depot"}},
		{"missing longitude", Location{Name: "Depot", Latitude: &lat}},
		{"missing latitude", Location{Name: "Depot", Longitude: &lat}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.DistanceTo(12.97, 77.59); got != nil {
				t.Errorf("DistanceTo() = %v, want nil for missing coordinates", *got)
			}
		})
	}
}

func TestDistanceTo_Known(t *testing.T) {
	lat, lng := 12.97, 77.59
	loc := Location{Name: "MG Road", Latitude: &lat, Longitude: &lng}
	got := loc.DistanceTo(12.97, 77.59)
	if got == nil {
		t.Fatal("DistanceTo() = nil, want a distance")
	}
	if *got > 0.001 {
		t.Errorf("DistanceTo(same point) = %f, want ~0", *got)
	}
}

func TestRoundKm(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.23456, 1.23},
		{1.235, 1.24},
		{0, 0},
		{128.999, 129.0},
	}
	for _, tt := range tests {
		if got := roundKm(tt.in); got != tt.want {
			t.Errorf("roundKm(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
