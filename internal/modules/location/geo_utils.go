// Package location — geo_utils contains pure geographic computation helpers.
package location

import "math"

const earthRadiusKm = 6371.0

// greatCircleKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees, via the spherical law of cosines.
func greatCircleKm(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)
	rLng1 := degreesToRadians(lng1)
	rLng2 := degreesToRadians(lng2)

	// Rounding can push the cosine argument fractionally outside [-1, 1]
	// for identical or antipodal points, which would make Acos return NaN.
	arg := math.Sin(rLat1)*math.Sin(rLat2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Cos(rLng2-rLng1)
	arg = clamp(arg, -1, 1)

	return earthRadiusKm * math.Acos(arg)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// roundKm rounds a distance to 2 decimal places for presentation. Callers
// keep full precision internally and round only at the API edge.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
