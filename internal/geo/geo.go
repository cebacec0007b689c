// Package geo provides the flight geometry math used when enriching
// itinerary options: great-circle distance, implied cruise speed, and
// cost per kilometer.
package geo

import (
	"fmt"
	"math"
	"time"
)

// EarthRadiusKm is the average radius of Earth in kilometers.
const EarthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// coordinates using the haversine formula.
// All four inputs must be finite; otherwise an error is returned instead
// of a nonsensical result.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	for _, v := range []float64{lat1, lon1, lat2, lon2} {
		if !isFinite(v) {
			return 0, fmt.Errorf("geo: coordinates must be finite numbers, got (%v, %v) -> (%v, %v)", lat1, lon1, lat2, lon2)
		}
	}

	latDistance := (lat2 - lat1) * math.Pi / 180
	lonDistance := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(latDistance/2)*math.Sin(latDistance/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(lonDistance/2)*math.Sin(lonDistance/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// Speed returns the implied cruise speed in km/h for covering distanceKm
// between departure and arrival, rounded to 2 decimal places.
// A zero or negative duration indicates malformed upstream timestamps and
// is reported as an error rather than producing Inf or NaN.
func Speed(departure, arrival time.Time, distanceKm float64) (float64, error) {
	hours := arrival.Sub(departure).Hours()
	if hours <= 0 {
		return 0, fmt.Errorf("geo: arrival %s is not after departure %s", arrival.Format(time.RFC3339), departure.Format(time.RFC3339))
	}

	return Round2(distanceKm / hours), nil
}

// CostPerKm returns price divided by distance, rounded to 2 decimal places.
// A zero or non-finite distance is reported as an error.
func CostPerKm(price, distanceKm float64) (float64, error) {
	if distanceKm == 0 || !isFinite(distanceKm) {
		return 0, fmt.Errorf("geo: distance must be a finite non-zero number, got %v", distanceKm)
	}

	return Round2(price / distanceKm), nil
}

// Round2 rounds a value to 2 decimal places.
// Non-finite values pass through unchanged so callers can decide how to
// report them.
func Round2(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
