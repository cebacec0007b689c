// Package domain contains the core business entities and rules for the
// flight fare service. These entities are transport- and storage-agnostic
// and form the foundation upon which all other components are built.
package domain

import "fmt"

// Airport is one row of the airport reference table, keyed by IATA code.
// Rows are inserted or deleted during sync; only Active is ever updated.
type Airport struct {
	// IATA is the 3-letter uppercase airport code (unique key)
	IATA string `json:"iata"`

	// City is the city the airport serves
	City string `json:"city"`

	// Lat is the airport latitude in decimal degrees
	Lat float64 `json:"lat"`

	// Lon is the airport longitude in decimal degrees
	Lon float64 `json:"lon"`

	// State is the state or region of the airport
	State string `json:"state"`

	// Active reports whether the airport is available for search.
	// Defaults to true on creation.
	Active bool `json:"active"`
}

// Validate checks that an upstream-provided airport record carries all
// required fields. Zero coordinates are rejected the same way missing ones
// are; the upstream feed never places airports exactly on the equator or
// prime meridian.
func (a *Airport) Validate() error {
	if a.IATA == "" {
		return fmt.Errorf("%w: airport record is missing iata", ErrInvalidRequest)
	}
	if a.City == "" {
		return fmt.Errorf("%w: airport %s is missing city", ErrInvalidRequest, a.IATA)
	}
	if a.Lat == 0 {
		return fmt.Errorf("%w: airport %s is missing lat", ErrInvalidRequest, a.IATA)
	}
	if a.Lon == 0 {
		return fmt.Errorf("%w: airport %s is missing lon", ErrInvalidRequest, a.IATA)
	}
	if a.State == "" {
		return fmt.Errorf("%w: airport %s is missing state", ErrInvalidRequest, a.IATA)
	}
	return nil
}
