package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// AirportStore is the persistence port for the airport reference table.
// The postgres adapter implements it; the usecase layer depends only on
// this interface.
type AirportStore interface {
	// List returns the full reference table ordered by IATA code.
	List(ctx context.Context) ([]Airport, error)

	// ExistingCodes returns the subset of codes present in the store.
	ExistingCodes(ctx context.Context, codes []string) ([]string, error)

	// UpdateStatus sets the active flag of one airport.
	// Returns ErrAirportNotFound if the code is unknown.
	UpdateStatus(ctx context.Context, iata string, active bool) error

	// Count returns the number of airports in the store.
	Count(ctx context.Context) (int, error)

	// InsertBatch inserts the given airports. Active defaults to true.
	InsertBatch(ctx context.Context, airports []Airport) error

	// DeleteByCodes removes the airports with the given IATA codes.
	DeleteByCodes(ctx context.Context, codes []string) error

	// WithTx runs fn against a store bound to a single transaction,
	// committing on nil and rolling back on error. The reconciliation
	// sync uses it to keep add and remove all-or-nothing.
	WithTx(ctx context.Context, fn func(AirportStore) error) error
}

// FareProvider is the port to the third-party flights API.
type FareProvider interface {
	// FetchAirports returns the authoritative airport list.
	FetchAirports(ctx context.Context) ([]Airport, error)

	// SearchItineraries returns the raw itinerary options and summary
	// for one direction on one date.
	SearchItineraries(ctx context.Context, from, to, date string) (*DirectionResult, error)
}
