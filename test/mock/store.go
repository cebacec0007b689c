package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/skyfare/flight-fare-service/internal/domain"
)

// Store is a stateful in-memory implementation of domain.AirportStore.
// It lets integration tests run an import and then observe the result
// through the list and status endpoints without a database.
type Store struct {
	airports map[string]domain.Airport
	err      error
	mu       sync.Mutex
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		airports: make(map[string]domain.Airport),
	}
}

// Seed replaces the store contents with the given airports.
func (s *Store) Seed(airports []domain.Airport) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airports = make(map[string]domain.Airport, len(airports))
	for _, a := range airports {
		s.airports[a.IATA] = a
	}
	return s
}

// WithError makes every call fail with the given error.
func (s *Store) WithError(err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// List implements domain.AirportStore.
func (s *Store) List(ctx context.Context) ([]domain.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	out := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IATA < out[j].IATA })
	return out, nil
}

// ExistingCodes implements domain.AirportStore.
func (s *Store) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	var found []string
	for _, code := range codes {
		if _, ok := s.airports[code]; ok {
			found = append(found, code)
		}
	}
	return found, nil
}

// UpdateStatus implements domain.AirportStore.
func (s *Store) UpdateStatus(ctx context.Context, iata string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	a, ok := s.airports[iata]
	if !ok {
		return domain.ErrAirportNotFound
	}
	a.Active = active
	s.airports[iata] = a
	return nil
}

// Count implements domain.AirportStore.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return len(s.airports), nil
}

// InsertBatch implements domain.AirportStore.
func (s *Store) InsertBatch(ctx context.Context, airports []domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for _, a := range airports {
		a.Active = true
		s.airports[a.IATA] = a
	}
	return nil
}

// DeleteByCodes implements domain.AirportStore.
func (s *Store) DeleteByCodes(ctx context.Context, codes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for _, code := range codes {
		delete(s.airports, code)
	}
	return nil
}

// WithTx implements domain.AirportStore. The in-memory store has no
// transactions, so fn runs against the store itself.
func (s *Store) WithTx(ctx context.Context, fn func(domain.AirportStore) error) error {
	if err := func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.err
	}(); err != nil {
		return err
	}
	return fn(s)
}
