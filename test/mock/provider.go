// Package mock provides test doubles for the flight fare service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses) and
// stateful flows (import then list then toggle).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skyfare/flight-fare-service/internal/domain"
)

// Provider is a configurable mock implementation of domain.FareProvider.
// It supports configurable delays, errors, and per-route direction
// payloads for testing various scenarios including concurrency.
type Provider struct {
	airports   []domain.Airport
	directions map[string]*domain.DirectionResult
	err        error
	delay      time.Duration
	callCount  int
	mu         sync.Mutex
}

// NewProvider creates a new mock provider. It is configured using the
// builder pattern methods.
func NewProvider() *Provider {
	return &Provider{
		directions: make(map[string]*domain.DirectionResult),
	}
}

// WithAirports sets the airport list returned by FetchAirports.
func (p *Provider) WithAirports(airports []domain.Airport) *Provider {
	p.airports = airports
	return p
}

// WithDirection sets the payload returned for a specific route and date.
func (p *Provider) WithDirection(from, to, date string, result *domain.DirectionResult) *Provider {
	p.directions[routeKey(from, to, date)] = result
	return p
}

// WithError makes every call fail with the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay adds an artificial delay to every call. Useful for
// concurrency and timeout tests.
func (p *Provider) WithDelay(delay time.Duration) *Provider {
	p.delay = delay
	return p
}

// CallCount returns how many times the provider was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// FetchAirports implements domain.FareProvider.
func (p *Provider) FetchAirports(ctx context.Context) ([]domain.Airport, error) {
	if err := p.before(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Airport, len(p.airports))
	copy(out, p.airports)
	return out, nil
}

// SearchItineraries implements domain.FareProvider.
func (p *Provider) SearchItineraries(ctx context.Context, from, to, date string) (*domain.DirectionResult, error) {
	if err := p.before(ctx); err != nil {
		return nil, err
	}

	result, ok := p.directions[routeKey(from, to, date)]
	if !ok {
		return nil, domain.NewUpstreamError(404,
			fmt.Sprintf("no flights configured for %s-%s on %s", from, to, date), nil)
	}
	return result, nil
}

// before counts the call, applies the configured delay, and returns the
// configured error if any.
func (p *Provider) before(ctx context.Context) error {
	p.mu.Lock()
	p.callCount++
	delay, err := p.delay, p.err
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func routeKey(from, to, date string) string {
	return from + "/" + to + "/" + date
}
