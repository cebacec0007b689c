// Package usecase provides the business logic for the airport reference
// table and the itinerary search pipeline.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skyfare/flight-fare-service/internal/domain"
	"github.com/skyfare/flight-fare-service/internal/infrastructure/timeutil"
)

// Caller-facing validation messages for the search endpoint.
const (
	msgMissingParams    = "Please make sure you provided all parameters"
	msgDepartureIATA    = "Departure airport iata is not in a valid format"
	msgArrivalIATA      = "Arrival airport iata is not in a valid format"
	msgSameAirports     = "Departure airport should not be the same as arrival airport"
	msgDepartureUnknown = "Departure airport is not available or does not exists"
	msgArrivalUnknown   = "Arrival airport is not available or does not exists"
	msgOutboundDate     = "Invalid outbound date. Please use a valid date in the format 'YYYY-MM-DD'"
	msgInboundDate      = "Invalid inbound date. Please use a valid date in the format 'YYYY-MM-DD'"
	msgOutboundPast     = "Outbound date should not be less than today's date"
	msgInboundBefore    = "Outbound date should not be greater than inbound date"
)

// SearchUseCase defines the itinerary search operation.
type SearchUseCase interface {
	// Search validates the criteria, queries the upstream provider for
	// each direction, prices the options, and returns the combined,
	// sorted result.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
}

// searchUseCase implements SearchUseCase.
type searchUseCase struct {
	store    domain.AirportStore
	provider domain.FareProvider
	pricing  *PricingEngine
	combiner *ItineraryCombiner
	clock    timeutil.Clock
	location *time.Location
}

// NewSearchUseCase creates a SearchUseCase. The clock and location define
// "today" for the outbound-date check; a nil clock means wall time and a
// nil location means UTC.
func NewSearchUseCase(
	store domain.AirportStore,
	provider domain.FareProvider,
	minFeeTax float64,
	maxCombinations int,
	clock timeutil.Clock,
	location *time.Location,
) SearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if location == nil {
		location = time.UTC
	}
	return &searchUseCase{
		store:    store,
		provider: provider,
		pricing:  NewPricingEngine(minFeeTax),
		combiner: NewItineraryCombiner(maxCombinations),
		clock:    clock,
		location: location,
	}
}

// Search implements SearchUseCase.Search.
func (uc *searchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	if err := uc.validate(ctx, criteria); err != nil {
		return nil, err
	}

	outboundDir, inboundDir, err := uc.fetchDirections(ctx, criteria)
	if err != nil {
		return nil, err
	}

	outbound, err := uc.pricing.PriceOptions(outboundDir)
	if err != nil {
		return nil, fmt.Errorf("price outbound options: %w", err)
	}

	if inboundDir == nil {
		return uc.combiner.CombineOneWay(outboundDir.Summary, outbound), nil
	}

	inbound, err := uc.pricing.PriceOptions(inboundDir)
	if err != nil {
		return nil, fmt.Errorf("price inbound options: %w", err)
	}

	return uc.combiner.CombineRoundTrip(outboundDir.Summary, inboundDir.Summary, outbound, inbound), nil
}

// validate applies the search validation rules in order, short-circuiting
// on the first failure.
func (uc *searchUseCase) validate(ctx context.Context, criteria domain.SearchCriteria) error {
	if criteria.Departure == "" || criteria.Arrival == "" || criteria.OutboundDate == "" {
		return domain.NewValidationError("criteria", msgMissingParams)
	}
	if !domain.IsValidIATACode(criteria.Departure) {
		return domain.NewValidationError("departure_airport", msgDepartureIATA)
	}
	if !domain.IsValidIATACode(criteria.Arrival) {
		return domain.NewValidationError("arrival_airport", msgArrivalIATA)
	}
	if criteria.Departure == criteria.Arrival {
		return domain.NewValidationError("arrival_airport", msgSameAirports)
	}

	known, err := uc.store.ExistingCodes(ctx, []string{criteria.Departure, criteria.Arrival})
	if err != nil {
		return domain.WrapStoreError("lookup airports", err)
	}
	knownSet := make(map[string]bool, len(known))
	for _, code := range known {
		knownSet[code] = true
	}
	if !knownSet[criteria.Departure] {
		return domain.NewValidationError("departure_airport", msgDepartureUnknown)
	}
	if !knownSet[criteria.Arrival] {
		return domain.NewValidationError("arrival_airport", msgArrivalUnknown)
	}

	if !domain.IsValidDate(criteria.OutboundDate) {
		return domain.NewValidationError("outbound_date", msgOutboundDate)
	}
	if criteria.InboundDate != "" && !domain.IsValidDate(criteria.InboundDate) {
		return domain.NewValidationError("inbound_date", msgInboundDate)
	}

	today := timeutil.Today(uc.clock, uc.location)
	if normalizeDate(criteria.OutboundDate) < today {
		return domain.NewValidationError("outbound_date", msgOutboundPast)
	}
	if criteria.InboundDate != "" && normalizeDate(criteria.InboundDate) < normalizeDate(criteria.OutboundDate) {
		return domain.NewValidationError("inbound_date", msgInboundBefore)
	}

	return nil
}

// fetchDirections queries the provider for the outbound direction and, for
// round trips, the inbound direction concurrently. Both must succeed.
func (uc *searchUseCase) fetchDirections(ctx context.Context, criteria domain.SearchCriteria) (*domain.DirectionResult, *domain.DirectionResult, error) {
	if !criteria.IsRoundTrip() {
		outbound, err := uc.provider.SearchItineraries(ctx, criteria.Departure, criteria.Arrival, criteria.OutboundDate)
		if err != nil {
			return nil, nil, err
		}
		return outbound, nil, nil
	}

	type directionResult struct {
		dir *domain.DirectionResult
		err error
	}

	outboundChan := make(chan directionResult, 1)
	inboundChan := make(chan directionResult, 1)

	go func() {
		dir, err := uc.provider.SearchItineraries(ctx, criteria.Departure, criteria.Arrival, criteria.OutboundDate)
		outboundChan <- directionResult{dir: dir, err: err}
	}()
	go func() {
		dir, err := uc.provider.SearchItineraries(ctx, criteria.Arrival, criteria.Departure, criteria.InboundDate)
		inboundChan <- directionResult{dir: dir, err: err}
	}()

	outbound := <-outboundChan
	inbound := <-inboundChan

	if outbound.err != nil {
		return nil, nil, outbound.err
	}
	if inbound.err != nil {
		return nil, nil, inbound.err
	}
	return outbound.dir, inbound.dir, nil
}

// normalizeDate zero-pads a validated YYYY-M-D date so dates compare
// correctly as strings.
func normalizeDate(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return date
	}
	for i := 1; i < 3; i++ {
		if len(parts[i]) == 1 {
			parts[i] = "0" + parts[i]
		}
	}
	return strings.Join(parts, "-")
}
