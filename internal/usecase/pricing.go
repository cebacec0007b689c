package usecase

import (
	"fmt"
	"time"

	"github.com/skyfare/flight-fare-service/internal/domain"
	"github.com/skyfare/flight-fare-service/internal/geo"
)

// feeRate is the proportional fee applied on top of every fare.
const feeRate = 0.10

// timestampLayouts are the accepted upstream timestamp formats, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// PricingEngine enriches raw itinerary options with fees, totals, and
// derived flight metrics. The fee is fare*0.10 with a configured floor.
type PricingEngine struct {
	minFeeTax float64
}

// NewPricingEngine creates a PricingEngine with the given fee floor.
func NewPricingEngine(minFeeTax float64) *PricingEngine {
	return &PricingEngine{minFeeTax: minFeeTax}
}

// Fee returns the unrounded fee for a fare: the larger of the floor and
// 10% of the fare.
func (e *PricingEngine) Fee(fare float64) float64 {
	fee := fare * feeRate
	if fee < e.minFeeTax {
		fee = e.minFeeTax
	}
	return fee
}

// PriceOptions prices every option of one search direction and attaches
// its meta block. The distance comes from the direction's own summary
// coordinates. The input is not mutated; provider-specific fields carry
// through untouched.
func (e *PricingEngine) PriceOptions(dir *domain.DirectionResult) ([]domain.ItineraryOption, error) {
	distance, err := geo.Distance(dir.Summary.From.Lat, dir.Summary.From.Lon, dir.Summary.To.Lat, dir.Summary.To.Lon)
	if err != nil {
		return nil, err
	}

	priced := make([]domain.ItineraryOption, len(dir.Options))
	for i, opt := range dir.Options {
		fare := opt.Price.Fare
		fee := e.Fee(fare)

		// The fee stays unrounded inside the total so the rounded fees
		// field and the rounded total stay consistent with the raw fee.
		fees := geo.Round2(fee)
		total := geo.Round2(fare + fee)
		opt.Price.Fees = &fees
		opt.Price.Total = &total

		meta, err := buildMeta(opt, fare, distance)
		if err != nil {
			return nil, err
		}
		opt.Meta = meta

		priced[i] = opt
	}

	return priced, nil
}

// buildMeta derives the per-option flight metrics from the option's
// timestamps and the direction distance.
func buildMeta(opt domain.ItineraryOption, fare, distanceKm float64) (*domain.OptionMeta, error) {
	departure, err := parseTimestamp(opt.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("departure time: %w", err)
	}
	arrival, err := parseTimestamp(opt.ArrivalTime)
	if err != nil {
		return nil, fmt.Errorf("arrival time: %w", err)
	}

	speed, err := geo.Speed(departure, arrival, distanceKm)
	if err != nil {
		return nil, err
	}
	cost, err := geo.CostPerKm(fare, distanceKm)
	if err != nil {
		return nil, err
	}

	return &domain.OptionMeta{
		RangeKm:        geo.Round2(distanceKm),
		CruiseSpeedKmh: speed,
		CostPerKm:      cost,
	}, nil
}

// parseTimestamp parses an upstream timestamp, accepting RFC 3339 and a
// couple of common zone-less variants.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
