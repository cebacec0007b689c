package usecase

import (
	"sort"

	"github.com/skyfare/flight-fare-service/internal/domain"
	"github.com/skyfare/flight-fare-service/internal/geo"
)

// DefaultMaxCombinations caps the round-trip cross product when no limit
// is configured.
const DefaultMaxCombinations = 10000

// ItineraryCombiner assembles priced direction results into the final
// sorted search payload.
type ItineraryCombiner struct {
	maxCombinations int
}

// NewItineraryCombiner creates a combiner with the given cross-product cap.
// Non-positive caps fall back to the default.
func NewItineraryCombiner(maxCombinations int) *ItineraryCombiner {
	if maxCombinations <= 0 {
		maxCombinations = DefaultMaxCombinations
	}
	return &ItineraryCombiner{maxCombinations: maxCombinations}
}

// CombineOneWay wraps priced outbound options into a result sorted by
// total price ascending. Options with equal totals keep their upstream order.
func (c *ItineraryCombiner) CombineOneWay(summary domain.Summary, outbound []domain.ItineraryOption) *domain.SearchResult {
	options := make([]domain.SearchOption, len(outbound))
	for i := range outbound {
		options[i] = domain.SearchOption{Outbound: &outbound[i]}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return *options[i].Outbound.Price.Total < *options[j].Outbound.Price.Total
	})

	return &domain.SearchResult{
		Summary: domain.SearchSummary{Outbound: summary},
		Options: options,
	}
}

// CombineRoundTrip pairs every outbound option with every inbound option,
// outbound-major, computes each pair's combined price, and sorts the pairs
// by combined total ascending. Pairs beyond the configured cap are not
// generated.
func (c *ItineraryCombiner) CombineRoundTrip(outboundSummary, inboundSummary domain.Summary, outbound, inbound []domain.ItineraryOption) *domain.SearchResult {
	size := len(outbound) * len(inbound)
	if size > c.maxCombinations {
		size = c.maxCombinations
	}

	options := make([]domain.SearchOption, 0, size)
	for i := range outbound {
		if len(options) == size {
			break
		}
		for j := range inbound {
			if len(options) == size {
				break
			}
			options = append(options, domain.SearchOption{
				Outbound:      &outbound[i],
				Inbound:       &inbound[j],
				CombinedPrice: combinePrices(&outbound[i], &inbound[j]),
			})
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].CombinedPrice.Total < options[j].CombinedPrice.Total
	})

	inSummary := inboundSummary
	return &domain.SearchResult{
		Summary: domain.SearchSummary{Outbound: outboundSummary, Inbound: &inSummary},
		Options: options,
	}
}

// combinePrices sums the two legs' fares and their already-rounded fees,
// rounding each combined figure at the point of summation.
func combinePrices(outbound, inbound *domain.ItineraryOption) *domain.CombinedPrice {
	fare := outbound.Price.Fare + inbound.Price.Fare
	fees := *outbound.Price.Fees + *inbound.Price.Fees
	return &domain.CombinedPrice{
		Fare:  geo.Round2(fare),
		Fees:  geo.Round2(fees),
		Total: geo.Round2(fare + fees),
	}
}
