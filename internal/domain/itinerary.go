package domain

import "encoding/json"

// ItineraryOption is a single flight option returned by the upstream
// provider. Only the fields the pricing pipeline needs are typed;
// everything else the provider sends is captured on decode and re-emitted
// verbatim on encode.
type ItineraryOption struct {
	// DepartureTime is the provider-supplied departure timestamp (ISO 8601 text)
	DepartureTime string `json:"departure_time"`

	// ArrivalTime is the provider-supplied arrival timestamp (ISO 8601 text)
	ArrivalTime string `json:"arrival_time"`

	// Price is the option's price breakdown
	Price PriceBreakdown `json:"price"`

	// Meta carries the derived flight metrics, set by the pricing engine
	Meta *OptionMeta `json:"meta,omitempty"`

	// extra holds provider-specific fields passed through verbatim
	extra map[string]json.RawMessage
}

// optionAlias mirrors ItineraryOption without methods to avoid
// recursion in the custom JSON codec.
type optionAlias struct {
	DepartureTime string         `json:"departure_time"`
	ArrivalTime   string         `json:"arrival_time"`
	Price         PriceBreakdown `json:"price"`
	Meta          *OptionMeta    `json:"meta,omitempty"`
}

// UnmarshalJSON decodes the typed fields and keeps every unknown key so
// the option can be echoed back without losing provider data.
func (o *ItineraryOption) UnmarshalJSON(data []byte) error {
	var alias optionAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	delete(raw, "departure_time")
	delete(raw, "arrival_time")
	delete(raw, "price")
	delete(raw, "meta")

	o.DepartureTime = alias.DepartureTime
	o.ArrivalTime = alias.ArrivalTime
	o.Price = alias.Price
	o.Meta = alias.Meta
	o.extra = raw
	return nil
}

// MarshalJSON re-emits the typed fields alongside the preserved
// provider-specific fields.
func (o ItineraryOption) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(o.extra)+4)
	for k, v := range o.extra {
		out[k] = v
	}
	out["departure_time"] = o.DepartureTime
	out["arrival_time"] = o.ArrivalTime
	out["price"] = o.Price
	if o.Meta != nil {
		out["meta"] = o.Meta
	}
	return json.Marshal(out)
}

// PriceBreakdown is the per-option price block. Fare comes from the
// provider; Fees and Total are derived by the pricing engine. Unknown
// provider fields inside the block are preserved.
type PriceBreakdown struct {
	// Fare is the provider's base fare
	Fare float64 `json:"fare"`

	// Fees is the applied fee, nil until priced
	Fees *float64 `json:"fees,omitempty"`

	// Total is fare plus fee, nil until priced
	Total *float64 `json:"total,omitempty"`

	extra map[string]json.RawMessage
}

type priceAlias struct {
	Fare  float64  `json:"fare"`
	Fees  *float64 `json:"fees,omitempty"`
	Total *float64 `json:"total,omitempty"`
}

// UnmarshalJSON decodes fare/fees/total and keeps unknown keys.
func (p *PriceBreakdown) UnmarshalJSON(data []byte) error {
	var alias priceAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	delete(raw, "fare")
	delete(raw, "fees")
	delete(raw, "total")

	p.Fare = alias.Fare
	p.Fees = alias.Fees
	p.Total = alias.Total
	p.extra = raw
	return nil
}

// MarshalJSON re-emits fare/fees/total alongside preserved provider fields.
func (p PriceBreakdown) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.extra)+3)
	for k, v := range p.extra {
		out[k] = v
	}
	out["fare"] = p.Fare
	if p.Fees != nil {
		out["fees"] = *p.Fees
	}
	if p.Total != nil {
		out["total"] = *p.Total
	}
	return json.Marshal(out)
}

// OptionMeta holds the derived flight metrics attached to a priced option.
type OptionMeta struct {
	// RangeKm is the great-circle distance between the two airports in km
	RangeKm float64 `json:"range"`

	// CruiseSpeedKmh is the implied cruise speed in km/h
	CruiseSpeedKmh float64 `json:"cruise_speed_kmh"`

	// CostPerKm is fare divided by distance
	CostPerKm float64 `json:"cost_per_km"`
}

// Coordinates is a latitude/longitude pair from a provider summary block.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Summary is the provider-supplied summary block for one search direction.
// The raw block is echoed back verbatim; the origin and destination
// coordinates are additionally parsed for distance computation.
type Summary struct {
	// From is the origin airport's coordinates
	From Coordinates

	// To is the destination airport's coordinates
	To Coordinates

	raw json.RawMessage
}

type summaryAlias struct {
	From Coordinates `json:"from"`
	To   Coordinates `json:"to"`
}

// UnmarshalJSON parses the coordinates and retains the raw block.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var alias summaryAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	s.From = alias.From
	s.To = alias.To
	s.raw = append(s.raw[:0], data...)
	return nil
}

// MarshalJSON echoes the provider block verbatim when one was decoded.
func (s Summary) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	return json.Marshal(summaryAlias{From: s.From, To: s.To})
}

// DirectionResult is the upstream search payload for one direction:
// a summary block plus the raw itinerary options.
type DirectionResult struct {
	Summary Summary           `json:"summary"`
	Options []ItineraryOption `json:"options"`
}

// CombinedPrice is the pairwise price of a round-trip combination. Each
// field is the sum of the two legs' corresponding values, rounded at the
// point of summation.
type CombinedPrice struct {
	Fare  float64 `json:"fare"`
	Fees  float64 `json:"fees"`
	Total float64 `json:"total"`
}

// SearchOption is one entry of a search result's options list.
// One-way results carry only Outbound; round-trip results carry both legs
// and the combined price.
type SearchOption struct {
	Outbound      *ItineraryOption `json:"outbound,omitempty"`
	Inbound       *ItineraryOption `json:"inbound,omitempty"`
	CombinedPrice *CombinedPrice   `json:"combinedPrice,omitempty"`
}

// SearchSummary echoes the provider summary blocks for the directions
// that were searched.
type SearchSummary struct {
	Outbound Summary  `json:"outbound"`
	Inbound  *Summary `json:"inbound,omitempty"`
}

// SearchResult is the priced, sorted response of an itinerary search.
type SearchResult struct {
	Summary SearchSummary  `json:"summary"`
	Options []SearchOption `json:"options"`
}
