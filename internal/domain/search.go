package domain

import "regexp"

// SearchCriteria defines the parameters for an itinerary search request.
type SearchCriteria struct {
	// Departure is the IATA code of the departure airport (e.g., "JFK")
	Departure string `json:"departure_airport"`

	// Arrival is the IATA code of the arrival airport (e.g., "LAX")
	Arrival string `json:"arrival_airport"`

	// OutboundDate is the outbound travel date in YYYY-MM-DD format
	OutboundDate string `json:"outbound_date"`

	// InboundDate is the optional return travel date in YYYY-MM-DD format.
	// Empty means a one-way search.
	InboundDate string `json:"inbound_date,omitempty"`
}

// IsRoundTrip reports whether an inbound date was supplied.
func (s *SearchCriteria) IsRoundTrip() bool {
	return s.InboundDate != ""
}

// iataRegex matches valid IATA airport codes: exactly 3 uppercase letters.
// Lowercase input is rejected, not normalized.
var iataRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches calendar-date text in YYYY-MM-DD shape with month 1-12
// and day 1-31. Leading zeros on month and day are optional, and day/month
// combinations like February 31 pass; full calendar validation is out of
// scope for compatibility with the provider's accepted formats.
var dateRegex = regexp.MustCompile(`^[0-9]{4}-(0?[1-9]|1[0-2])-(0?[1-9]|[1-2][0-9]|3[0-1])$`)

// IsValidIATACode reports whether code is exactly 3 uppercase letters.
func IsValidIATACode(code string) bool {
	return iataRegex.MatchString(code)
}

// IsValidDate reports whether s looks like a YYYY-MM-DD calendar date.
// Year 0000 is rejected; see dateRegex for the permissive day/month rules.
func IsValidDate(s string) bool {
	if len(s) >= 4 && s[:4] == "0000" {
		return false
	}
	return dateRegex.MatchString(s)
}
