package http

// StatusRequest is the body of PATCH /airportStatus/:iata. Active is a
// pointer so a missing flag can be told apart from an explicit false.
type StatusRequest struct {
	Active *bool `json:"active"`
}
