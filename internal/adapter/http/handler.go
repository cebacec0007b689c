// Package http provides the HTTP handler layer for the flight fare API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skyfare/flight-fare-service/internal/adapter/http/response"
	"github.com/skyfare/flight-fare-service/internal/domain"
	"github.com/skyfare/flight-fare-service/internal/usecase"
)

// Handler messages for store-side failures, matching the per-endpoint
// wording of the API.
const (
	msgStatusUpdateFailed = "Something went wrong while trying to update airport status"
	msgInvalidIATAParam   = "Iata parameter is not in a valid format"
)

// Handler handles HTTP requests for the airport and search endpoints.
type Handler struct {
	airports usecase.AirportUseCase
	search   usecase.SearchUseCase
}

// NewHandler creates a Handler over the given use cases.
func NewHandler(airports usecase.AirportUseCase, search usecase.SearchUseCase) *Handler {
	return &Handler{
		airports: airports,
		search:   search,
	}
}

// ImportAirports handles GET /importAirports
//
// @Summary Synchronize the airport reference table
// @Description Fetches the authoritative airport list from the third-party API and reconciles the local table against it
// @Tags airports
// @Produce json
// @Success 201 {object} response.Message
// @Failure 401 {object} response.Message "Missing or invalid credentials"
// @Failure 500 {object} response.Message "Upstream or database failure"
// @Router /importAirports [get]
func (h *Handler) ImportAirports(c echo.Context) error {
	if err := h.airports.Import(c.Request().Context()); err != nil {
		return h.handleError(c, err, response.MsgInternalError)
	}
	return response.Created(c, response.MsgDatabaseUpdated)
}

// GetAirports handles GET /getAirports
//
// @Summary List all airports
// @Description Returns the full airport reference table ordered by IATA code
// @Tags airports
// @Produce json
// @Success 200 {array} domain.Airport
// @Failure 401 {object} response.Message "Missing or invalid credentials"
// @Failure 500 {object} response.Message "Database failure"
// @Router /getAirports [get]
func (h *Handler) GetAirports(c echo.Context) error {
	airports, err := h.airports.List(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, response.MsgInternalError)
	}
	return response.OK(c, airports)
}

// UpdateAirportStatus handles PATCH /airportStatus/:iata
//
// @Summary Toggle an airport's active flag
// @Description Sets the active flag of the airport identified by the iata path parameter
// @Tags airports
// @Accept json
// @Produce json
// @Param iata path string true "IATA airport code"
// @Param request body StatusRequest true "New active state"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message "Malformed iata, missing active flag, or unknown airport"
// @Failure 401 {object} response.Message "Missing or invalid credentials"
// @Failure 500 {object} response.Message "Database failure"
// @Router /airportStatus/{iata} [patch]
func (h *Handler) UpdateAirportStatus(c echo.Context) error {
	iata := c.Param("iata")
	if !domain.IsValidIATACode(iata) {
		return response.BadRequest(c, msgInvalidIATAParam)
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, response.MsgInvalidRequestBody)
	}
	if req.Active == nil {
		return response.BadRequest(c, response.MsgActiveRequired)
	}

	if err := h.airports.SetStatus(c.Request().Context(), iata, *req.Active); err != nil {
		return h.handleError(c, err, msgStatusUpdateFailed)
	}
	return response.OKMessage(c, response.MsgStatusUpdated)
}

// SearchFlights handles GET /search/:departure_airport/:arrival_airport/:outbound_date
// and the round-trip variant with a trailing :inbound_date.
//
// @Summary Search priced itineraries
// @Description Queries the third-party API for each direction, prices the options, and returns them sorted by total price
// @Tags search
// @Produce json
// @Param departure_airport path string true "Departure IATA code"
// @Param arrival_airport path string true "Arrival IATA code"
// @Param outbound_date path string true "Outbound date (YYYY-MM-DD)"
// @Param inbound_date path string false "Inbound date (YYYY-MM-DD) for round trips"
// @Success 200 {object} domain.SearchResult
// @Failure 400 {object} response.Message "Validation failure"
// @Failure 401 {object} response.Message "Missing or invalid credentials"
// @Failure 500 {object} response.Message "Upstream or database failure"
// @Router /search/{departure_airport}/{arrival_airport}/{outbound_date} [get]
func (h *Handler) SearchFlights(c echo.Context) error {
	criteria := domain.SearchCriteria{
		Departure:    c.Param("departure_airport"),
		Arrival:      c.Param("arrival_airport"),
		OutboundDate: c.Param("outbound_date"),
		InboundDate:  c.Param("inbound_date"),
	}

	result, err := h.search.Search(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err, response.MsgInternalError)
	}
	return response.OK(c, result)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps domain errors to HTTP responses. Validation and
// unknown-airport failures are the caller's fault (400); upstream and
// store failures are server-side (500). Upstream messages pass through,
// store details never do.
func (h *Handler) handleError(c echo.Context, err error, storeMessage string) error {
	if errors.Is(err, domain.ErrAirportNotFound) {
		return response.BadRequest(c, response.MsgUnknownIATA)
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.BadRequest(c, err.Error())
	}
	if errors.Is(err, domain.ErrUpstream) {
		return response.InternalError(c, upstreamMessage(err))
	}
	if errors.Is(err, domain.ErrStore) {
		return response.InternalError(c, storeMessage)
	}
	return response.InternalError(c, response.MsgInternalError)
}

// upstreamMessage extracts the caller-facing message of an upstream
// failure, falling back to the generic one for bare transport errors.
func upstreamMessage(err error) string {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) && upstream.Message != "" {
		return upstream.Message
	}
	return response.MsgInternalError
}
