package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the API routes. Everything except the health
// probe sits behind the access gate passed in as gate middleware; swagger
// is registered separately in main.
func RegisterRoutes(e *echo.Echo, h *Handler, gate ...echo.MiddlewareFunc) {
	// Health check endpoint, open for load balancers
	e.GET("/health", h.Health)

	api := e.Group("", gate...)
	api.GET("/importAirports", h.ImportAirports)
	api.GET("/getAirports", h.GetAirports)
	api.PATCH("/airportStatus/:iata", h.UpdateAirportStatus)

	// Echo has no optional path parameters, so the round-trip variant is
	// a second route.
	api.GET("/search/:departure_airport/:arrival_airport/:outbound_date", h.SearchFlights)
	api.GET("/search/:departure_airport/:arrival_airport/:outbound_date/:inbound_date", h.SearchFlights)
}
