package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Setup registers the cross-cutting middleware on the Echo instance in
// the correct order.
// The order is important:
//  1. CORS - First, so preflight requests are answered before anything else
//  2. RequestID - generate/propagate request ID for all subsequent logging
//  3. RequestLogger - logs all requests with request ID
//  4. Recover - catches panics and returns 500 (wraps handlers)
//
// The access gate (BasicAuth) is not part of this chain; routes attach it
// per group so the health and swagger endpoints stay open.
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(echomw.CORS())
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(echomw.CORS())
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// Chain returns all middleware as a slice for use with route groups.
// Useful when you want to apply middleware to specific route groups only.
func Chain(log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echomw.CORS(),
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}
