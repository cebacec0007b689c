// Package response provides standardized HTTP response builders for the
// flight fare API. Every error body is a plain {"message": "..."} object,
// the shape the gate and the handlers share.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Message is the envelope for status and error responses.
type Message struct {
	// Message is a human-readable description of the outcome
	Message string `json:"message"`
}

// Common response messages.
const (
	MsgDatabaseUpdated    = "Database has been updated"
	MsgStatusUpdated      = "Airport status updated sucessfully"
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgActiveRequired     = "Active body parameter for airport is required"
	MsgUnknownIATA        = "Check if the informed iata is a valid iata"
	MsgInternalError      = "Something went wrong, try again latter"
)

// OK writes a 200 OK response with the given payload.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 Created response carrying a message body.
func Created(c echo.Context, message string) error {
	return c.JSON(http.StatusCreated, &Message{Message: message})
}

// OKMessage writes a 200 OK response carrying a message body.
func OKMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, &Message{Message: message})
}

// BadRequest writes a 400 Bad Request response with the given message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &Message{Message: message})
}

// Unauthorized writes a 401 Unauthorized response with the given message.
func Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, &Message{Message: message})
}

// InternalError writes a 500 Internal Server Error response with the
// given message.
func InternalError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, &Message{Message: message})
}

// Health writes the 200 health probe body.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
