package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error taxonomy. Handlers map these to HTTP
// status codes: validation and not-found are caller-correctable (400),
// upstream and store failures are server-side (500).
var (
	// ErrInvalidRequest indicates malformed, missing, or contradictory input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAirportNotFound indicates an airport code unknown to the reference store.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrUpstream indicates a failure of the third-party flights API.
	ErrUpstream = errors.New("upstream flights API error")

	// ErrUpstreamUnauthorized indicates the configured credentials were
	// rejected by the third-party flights API.
	ErrUpstreamUnauthorized = errors.New("upstream flights API rejected credentials")

	// ErrStore indicates a persistence failure during sync or update.
	ErrStore = errors.New("airport store error")
)

// ValidationError is a field-level validation failure with a
// caller-facing message.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap makes ValidationError match ErrInvalidRequest via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError wraps a third-party API failure with the message the
// upstream reported, if any. The message must never contain credentials.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("upstream flights API error: %v", e.Err)
	}
	return fmt.Sprintf("upstream flights API returned status %d", e.StatusCode)
}

// Unwrap makes UpstreamError match ErrUpstream via errors.Is, along with
// any wrapped cause such as ErrUpstreamUnauthorized.
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrUpstream, e.Err}
	}
	return []error{ErrUpstream}
}

// NewUpstreamError creates an UpstreamError for a failed upstream call.
func NewUpstreamError(statusCode int, message string, err error) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode, Message: message, Err: err}
}

// WrapStoreError wraps a persistence failure so it matches ErrStore.
func WrapStoreError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}

// IsInvalidRequest reports whether err is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsAirportNotFound reports whether err is an unknown-airport failure.
func IsAirportNotFound(err error) bool {
	return errors.Is(err, ErrAirportNotFound)
}

// IsUpstream reports whether err is an upstream API failure.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsUpstreamUnauthorized reports whether err is an upstream credential rejection.
func IsUpstreamUnauthorized(err error) bool {
	return errors.Is(err, ErrUpstreamUnauthorized)
}

// IsStore reports whether err is a persistence failure.
func IsStore(err error) bool {
	return errors.Is(err, ErrStore)
}
