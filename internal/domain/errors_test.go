package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		message string
	}{
		{
			name:    "departure airport field",
			field:   "departure_airport",
			message: "Departure airport iata is not in a valid format",
		},
		{
			name:    "outbound date field",
			field:   "outbound_date",
			message: "Invalid outbound date. Please use a valid date in the format 'YYYY-MM-DD'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.field, err.Field)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.True(t, IsInvalidRequest(err))
		})
	}
}

func TestUpstreamError(t *testing.T) {
	t.Run("message from upstream body", func(t *testing.T) {
		err := NewUpstreamError(502, "no flights available for this route", nil)
		assert.Equal(t, "no flights available for this route", err.Error())
		assert.True(t, IsUpstream(err))
		assert.False(t, IsUpstreamUnauthorized(err))
	})

	t.Run("wrapped transport error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewUpstreamError(0, "", cause)
		assert.Contains(t, err.Error(), "connection refused")
		assert.True(t, IsUpstream(err))
	})

	t.Run("status only", func(t *testing.T) {
		err := NewUpstreamError(503, "", nil)
		assert.Contains(t, err.Error(), "503")
	})
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name      string
		checkFunc func(error) bool
		err       error
		want      bool
	}{
		{
			name:      "IsAirportNotFound with sentinel",
			checkFunc: IsAirportNotFound,
			err:       ErrAirportNotFound,
			want:      true,
		},
		{
			name:      "IsAirportNotFound with wrapped sentinel",
			checkFunc: IsAirportNotFound,
			err:       fmt.Errorf("update JFK: %w", ErrAirportNotFound),
			want:      true,
		},
		{
			name:      "IsAirportNotFound with different error",
			checkFunc: IsAirportNotFound,
			err:       ErrStore,
			want:      false,
		},
		{
			name:      "IsStore with wrapped store error",
			checkFunc: IsStore,
			err:       WrapStoreError("insert airports", errors.New("connection reset")),
			want:      true,
		},
		{
			name:      "IsUpstreamUnauthorized with sentinel",
			checkFunc: IsUpstreamUnauthorized,
			err:       ErrUpstreamUnauthorized,
			want:      true,
		},
		{
			name:      "IsInvalidRequest with unrelated error",
			checkFunc: IsInvalidRequest,
			err:       errors.New("boom"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.checkFunc(tt.err))
		})
	}
}

func TestWrapStoreError_PreservesCause(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := WrapStoreError("delete airports", cause)

	assert.Contains(t, err.Error(), "delete airports")
	assert.Contains(t, err.Error(), "deadlock detected")
	assert.True(t, errors.Is(err, ErrStore))
}
