package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyfare/flight-fare-service/internal/domain"
	"github.com/skyfare/flight-fare-service/internal/infrastructure/timeutil"
)

// fixedClock pins "today" to 2025-06-01 UTC for the date checks.
func fixedClock() timeutil.Clock {
	return timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

// searchCriteria builds a valid round-trip JFK to LAX request.
func searchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Departure:    "JFK",
		Arrival:      "LAX",
		OutboundDate: "2025-06-15",
		InboundDate:  "2025-06-20",
	}
}

// direction builds an upstream payload one degree of longitude long with
// one-hour options at the given fares.
func direction(fares ...float64) *domain.DirectionResult {
	options := make([]domain.ItineraryOption, len(fares))
	for i, fare := range fares {
		options[i] = testOption(fare)
	}
	return &domain.DirectionResult{
		Summary: domain.Summary{
			From: domain.Coordinates{Lat: 0, Lon: 0},
			To:   domain.Coordinates{Lat: 0, Lon: 1},
		},
		Options: options,
	}
}

// storeKnowing returns a store mock that reports the given codes as present.
func storeKnowing(ctrl *gomock.Controller, codes ...string) *domain.MockAirportStore {
	store := domain.NewMockAirportStore(ctrl)
	store.EXPECT().ExistingCodes(gomock.Any(), gomock.Any()).Return(codes, nil).AnyTimes()
	return store
}

func newTestSearch(store domain.AirportStore, provider domain.FareProvider) SearchUseCase {
	return NewSearchUseCase(store, provider, 5, 0, fixedClock(), time.UTC)
}

func TestSearch_Validation(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*domain.SearchCriteria)
		known    []string
		wantMsg  string
		useStore bool
	}{
		{
			name:    "missing departure",
			modify:  func(c *domain.SearchCriteria) { c.Departure = "" },
			wantMsg: msgMissingParams,
		},
		{
			name:    "missing outbound date",
			modify:  func(c *domain.SearchCriteria) { c.OutboundDate = "" },
			wantMsg: msgMissingParams,
		},
		{
			name:    "lowercase departure iata",
			modify:  func(c *domain.SearchCriteria) { c.Departure = "jfk" },
			wantMsg: msgDepartureIATA,
		},
		{
			name:    "malformed arrival iata",
			modify:  func(c *domain.SearchCriteria) { c.Arrival = "LAXX" },
			wantMsg: msgArrivalIATA,
		},
		{
			name:    "identical airports",
			modify:  func(c *domain.SearchCriteria) { c.Arrival = "JFK" },
			wantMsg: msgSameAirports,
		},
		{
			name:     "unknown departure airport",
			modify:   func(c *domain.SearchCriteria) {},
			known:    []string{"LAX"},
			useStore: true,
			wantMsg:  msgDepartureUnknown,
		},
		{
			name:     "unknown arrival airport",
			modify:   func(c *domain.SearchCriteria) {},
			known:    []string{"JFK"},
			useStore: true,
			wantMsg:  msgArrivalUnknown,
		},
		{
			name:     "malformed outbound date",
			modify:   func(c *domain.SearchCriteria) { c.OutboundDate = "2025-13-01" },
			known:    []string{"JFK", "LAX"},
			useStore: true,
			wantMsg:  msgOutboundDate,
		},
		{
			name:     "malformed inbound date",
			modify:   func(c *domain.SearchCriteria) { c.InboundDate = "15-06-2025" },
			known:    []string{"JFK", "LAX"},
			useStore: true,
			wantMsg:  msgInboundDate,
		},
		{
			name:     "outbound in the past",
			modify:   func(c *domain.SearchCriteria) { c.OutboundDate = "2025-05-31" },
			known:    []string{"JFK", "LAX"},
			useStore: true,
			wantMsg:  msgOutboundPast,
		},
		{
			name: "inbound before outbound",
			modify: func(c *domain.SearchCriteria) {
				c.OutboundDate = "2025-06-20"
				c.InboundDate = "2025-06-15"
			},
			known:    []string{"JFK", "LAX"},
			useStore: true,
			wantMsg:  msgInboundBefore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			store := domain.NewMockAirportStore(ctrl)
			if tt.useStore {
				store.EXPECT().ExistingCodes(gomock.Any(), []string{"JFK", "LAX"}).Return(tt.known, nil)
			}
			provider := domain.NewMockFareProvider(ctrl)

			criteria := searchCriteria()
			tt.modify(&criteria)

			uc := newTestSearch(store, provider)
			result, err := uc.Search(context.Background(), criteria)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, domain.IsInvalidRequest(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestSearch_OutboundTodayIsAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storeKnowing(ctrl, "JFK", "LAX")
	provider := domain.NewMockFareProvider(ctrl)
	provider.EXPECT().
		SearchItineraries(gomock.Any(), "JFK", "LAX", "2025-06-01").
		Return(direction(100), nil)

	criteria := searchCriteria()
	criteria.OutboundDate = "2025-06-01"
	criteria.InboundDate = ""

	uc := newTestSearch(store, provider)
	result, err := uc.Search(context.Background(), criteria)
	require.NoError(t, err)
	require.Len(t, result.Options, 1)
}

func TestSearch_SingleDigitDatesCompareCorrectly(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storeKnowing(ctrl, "JFK", "LAX")
	provider := domain.NewMockFareProvider(ctrl)
	provider.EXPECT().
		SearchItineraries(gomock.Any(), "JFK", "LAX", "2025-6-15").
		Return(direction(100), nil)

	criteria := searchCriteria()
	criteria.OutboundDate = "2025-6-15"
	criteria.InboundDate = ""

	uc := newTestSearch(store, provider)
	_, err := uc.Search(context.Background(), criteria)
	require.NoError(t, err)
}

func TestSearch_OneWay(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storeKnowing(ctrl, "JFK", "LAX")
	provider := domain.NewMockFareProvider(ctrl)
	provider.EXPECT().
		SearchItineraries(gomock.Any(), "JFK", "LAX", "2025-06-15").
		Return(direction(300, 100, 200), nil)

	criteria := searchCriteria()
	criteria.InboundDate = ""

	uc := newTestSearch(store, provider)
	result, err := uc.Search(context.Background(), criteria)
	require.NoError(t, err)

	require.Len(t, result.Options, 3)
	assert.Nil(t, result.Summary.Inbound)

	// Sorted ascending by total: 110, 220, 330
	assert.Equal(t, 110.0, *result.Options[0].Outbound.Price.Total)
	assert.Equal(t, 220.0, *result.Options[1].Outbound.Price.Total)
	assert.Equal(t, 330.0, *result.Options[2].Outbound.Price.Total)
}

// TestSearch_RoundTrip runs the two-outbound, one-inbound scenario
// end to end through validation, pricing, and combination.
func TestSearch_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storeKnowing(ctrl, "JFK", "LAX")
	provider := domain.NewMockFareProvider(ctrl)
	provider.EXPECT().
		SearchItineraries(gomock.Any(), "JFK", "LAX", "2025-06-15").
		Return(direction(100, 200), nil)
	provider.EXPECT().
		SearchItineraries(gomock.Any(), "LAX", "JFK", "2025-06-20").
		Return(direction(150), nil)

	uc := newTestSearch(store, provider)
	result, err := uc.Search(context.Background(), searchCriteria())
	require.NoError(t, err)

	require.NotNil(t, result.Summary.Inbound)
	require.Len(t, result.Options, 2)

	first := result.Options[0].CombinedPrice
	require.NotNil(t, first)
	assert.Equal(t, 250.0, first.Fare)
	assert.Equal(t, 25.0, first.Fees)
	assert.Equal(t, 275.0, first.Total)

	second := result.Options[1].CombinedPrice
	assert.Equal(t, 350.0, second.Fare)
	assert.Equal(t, 35.0, second.Fees)
	assert.Equal(t, 385.0, second.Total)
}

func TestSearch_UpstreamErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storeKnowing(ctrl, "JFK", "LAX")

	upstreamErr := domain.NewUpstreamError(503, "service unavailable", nil)
	provider := domain.NewMockFareProvider(ctrl)
	provider.EXPECT().
		SearchItineraries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, upstreamErr).
		AnyTimes()

	uc := newTestSearch(store, provider)
	result, err := uc.Search(context.Background(), searchCriteria())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsUpstream(err))
}

func TestSearch_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domain.NewMockAirportStore(ctrl)
	store.EXPECT().
		ExistingCodes(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))
	provider := domain.NewMockFareProvider(ctrl)

	uc := newTestSearch(store, provider)
	result, err := uc.Search(context.Background(), searchCriteria())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsStore(err))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-06-15", "2025-06-15"},
		{"2025-6-15", "2025-06-15"},
		{"2025-6-5", "2025-06-05"},
		{"2025-12-5", "2025-12-05"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDate(tt.in))
		})
	}
}
