// Package integration provides helpers and integration tests for the
// flight fare service. Integration tests wire real use cases, handlers,
// and the access gate over in-memory test doubles and verify complete
// request flows.
package integration

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/skyfare/flight-fare-service/internal/adapter/http"
	"github.com/skyfare/flight-fare-service/internal/adapter/http/middleware"
	"github.com/skyfare/flight-fare-service/internal/domain"
	"github.com/skyfare/flight-fare-service/internal/usecase"
)

// Credentials the test access gate accepts.
const (
	TestUsername = "testuser"
	TestPassword = "testpass"
)

// TestServer wraps an Echo instance wired with real use cases over the
// given store and provider, plus helper methods for requests.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer creates a test server. The fee floor is 5 and the
// combination cap is the default.
func NewTestServer(store domain.AirportStore, provider domain.FareProvider) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	airports := usecase.NewAirportUseCase(store, provider)
	search := usecase.NewSearchUseCase(store, provider, 5, 0, nil, nil)
	handler := httpAdapter.NewHandler(airports, search)

	httpAdapter.RegisterRoutes(e, handler,
		middleware.BasicAuth(TestUsername, TestPassword))

	return &TestServer{Echo: e}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
	NoAuth bool
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response. Requests carry
// valid gate credentials unless NoAuth is set.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if !req.NoAuth {
		cred := base64.StdEncoding.EncodeToString([]byte(TestUsername + ":" + TestPassword))
		httpReq.Header.Set(echo.HeaderAuthorization, "Basic "+cred)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get performs an authenticated GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Patch performs an authenticated PATCH request with a JSON body.
func (ts *TestServer) Patch(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPatch, Path: path, Body: body})
}

// ParseSearchResult parses the response body as a SearchResult.
func (r *Response) ParseSearchResult() (*domain.SearchResult, error) {
	var result domain.SearchResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Message extracts the message field of an API response body.
func (r *Response) Message() string {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(r.Body, &body)
	return body.Message
}

// FutureDate returns a date string the given number of days in the
// future, in YYYY-MM-DD format. Search tests use it to stay clear of
// the past-date validation.
func FutureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

// SampleAirports returns a small airport reference table.
func SampleAirports() []domain.Airport {
	return []domain.Airport{
		{IATA: "GRU", City: "Sao Paulo", Lat: -23.4356, Lon: -46.4731, State: "SP", Active: true},
		{IATA: "GIG", City: "Rio de Janeiro", Lat: -22.81, Lon: -43.2506, State: "RJ", Active: true},
		{IATA: "BSB", City: "Brasilia", Lat: -15.8711, Lon: -47.9186, State: "DF", Active: true},
	}
}

// SampleDirection returns a direction payload between the given
// coordinates with one option per fare, departing an hour apart.
func SampleDirection(from, to domain.Coordinates, date string, fares ...float64) *domain.DirectionResult {
	options := make([]domain.ItineraryOption, len(fares))
	for i, fare := range fares {
		dep := time.Date(2000, 1, 1, 8+i, 0, 0, 0, time.UTC)
		options[i] = domain.ItineraryOption{
			DepartureTime: date + dep.Format("T15:04:05"),
			ArrivalTime:   date + dep.Add(time.Hour).Format("T15:04:05"),
			Price:         domain.PriceBreakdown{Fare: fare},
		}
	}
	return &domain.DirectionResult{
		Summary: domain.Summary{From: from, To: to},
		Options: options,
	}
}
