// Package flightsapi implements the FareProvider port against the
// third-party flights API. All calls carry HTTP basic auth and retry
// transient failures with exponential backoff; a credential rejection is
// permanent and never retried.
package flightsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skyfare/flight-fare-service/internal/domain"
	"github.com/skyfare/flight-fare-service/internal/infrastructure/retry"
)

// ProviderName identifies this provider in logs.
const ProviderName = "flights_api"

// msgUpstreamUnauthorized is the caller-facing message for rejected
// upstream credentials. It never includes the credentials themselves.
const msgUpstreamUnauthorized = "Username or password are invalid for third party API"

// DefaultTimeout bounds a single upstream HTTP call when none is configured.
const DefaultTimeout = 10 * time.Second

// Config holds the client settings.
type Config struct {
	BaseURL  string
	APIKey   string
	Username string
	Password string
	Timeout  time.Duration
}

// Client is an HTTP client for the flights API. It implements
// domain.FareProvider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	username   string
	password   string
	retryCfg   retry.Config
}

// interface guard
var _ domain.FareProvider = (*Client)(nil)

// New creates a Client from the given configuration.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		username:   cfg.Username,
		password:   cfg.Password,
		retryCfg:   retry.UpstreamConfig,
	}
}

// errorBody is the shape of upstream error responses.
type errorBody struct {
	Error string `json:"error"`
}

// FetchAirports implements domain.FareProvider.FetchAirports.
// The upstream payload is an object keyed by IATA code; the values are
// returned sorted by code for deterministic processing.
func (c *Client) FetchAirports(ctx context.Context) ([]domain.Airport, error) {
	url := fmt.Sprintf("%s/airports/%s", c.baseURL, c.apiKey)

	payload, err := retry.DoWithResult(ctx, func() (map[string]domain.Airport, error) {
		var out map[string]domain.Airport
		if err := c.get(ctx, url, &out); err != nil {
			return nil, err
		}
		return out, nil
	}, c.retryCfg)
	if err != nil {
		return nil, err
	}

	airports := make([]domain.Airport, 0, len(payload))
	for _, airport := range payload {
		airports = append(airports, airport)
	}
	sort.Slice(airports, func(i, j int) bool {
		return airports[i].IATA < airports[j].IATA
	})

	log.Debug().
		Str("provider", ProviderName).
		Int("count", len(airports)).
		Msg("fetched upstream airport list")
	return airports, nil
}

// SearchItineraries implements domain.FareProvider.SearchItineraries.
func (c *Client) SearchItineraries(ctx context.Context, from, to, date string) (*domain.DirectionResult, error) {
	url := fmt.Sprintf("%s/search/%s/%s/%s/%s", c.baseURL, c.apiKey, from, to, date)

	result, err := retry.DoWithResult(ctx, func() (*domain.DirectionResult, error) {
		var out domain.DirectionResult
		if err := c.get(ctx, url, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}, c.retryCfg)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("provider", ProviderName).
		Str("from", from).
		Str("to", to).
		Str("date", date).
		Int("options", len(result.Options)).
		Msg("fetched upstream itineraries")
	return result, nil
}

// get performs one authenticated GET and decodes a 2xx JSON body into out.
func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return retry.NewPermanent(fmt.Errorf("build request: %w", err))
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewUpstreamError(0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewUpstreamError(resp.StatusCode, "", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return retry.NewPermanent(domain.NewUpstreamError(
			resp.StatusCode, msgUpstreamUnauthorized, domain.ErrUpstreamUnauthorized))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return c.statusError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return retry.NewPermanent(domain.NewUpstreamError(
			resp.StatusCode, "", fmt.Errorf("decode response: %w", err)))
	}
	return nil
}

// statusError maps a non-2xx response to an UpstreamError carrying the
// upstream body's error message when one is present. Client errors other
// than 401 are permanent; server errors stay retryable.
func (c *Client) statusError(statusCode int, body []byte) error {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	err := domain.NewUpstreamError(statusCode, parsed.Error, nil)
	if statusCode >= 400 && statusCode < 500 {
		return retry.NewPermanent(err)
	}
	return err
}
