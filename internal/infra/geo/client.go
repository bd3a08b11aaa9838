package geo

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

// Client implements domain.GeoProvider against countrystatecity.in.
type Client struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// NewClient creates a new geo API client.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	return &Client{
		client: newRestyClient(cfg),
		cb:     newCircuitBreaker("geo", cfg.CB),
		logger: logger,
	}
}

// Countries returns every country known to the upstream.
func (c *Client) Countries(ctx context.Context) ([]domain.Country, error) {
	var out []domain.Country
	if err := c.get(ctx, "/countries", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Country returns one country by its ISO2 code.
func (c *Client) Country(ctx context.Context, iso2 string) (*domain.Country, error) {
	var out domain.Country
	if err := c.get(ctx, fmt.Sprintf("/countries/%s", iso2), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// States returns the states/provinces of a country.
func (c *Client) States(ctx context.Context, countryISO2 string) ([]domain.GeoState, error) {
	var out []domain.GeoState
	if err := c.get(ctx, fmt.Sprintf("/countries/%s/states", countryISO2), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// State returns one state by its country and state ISO2 codes.
func (c *Client) State(ctx context.Context, countryISO2, stateISO2 string) (*domain.GeoState, error) {
	var out domain.GeoState
	if err := c.get(ctx, fmt.Sprintf("/countries/%s/states/%s", countryISO2, stateISO2), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CitiesByState returns the cities of one state.
func (c *Client) CitiesByState(ctx context.Context, countryISO2, stateISO2 string) ([]domain.City, error) {
	var out []domain.City
	path := fmt.Sprintf("/countries/%s/states/%s/cities", countryISO2, stateISO2)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CitiesByCountry returns every city of a country.
func (c *Client) CitiesByCountry(ctx context.Context, countryISO2 string) ([]domain.City, error) {
	var out []domain.City
	if err := c.get(ctx, fmt.Sprintf("/countries/%s/cities", countryISO2), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// get performs one upstream call through the circuit breaker, decoding the
// JSON body into result.
func (c *Client) get(ctx context.Context, path string, result any) error {
	_, err := c.cb.Execute(func() (*resty.Response, error) {
		r, err := c.client.R().
			SetContext(ctx).
			SetResult(result).
			Get(path)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("geo api returned status %d", r.StatusCode())
		}
		return r, nil
	})
	if err != nil {
		c.logger.Warn("geo api request failed",
			zap.String("path", path),
			zap.String("state", c.cb.State().String()),
			zap.Error(err),
		)
		return fmt.Errorf("fetching %s: %w", path, err)
	}

	return nil
}
