package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

// Country/state/city data changes on the order of years, so cached geo
// responses get a long TTL.
const geoCacheTTL = 24 * time.Hour

// LocationService serves the country/state/city pickers, fronting the geo
// API with the shared cache so repeated form loads stay off the upstream.
type LocationService struct {
	geo    domain.GeoProvider
	cache  domain.Cache
	logger *zap.Logger
}

// NewLocationService creates a new LocationService. cache may be nil.
func NewLocationService(geo domain.GeoProvider, cache domain.Cache, logger *zap.Logger) *LocationService {
	return &LocationService{
		geo:    geo,
		cache:  cache,
		logger: logger,
	}
}

// Countries returns every country.
func (s *LocationService) Countries(ctx context.Context) ([]domain.Country, error) {
	var out []domain.Country
	err := s.cached(ctx, "geo:countries", &out, func() (any, error) {
		return s.geo.Countries(ctx)
	})
	return out, err
}

// Country returns one country by ISO2 code.
func (s *LocationService) Country(ctx context.Context, iso2 string) (*domain.Country, error) {
	if iso2 == "" {
		return nil, domain.NewValidationError("country", "is required")
	}

	var out *domain.Country
	err := s.cached(ctx, "geo:country:"+iso2, &out, func() (any, error) {
		return s.geo.Country(ctx, iso2)
	})
	return out, err
}

// States returns the states of a country.
func (s *LocationService) States(ctx context.Context, countryISO2 string) ([]domain.GeoState, error) {
	if countryISO2 == "" {
		return nil, domain.NewValidationError("country", "is required")
	}

	var out []domain.GeoState
	err := s.cached(ctx, "geo:states:"+countryISO2, &out, func() (any, error) {
		return s.geo.States(ctx, countryISO2)
	})
	return out, err
}

// State returns one state of a country.
func (s *LocationService) State(ctx context.Context, countryISO2, stateISO2 string) (*domain.GeoState, error) {
	if countryISO2 == "" || stateISO2 == "" {
		return nil, domain.NewValidationError("state", "country and state codes are required")
	}

	var out *domain.GeoState
	key := fmt.Sprintf("geo:state:%s:%s", countryISO2, stateISO2)
	err := s.cached(ctx, key, &out, func() (any, error) {
		return s.geo.State(ctx, countryISO2, stateISO2)
	})
	return out, err
}

// CitiesByState returns the cities of one state.
func (s *LocationService) CitiesByState(ctx context.Context, countryISO2, stateISO2 string) ([]domain.City, error) {
	if countryISO2 == "" || stateISO2 == "" {
		return nil, domain.NewValidationError("state", "country and state codes are required")
	}

	var out []domain.City
	key := fmt.Sprintf("geo:cities:%s:%s", countryISO2, stateISO2)
	err := s.cached(ctx, key, &out, func() (any, error) {
		return s.geo.CitiesByState(ctx, countryISO2, stateISO2)
	})
	return out, err
}

// CitiesByCountry returns every city of a country.
func (s *LocationService) CitiesByCountry(ctx context.Context, countryISO2 string) ([]domain.City, error) {
	if countryISO2 == "" {
		return nil, domain.NewValidationError("country", "is required")
	}

	var out []domain.City
	err := s.cached(ctx, "geo:cities:"+countryISO2, &out, func() (any, error) {
		return s.geo.CitiesByCountry(ctx, countryISO2)
	})
	return out, err
}

// cached fills dest from the cache, falling back to fetch and storing the
// result. Cache failures never fail the lookup.
func (s *LocationService) cached(ctx context.Context, key string, dest any, fetch func() (any, error)) error {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil && data != nil {
			if err := json.Unmarshal(data, dest); err == nil {
				return nil
			}
			s.logger.Warn("discarding corrupt geo cache entry", zap.String("key", key))
		}
	}

	fetched, err := fetch()
	if err != nil {
		return err
	}

	// Round-trip through JSON to fill dest without per-type plumbing.
	data, err := json.Marshal(fetched)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, data, geoCacheTTL)
	}
	return nil
}
