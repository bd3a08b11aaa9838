// Package service provides application use cases.
package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/infra/redis"
)

// CombinedSuggestions is the payload of the combined type-ahead endpoint:
// location-aware destination matches first, then package matches, sharing
// one overall cap.
type CombinedSuggestions struct {
	Destinations []domain.DestinationSuggestion `json:"destinations"`
	Packages     []domain.PackageSuggestion     `json:"packages"`
}

// SuggestService ranks type-ahead suggestions. Failures degrade to empty
// suggestion lists, never errors: a broken dropdown must not take the
// search box down with it.
type SuggestService struct {
	packages     domain.PackageRepository
	destinations domain.DestinationRepository
	holidayTypes domain.HolidayTypeRepository
	cache        domain.Cache
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewSuggestService creates a new SuggestService. cache may be nil to
// disable response caching.
func NewSuggestService(
	packages domain.PackageRepository,
	destinations domain.DestinationRepository,
	holidayTypes domain.HolidayTypeRepository,
	cache domain.Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *SuggestService {
	return &SuggestService{
		packages:     packages,
		destinations: destinations,
		holidayTypes: holidayTypes,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// SuggestPackages returns up to five ranked package suggestions for query.
// Queries shorter than two characters short-circuit to an empty list
// without touching the store.
func (s *SuggestService) SuggestPackages(ctx context.Context, rawQuery string) []domain.PackageSuggestion {
	query, ok := domain.NormalizeQuery(rawQuery)
	if !ok {
		return []domain.PackageSuggestion{}
	}

	key := redis.SuggestKey("packages", query)
	var cached []domain.PackageSuggestion
	if s.cacheLookup(ctx, key, &cached) {
		return cached
	}

	candidates, err := s.packages.SuggestCandidates(ctx, query, domain.SuggestFetchLimit)
	if err != nil {
		s.logger.Error("package suggestion fetch failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return []domain.PackageSuggestion{}
	}

	ranked := domain.Rank(query, candidates, domain.SuggestResultLimit)
	out := make([]domain.PackageSuggestion, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Item.ToSuggestion())
	}

	s.cacheStore(ctx, key, out)
	return out
}

// SuggestHolidayTypes returns up to five ranked holiday type suggestions.
func (s *SuggestService) SuggestHolidayTypes(ctx context.Context, rawQuery string) []domain.HolidayTypeSuggestion {
	query, ok := domain.NormalizeQuery(rawQuery)
	if !ok {
		return []domain.HolidayTypeSuggestion{}
	}

	key := redis.SuggestKey("holiday-types", query)
	var cached []domain.HolidayTypeSuggestion
	if s.cacheLookup(ctx, key, &cached) {
		return cached
	}

	candidates, err := s.holidayTypes.SuggestCandidates(ctx, query, domain.SuggestFetchLimit)
	if err != nil {
		s.logger.Error("holiday type suggestion fetch failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return []domain.HolidayTypeSuggestion{}
	}

	ranked := domain.Rank(query, candidates, domain.SuggestResultLimit)
	out := make([]domain.HolidayTypeSuggestion, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Item.ToSuggestion())
	}

	s.cacheStore(ctx, key, out)
	return out
}

// SuggestCombined returns destination and package suggestions together.
// Destinations rank with the location-aware weight profile and take the
// front of the list; packages fill whatever remains of the combined cap.
// Either source failing degrades to its half being empty.
func (s *SuggestService) SuggestCombined(ctx context.Context, rawQuery string) CombinedSuggestions {
	empty := CombinedSuggestions{
		Destinations: []domain.DestinationSuggestion{},
		Packages:     []domain.PackageSuggestion{},
	}

	query, ok := domain.NormalizeQuery(rawQuery)
	if !ok {
		return empty
	}

	key := redis.SuggestKey("combined", query)
	var cached CombinedSuggestions
	if s.cacheLookup(ctx, key, &cached) {
		return cached
	}

	out := empty
	degraded := false

	dests, err := s.destinations.SuggestCandidates(ctx, query, domain.SuggestFetchLimit)
	if err != nil {
		degraded = true
		s.logger.Error("destination suggestion fetch failed",
			zap.String("query", query),
			zap.Error(err),
		)
	} else {
		for _, r := range domain.Rank(query, dests, domain.SuggestCombinedLimit) {
			out.Destinations = append(out.Destinations, r.Item.ToSuggestion())
		}
	}

	remaining := domain.SuggestCombinedLimit - len(out.Destinations)
	if remaining > 0 {
		pkgs, err := s.packages.SuggestCandidates(ctx, query, domain.SuggestFetchLimit)
		if err != nil {
			degraded = true
			s.logger.Error("package suggestion fetch failed",
				zap.String("query", query),
				zap.Error(err),
			)
		} else {
			for _, r := range domain.Rank(query, pkgs, remaining) {
				out.Packages = append(out.Packages, r.Item.ToSuggestion())
			}
		}
	}

	// A degraded response must not occupy the cache for the full TTL;
	// the next request retries the failed source instead.
	if !degraded {
		s.cacheStore(ctx, key, out)
	}
	return out
}

// cacheLookup tries the cache, reporting whether dest was populated.
// Cache trouble is logged and treated as a miss.
func (s *SuggestService) cacheLookup(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("discarding corrupt cache entry",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (s *SuggestService) cacheStore(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, key, data, s.cacheTTL)
}
