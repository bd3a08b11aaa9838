package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

// The fakes embed the repository interfaces and override only the
// suggestion path; anything else panics, which is the point.

type fakePackageRepo struct {
	domain.PackageRepository
	candidates []*domain.Package
	err        error
	calls      int
	lastLimit  int
}

func (f *fakePackageRepo) SuggestCandidates(_ context.Context, _ string, limit int) ([]*domain.Package, error) {
	f.calls++
	f.lastLimit = limit
	return f.candidates, f.err
}

type fakeDestinationRepo struct {
	domain.DestinationRepository
	candidates []*domain.Destination
	err        error
}

func (f *fakeDestinationRepo) SuggestCandidates(_ context.Context, _ string, _ int) ([]*domain.Destination, error) {
	return f.candidates, f.err
}

type fakeHolidayTypeRepo struct {
	domain.HolidayTypeRepository
	candidates []*domain.HolidayType
	err        error
}

func (f *fakeHolidayTypeRepo) SuggestCandidates(_ context.Context, _ string, _ int) ([]*domain.HolidayType, error) {
	return f.candidates, f.err
}

type fakeCache struct {
	entries map[string][]byte
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) Clear(_ context.Context) error {
	c.entries = map[string][]byte{}
	return nil
}

func pkg(title, destination, slug string) *domain.Package {
	return &domain.Package{
		ID:          "id-" + slug,
		Title:       title,
		Slug:        slug,
		Destination: destination,
		Description: "A tour.",
		Price:       19999,
		Duration:    "5 Days",
		Category:    "Beach Holidays",
		Images:      []string{"/uploads/" + slug + ".jpg"},
	}
}

func newSuggestService(pkgs *fakePackageRepo, dests *fakeDestinationRepo, types *fakeHolidayTypeRepo, cache domain.Cache) *SuggestService {
	if pkgs == nil {
		pkgs = &fakePackageRepo{}
	}
	if dests == nil {
		dests = &fakeDestinationRepo{}
	}
	if types == nil {
		types = &fakeHolidayTypeRepo{}
	}
	return NewSuggestService(pkgs, dests, types, cache, time.Minute, zap.NewNop())
}

func TestSuggestPackages_RanksByScore(t *testing.T) {
	repo := &fakePackageRepo{candidates: []*domain.Package{
		pkg("Goa Beach Escape", "Goa", "goa-beach-escape"),
		pkg("Goa", "Goa", "goa"),
		pkg("Rajasthan Royals", "Jaipur", "rajasthan-royals"),
	}}
	svc := newSuggestService(repo, nil, nil, nil)

	got := svc.SuggestPackages(context.Background(), "goa")

	require.Len(t, got, 3)
	// Exact title match outranks the longer title that merely contains it.
	assert.Equal(t, "goa", got[0].Slug)
	assert.Equal(t, "goa-beach-escape", got[1].Slug)
	assert.Equal(t, domain.SuggestFetchLimit, repo.lastLimit)
}

func TestSuggestPackages_CapsAtFive(t *testing.T) {
	repo := &fakePackageRepo{}
	for i := 0; i < 8; i++ {
		repo.candidates = append(repo.candidates, pkg("Goa Tour", "Goa", string(rune('a'+i))))
	}
	svc := newSuggestService(repo, nil, nil, nil)

	got := svc.SuggestPackages(context.Background(), "goa")
	assert.Len(t, got, domain.SuggestResultLimit)
}

func TestSuggestPackages_ShortQuerySkipsStore(t *testing.T) {
	repo := &fakePackageRepo{candidates: []*domain.Package{pkg("Goa", "Goa", "goa")}}
	svc := newSuggestService(repo, nil, nil, nil)

	got := svc.SuggestPackages(context.Background(), " g ")

	assert.Empty(t, got)
	assert.NotNil(t, got, "degraded responses still carry an empty list")
	assert.Zero(t, repo.calls, "queries below the minimum length never hit the store")
}

func TestSuggestPackages_StoreErrorDegradesToEmpty(t *testing.T) {
	repo := &fakePackageRepo{err: errors.New("connection refused")}
	svc := newSuggestService(repo, nil, nil, nil)

	got := svc.SuggestPackages(context.Background(), "goa")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggestPackages_CacheHitSkipsStore(t *testing.T) {
	repo := &fakePackageRepo{candidates: []*domain.Package{pkg("Goa", "Goa", "goa")}}
	svc := newSuggestService(repo, nil, nil, newFakeCache())

	first := svc.SuggestPackages(context.Background(), "goa")
	second := svc.SuggestPackages(context.Background(), "Goa")

	assert.Equal(t, first, second, "queries differing only in case share a cache entry")
	assert.Equal(t, 1, repo.calls)
}

func TestSuggestPackages_CacheErrorFallsThrough(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	repo := &fakePackageRepo{candidates: []*domain.Package{pkg("Goa", "Goa", "goa")}}
	svc := newSuggestService(repo, nil, nil, cache)

	got := svc.SuggestPackages(context.Background(), "goa")

	require.Len(t, got, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestSuggestCombined_DestinationsFirst(t *testing.T) {
	dests := &fakeDestinationRepo{candidates: []*domain.Destination{
		{ID: "d1", Name: "Goa", Location: "Goa", Country: "India", Slug: "goa"},
	}}
	repo := &fakePackageRepo{candidates: []*domain.Package{
		pkg("Goa Beach Escape", "Goa", "goa-beach-escape"),
	}}
	svc := newSuggestService(repo, dests, nil, nil)

	got := svc.SuggestCombined(context.Background(), "goa")

	require.Len(t, got.Destinations, 1)
	require.Len(t, got.Packages, 1)
	assert.Equal(t, "goa", got.Destinations[0].Slug)
}

func TestSuggestCombined_SharedCap(t *testing.T) {
	dests := &fakeDestinationRepo{}
	for i := 0; i < 10; i++ {
		dests.candidates = append(dests.candidates, &domain.Destination{
			ID: string(rune('a' + i)), Name: "Goa Spot", Location: "Goa", Country: "India",
		})
	}
	repo := &fakePackageRepo{}
	for i := 0; i < 10; i++ {
		repo.candidates = append(repo.candidates, pkg("Goa Tour", "Goa", string(rune('a'+i))))
	}
	svc := newSuggestService(repo, dests, nil, nil)

	got := svc.SuggestCombined(context.Background(), "goa")

	assert.Equal(t, domain.SuggestCombinedLimit, len(got.Destinations)+len(got.Packages))
	assert.Len(t, got.Destinations, 10, "destinations are never evicted by packages")
}

func TestSuggestCombined_DestinationErrorStillServesPackages(t *testing.T) {
	dests := &fakeDestinationRepo{err: errors.New("boom")}
	repo := &fakePackageRepo{candidates: []*domain.Package{
		pkg("Goa Beach Escape", "Goa", "goa-beach-escape"),
	}}
	svc := newSuggestService(repo, dests, nil, nil)

	got := svc.SuggestCombined(context.Background(), "goa")

	assert.Empty(t, got.Destinations)
	require.Len(t, got.Packages, 1)
}

func TestSuggestCombined_DegradedResponseNotCached(t *testing.T) {
	cache := newFakeCache()
	dests := &fakeDestinationRepo{
		candidates: []*domain.Destination{
			{ID: "d1", Name: "Goa", Location: "Goa", Country: "India", Slug: "goa"},
		},
		err: errors.New("boom"),
	}
	repo := &fakePackageRepo{candidates: []*domain.Package{
		pkg("Goa Beach Escape", "Goa", "goa-beach-escape"),
	}}
	svc := newSuggestService(repo, dests, nil, cache)

	degraded := svc.SuggestCombined(context.Background(), "goa")
	assert.Empty(t, degraded.Destinations)
	assert.Empty(t, cache.entries, "half-empty response must not occupy the cache")

	// Source recovers; the next request must reach the store again
	// instead of replaying the degraded response.
	dests.err = nil
	recovered := svc.SuggestCombined(context.Background(), "goa")
	require.Len(t, recovered.Destinations, 1)
	assert.NotEmpty(t, cache.entries)
}

func TestSuggestHolidayTypes(t *testing.T) {
	types := &fakeHolidayTypeRepo{candidates: []*domain.HolidayType{
		{ID: "h1", Title: "Honeymoon", ShortDescription: "Couples", Slug: "honeymoon"},
		{ID: "h2", Title: "Family Honeymoon Combo", ShortDescription: "Everyone", Slug: "family-honeymoon-combo"},
	}}
	svc := newSuggestService(nil, nil, types, nil)

	got := svc.SuggestHolidayTypes(context.Background(), "honeymoon")

	require.Len(t, got, 2)
	assert.Equal(t, "honeymoon", got[0].Slug, "exact title bonus wins")
}
