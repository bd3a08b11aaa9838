package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

type memPackageRepo struct {
	domain.PackageRepository
	byID map[string]*domain.Package
	next int
}

func newMemPackageRepo() *memPackageRepo {
	return &memPackageRepo{byID: map[string]*domain.Package{}}
}

func (m *memPackageRepo) SlugTaken(_ context.Context, slug string, excludeID string) (bool, error) {
	for id, p := range m.byID {
		if p.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPackageRepo) Create(_ context.Context, p *domain.Package) error {
	for _, existing := range m.byID {
		if existing.Slug == p.Slug {
			return &domain.ConflictError{Slug: p.Slug}
		}
	}
	m.next++
	p.ID = string(rune('a' + m.next - 1))
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memPackageRepo) GetByID(_ context.Context, id string) (*domain.Package, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPackageRepo) Update(_ context.Context, p *domain.Package) error {
	if _, ok := m.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func validPackage(title string) *domain.Package {
	return &domain.Package{
		Title:            title,
		Description:      "Long description.",
		ShortDescription: "Short.",
		Price:            9999,
		Duration:         "3 Days",
		Destination:      "Goa",
		Category:         "Beach Holidays",
		Country:          "India",
		TourType:         domain.TourTypeIndia,
	}
}

func TestPackageService_CreateDerivesSlug(t *testing.T) {
	repo := newMemPackageRepo()
	svc := NewPackageService(repo, nil, zap.NewNop())
	ctx := context.Background()

	p := validPackage("Goa Beach Escape!")
	require.NoError(t, svc.Create(ctx, p))
	assert.Equal(t, "goa-beach-escape", p.Slug)

	// Same title again: disambiguated, not rejected.
	q := validPackage("Goa Beach Escape!")
	require.NoError(t, svc.Create(ctx, q))
	assert.Equal(t, "goa-beach-escape-1", q.Slug)

	r := validPackage("Goa Beach Escape!")
	require.NoError(t, svc.Create(ctx, r))
	assert.Equal(t, "goa-beach-escape-2", r.Slug)
}

func TestPackageService_CreateExplicitSlugConflict(t *testing.T) {
	repo := newMemPackageRepo()
	svc := NewPackageService(repo, nil, zap.NewNop())
	ctx := context.Background()

	first := validPackage("Goa Beach Escape")
	require.NoError(t, svc.Create(ctx, first))

	second := validPackage("Another Goa Trip")
	second.Slug = "goa-beach-escape"
	err := svc.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err), "explicit slugs are never auto-suffixed")
}

func TestPackageService_CreateEmptyTitleSlug(t *testing.T) {
	repo := newMemPackageRepo()
	svc := NewPackageService(repo, nil, zap.NewNop())

	p := validPackage("!!!")
	err := svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestPackageService_UpdateKeepsSlugWhenTitleUnchanged(t *testing.T) {
	repo := newMemPackageRepo()
	svc := NewPackageService(repo, nil, zap.NewNop())
	ctx := context.Background()

	p := validPackage("Goa Beach Escape")
	require.NoError(t, svc.Create(ctx, p))

	upd := validPackage("Goa Beach Escape")
	upd.Slug = p.Slug // admin form echoes the stored slug back
	upd.Price = 12999

	got, err := svc.Update(ctx, p.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "goa-beach-escape", got.Slug)
	assert.Equal(t, float64(12999), got.Price)
}

func TestPackageService_UpdateRecomputesSlugOnTitleChange(t *testing.T) {
	repo := newMemPackageRepo()
	svc := NewPackageService(repo, nil, zap.NewNop())
	ctx := context.Background()

	p := validPackage("Goa Beach Escape")
	require.NoError(t, svc.Create(ctx, p))

	upd := validPackage("Kerala Backwaters")
	upd.Slug = p.Slug

	got, err := svc.Update(ctx, p.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "kerala-backwaters", got.Slug)
}

func TestPackageService_UpdateSelfSlugNotAConflict(t *testing.T) {
	repo := newMemPackageRepo()
	svc := NewPackageService(repo, nil, zap.NewNop())
	ctx := context.Background()

	p := validPackage("Goa Beach Escape")
	require.NoError(t, svc.Create(ctx, p))

	// Explicitly setting the slug it already owns must not conflict.
	upd := validPackage("Goa Beach Escape")
	upd.Slug = "goa-beach-escape"

	got, err := svc.Update(ctx, p.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "goa-beach-escape", got.Slug)
}

func TestPackageService_UpdateExplicitSlugTakenByOther(t *testing.T) {
	repo := newMemPackageRepo()
	svc := NewPackageService(repo, nil, zap.NewNop())
	ctx := context.Background()

	first := validPackage("Goa Beach Escape")
	require.NoError(t, svc.Create(ctx, first))
	second := validPackage("Kerala Backwaters")
	require.NoError(t, svc.Create(ctx, second))

	upd := validPackage("Kerala Backwaters")
	upd.Slug = "goa-beach-escape"

	_, err := svc.Update(ctx, second.ID, upd)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}
