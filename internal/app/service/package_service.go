package service

import (
	"context"

	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

// PackageService handles tour package use cases.
type PackageService struct {
	repo   domain.PackageRepository
	cache  domain.Cache
	logger *zap.Logger
}

// NewPackageService creates a new PackageService. cache may be nil.
func NewPackageService(repo domain.PackageRepository, cache domain.Cache, logger *zap.Logger) *PackageService {
	return &PackageService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns packages matching the filter plus the pagination envelope.
func (s *PackageService) List(ctx context.Context, filter domain.PackageFilter) ([]*domain.Package, domain.Pagination, error) {
	filter.Normalize()

	packages, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("package list failed", zap.Error(err))
		return nil, domain.Pagination{}, err
	}
	return packages, domain.NewPagination(total, filter.Page, filter.Limit), nil
}

// Count returns the number of packages in the catalog.
func (s *PackageService) Count(ctx context.Context) (int64, error) {
	filter := domain.PackageFilter{ListParams: domain.ListParams{Page: 1, Limit: 1}}
	_, total, err := s.repo.List(ctx, filter)
	return total, err
}

// ListByCategory returns up to limit packages of one category.
func (s *PackageService) ListByCategory(ctx context.Context, category string, limit int) ([]*domain.Package, error) {
	if !domain.ValidCategory(category) {
		return nil, domain.NewValidationError("category", "unknown category")
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.repo.ListByCategory(ctx, category, limit)
}

// Search returns packages matching a free-text query and optional
// category/price narrowing.
func (s *PackageService) Search(ctx context.Context, params domain.PackageSearch) ([]*domain.Package, error) {
	results, err := s.repo.Search(ctx, params)
	if err != nil {
		s.logger.Error("package search failed",
			zap.String("query", params.Query),
			zap.Error(err),
		)
		return nil, err
	}
	return results, nil
}

// GetByID retrieves one package by id.
func (s *PackageService) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves one package by slug.
func (s *PackageService) GetBySlug(ctx context.Context, slug string) (*domain.Package, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create validates and persists a new package. The slug comes from the
// explicit value when the payload carries one (conflict if taken) or is
// derived from the title and disambiguated with numeric suffixes.
func (s *PackageService) Create(ctx context.Context, p *domain.Package) error {
	if err := p.Validate(); err != nil {
		return err
	}

	slug, err := domain.ResolveSlugOnCreate(ctx, s.repo, p.Title, p.Slug)
	if err != nil {
		return err
	}
	p.Slug = slug

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("package create failed",
			zap.String("slug", p.Slug),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("package created",
		zap.String("id", p.ID),
		zap.String("slug", p.Slug),
	)
	s.invalidateSuggestions(ctx)
	return nil
}

// Update persists changes to an existing package. The slug is recomputed
// only when the title changed and no explicit slug was supplied; explicit
// slugs are checked against every other package.
func (s *PackageService) Update(ctx context.Context, id string, updated *domain.Package) (*domain.Package, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	explicit := updated.Slug
	if explicit == current.Slug {
		// An unchanged slug echoed back by the admin form is not an
		// explicit override.
		explicit = ""
	}

	slug, err := domain.ResolveSlugOnUpdate(ctx, s.repo, id, current.Slug, current.Title, updated.Title, explicit)
	if err != nil {
		return nil, err
	}

	updated.ID = id
	updated.Slug = slug
	updated.CreatedAt = current.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("package update failed",
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}

	s.invalidateSuggestions(ctx)
	return updated, nil
}

// Delete removes a package.
func (s *PackageService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("package deleted", zap.String("id", id))
	s.invalidateSuggestions(ctx)
	return nil
}

// Countries returns the distinct countries of active packages.
func (s *PackageService) Countries(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCountries(ctx)
}

// States returns the distinct states of active packages.
func (s *PackageService) States(ctx context.Context) ([]string, error) {
	return s.repo.DistinctStates(ctx)
}

// invalidateSuggestions drops cached suggestion responses after a catalog
// write. Failures only cost freshness, so they are not propagated.
func (s *PackageService) invalidateSuggestions(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("suggestion cache invalidation failed", zap.Error(err))
	}
}
