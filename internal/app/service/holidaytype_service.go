package service

import (
	"context"

	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

// HolidayTypeService handles holiday type use cases.
type HolidayTypeService struct {
	repo   domain.HolidayTypeRepository
	cache  domain.Cache
	logger *zap.Logger
}

// NewHolidayTypeService creates a new HolidayTypeService. cache may be nil.
func NewHolidayTypeService(repo domain.HolidayTypeRepository, cache domain.Cache, logger *zap.Logger) *HolidayTypeService {
	return &HolidayTypeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns holiday types in display order. activeOnly hides drafts
// from the storefront; the admin surface lists everything.
func (s *HolidayTypeService) List(ctx context.Context, activeOnly bool) ([]*domain.HolidayType, error) {
	return s.repo.List(ctx, activeOnly)
}

// GetByID retrieves one holiday type by id.
func (s *HolidayTypeService) GetByID(ctx context.Context, id string) (*domain.HolidayType, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves one holiday type by slug.
func (s *HolidayTypeService) GetBySlug(ctx context.Context, slug string) (*domain.HolidayType, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create validates and persists a new holiday type.
func (s *HolidayTypeService) Create(ctx context.Context, h *domain.HolidayType) error {
	if err := h.Validate(); err != nil {
		return err
	}

	slug, err := domain.ResolveSlugOnCreate(ctx, s.repo, h.Title, h.Slug)
	if err != nil {
		return err
	}
	h.Slug = slug

	if err := s.repo.Create(ctx, h); err != nil {
		s.logger.Error("holiday type create failed",
			zap.String("slug", h.Slug),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("holiday type created",
		zap.String("id", h.ID),
		zap.String("slug", h.Slug),
	)
	s.invalidateSuggestions(ctx)
	return nil
}

// Update persists changes to an existing holiday type.
func (s *HolidayTypeService) Update(ctx context.Context, id string, updated *domain.HolidayType) (*domain.HolidayType, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	explicit := updated.Slug
	if explicit == current.Slug {
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
		s.logger.Error("holiday type update failed",
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}

	s.invalidateSuggestions(ctx)
	return updated, nil
}

// Delete removes a holiday type.
func (s *HolidayTypeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("holiday type deleted", zap.String("id", id))
	s.invalidateSuggestions(ctx)
	return nil
}

func (s *HolidayTypeService) invalidateSuggestions(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("suggestion cache invalidation failed", zap.Error(err))
	}
}
