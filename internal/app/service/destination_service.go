package service

import (
	"context"

	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

// DestinationService handles destination page use cases.
type DestinationService struct {
	repo   domain.DestinationRepository
	cache  domain.Cache
	logger *zap.Logger
}

// NewDestinationService creates a new DestinationService. cache may be nil.
func NewDestinationService(repo domain.DestinationRepository, cache domain.Cache, logger *zap.Logger) *DestinationService {
	return &DestinationService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns destinations matching the filter plus the pagination
// envelope.
func (s *DestinationService) List(ctx context.Context, filter domain.DestinationFilter) ([]*domain.Destination, domain.Pagination, error) {
	filter.Normalize()

	destinations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("destination list failed", zap.Error(err))
		return nil, domain.Pagination{}, err
	}
	return destinations, domain.NewPagination(total, filter.Page, filter.Limit), nil
}

// Count returns the number of destinations in the catalog.
func (s *DestinationService) Count(ctx context.Context) (int64, error) {
	filter := domain.DestinationFilter{ListParams: domain.ListParams{Page: 1, Limit: 1}}
	_, total, err := s.repo.List(ctx, filter)
	return total, err
}

// Search returns destinations matching a free-text query and the filter.
func (s *DestinationService) Search(ctx context.Context, query string, filter domain.DestinationFilter) ([]*domain.Destination, error) {
	results, err := s.repo.Search(ctx, query, filter)
	if err != nil {
		s.logger.Error("destination search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, err
	}
	return results, nil
}

// GetByID retrieves one destination by id.
func (s *DestinationService) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves one destination by slug and counts the visit. The
// counter drives trending ordering; losing an increment is harmless, so
// its failure is only logged.
func (s *DestinationService) GetBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	dest, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementVisits(ctx, dest.ID); err != nil {
		s.logger.Warn("visit count increment failed",
			zap.String("id", dest.ID),
			zap.Error(err),
		)
	} else {
		dest.VisitCount++
	}

	return dest, nil
}

// Create validates and persists a new destination. Slug allocation follows
// the same rules as packages, derived from the name.
func (s *DestinationService) Create(ctx context.Context, d *domain.Destination) error {
	if err := d.Validate(); err != nil {
		return err
	}

	slug, err := domain.ResolveSlugOnCreate(ctx, s.repo, d.Name, d.Slug)
	if err != nil {
		return err
	}
	d.Slug = slug

	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("destination create failed",
			zap.String("slug", d.Slug),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("destination created",
		zap.String("id", d.ID),
		zap.String("slug", d.Slug),
	)
	s.invalidateSuggestions(ctx)
	return nil
}

// Update persists changes to an existing destination.
func (s *DestinationService) Update(ctx context.Context, id string, updated *domain.Destination) (*domain.Destination, error) {
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

	slug, err := domain.ResolveSlugOnUpdate(ctx, s.repo, id, current.Slug, current.Name, updated.Name, explicit)
	if err != nil {
		return nil, err
	}

	updated.ID = id
	updated.Slug = slug
	updated.VisitCount = current.VisitCount
	updated.CreatedAt = current.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("destination update failed",
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}

	s.invalidateSuggestions(ctx)
	return updated, nil
}

// Delete removes a destination.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("destination deleted", zap.String("id", id))
	s.invalidateSuggestions(ctx)
	return nil
}

// Countries returns the distinct countries of active destinations.
func (s *DestinationService) Countries(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCountries(ctx)
}

// States returns the distinct states of active destinations.
func (s *DestinationService) States(ctx context.Context) ([]string, error) {
	return s.repo.DistinctStates(ctx)
}

// TourTypes returns the distinct tour types of active destinations.
func (s *DestinationService) TourTypes(ctx context.Context) ([]string, error) {
	return s.repo.DistinctTourTypes(ctx)
}

func (s *DestinationService) invalidateSuggestions(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("suggestion cache invalidation failed", zap.Error(err))
	}
}
