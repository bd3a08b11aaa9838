package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

// DepartureService handles fixed departure use cases, including the
// scheduled status roll-over.
type DepartureService struct {
	repo   domain.DepartureRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewDepartureService creates a new DepartureService.
func NewDepartureService(repo domain.DepartureRepository, logger *zap.Logger) *DepartureService {
	return &DepartureService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List returns departures matching the filter plus the pagination
// envelope.
func (s *DepartureService) List(ctx context.Context, filter domain.DepartureFilter) ([]*domain.FixedDeparture, domain.Pagination, error) {
	filter.Normalize()

	departures, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("departure list failed", zap.Error(err))
		return nil, domain.Pagination{}, err
	}
	return departures, domain.NewPagination(total, filter.Page, filter.Limit), nil
}

// Count returns the number of fixed departures with the given status, or
// all of them when status is empty.
func (s *DepartureService) Count(ctx context.Context, status domain.DepartureStatus) (int64, error) {
	filter := domain.DepartureFilter{
		ListParams: domain.ListParams{Page: 1, Limit: 1},
		Status:     status,
	}
	_, total, err := s.repo.List(ctx, filter)
	return total, err
}

// GetByID retrieves one departure by id.
func (s *DepartureService) GetByID(ctx context.Context, id string) (*domain.FixedDeparture, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves one departure by slug.
func (s *DepartureService) GetBySlug(ctx context.Context, slug string) (*domain.FixedDeparture, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create validates and persists a new fixed departure. The initial status
// is derived from the travel dates rather than trusted from the payload,
// except an explicit cancellation which always sticks.
func (s *DepartureService) Create(ctx context.Context, f *domain.FixedDeparture) error {
	if err := f.Validate(); err != nil {
		return err
	}

	slug, err := domain.ResolveSlugOnCreate(ctx, s.repo, f.Title, f.Slug)
	if err != nil {
		return err
	}
	f.Slug = slug
	f.Status = f.StatusAt(s.now())

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error("departure create failed",
			zap.String("slug", f.Slug),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("departure created",
		zap.String("id", f.ID),
		zap.String("slug", f.Slug),
		zap.String("status", string(f.Status)),
	)
	return nil
}

// Update persists changes to an existing departure.
func (s *DepartureService) Update(ctx context.Context, id string, updated *domain.FixedDeparture) (*domain.FixedDeparture, error) {
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
	if updated.Status != domain.DepartureCancelled {
		updated.Status = updated.StatusAt(s.now())
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("departure update failed",
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete removes a departure.
func (s *DepartureService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("departure deleted", zap.String("id", id))
	return nil
}

// Cancel marks a departure cancelled. Cancellation is terminal: the status
// job never advances a cancelled departure.
func (s *DepartureService) Cancel(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, id, domain.DepartureCancelled)
}

// RollOverStatuses advances stale departure statuses to what the travel
// dates dictate. The background job calls this under a distributed lock;
// it returns how many rows changed.
func (s *DepartureService) RollOverStatuses(ctx context.Context) (int, error) {
	now := s.now()

	stale, err := s.repo.ListEnded(ctx, now)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, f := range stale {
		want := f.StatusAt(now)
		if want == f.Status {
			continue
		}
		if err := s.repo.UpdateStatus(ctx, f.ID, want); err != nil {
			s.logger.Error("status roll-over failed",
				zap.String("id", f.ID),
				zap.String("from", string(f.Status)),
				zap.String("to", string(want)),
				zap.Error(err),
			)
			continue
		}
		updated++
	}

	if updated > 0 {
		s.logger.Info("departure statuses rolled over", zap.Int("updated", updated))
	}
	return updated, nil
}
