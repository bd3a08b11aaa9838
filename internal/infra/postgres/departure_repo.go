package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel-catalog-service/internal/domain"
)

// DepartureRepository implements domain.DepartureRepository with GORM.
type DepartureRepository struct {
	db *gorm.DB
}

// NewDepartureRepository creates a new fixed departure repository.
func NewDepartureRepository(db *gorm.DB) *DepartureRepository {
	return &DepartureRepository{db: db}
}

// SlugTaken reports whether slug is used by another departure.
func (r *DepartureRepository) SlugTaken(ctx context.Context, slug string, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&DepartureModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting slug %q: %w", slug, err)
	}
	return count > 0, nil
}

// List returns active departures matching the filter with a total row
// count, soonest departure first.
func (r *DepartureRepository) List(ctx context.Context, filter domain.DepartureFilter) ([]*domain.FixedDeparture, int64, error) {
	filter.Normalize()

	q := r.db.WithContext(ctx).Model(&DepartureModel{}).Where("is_active = ?", true)
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.Featured {
		q = q.Where("is_featured = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting departures: %w", err)
	}

	var models []DepartureModel
	err := q.Order("departure_date ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing departures: %w", err)
	}

	return departuresToDomain(models), total, nil
}

// GetByID retrieves a departure by its id.
func (r *DepartureRepository) GetByID(ctx context.Context, id string) (*domain.FixedDeparture, error) {
	var model DepartureModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting departure %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// GetBySlug retrieves an active departure by its slug.
func (r *DepartureRepository) GetBySlug(ctx context.Context, slug string) (*domain.FixedDeparture, error) {
	var model DepartureModel
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting departure by slug %q: %w", slug, err)
	}
	return model.ToDomain(), nil
}

// Create inserts a new fixed departure.
func (r *DepartureRepository) Create(ctx context.Context, f *domain.FixedDeparture) error {
	model := DepartureFromDomain(f)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Slug: f.Slug}
		}
		return fmt.Errorf("creating departure: %w", err)
	}
	*f = *model.ToDomain()
	return nil
}

// Update saves all fields of an existing departure.
func (r *DepartureRepository) Update(ctx context.Context, f *domain.FixedDeparture) error {
	model := DepartureFromDomain(f)
	result := r.db.WithContext(ctx).Model(&DepartureModel{}).
		Where("id = ?", f.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Slug: f.Slug}
		}
		return fmt.Errorf("updating departure %s: %w", f.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a departure by id.
func (r *DepartureRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DepartureModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting departure %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListEnded returns non-cancelled departures whose stored status lags the
// given instant: departed but still marked upcoming, or returned but not
// yet completed. The status roll-over job feeds these through
// UpdateStatus.
func (r *DepartureRepository) ListEnded(ctx context.Context, now time.Time) ([]*domain.FixedDeparture, error) {
	var models []DepartureModel
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{
			string(domain.DepartureCancelled),
			string(domain.DepartureCompleted),
		}).
		Where(
			"(departure_date <= ? AND status = ?) OR return_date <= ?",
			now, string(domain.DepartureUpcoming), now,
		).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing ended departures: %w", err)
	}
	return departuresToDomain(models), nil
}

// UpdateStatus sets the lifecycle status of one departure.
func (r *DepartureRepository) UpdateStatus(ctx context.Context, id string, status domain.DepartureStatus) error {
	result := r.db.WithContext(ctx).Model(&DepartureModel{}).
		Where("id = ?", id).
		UpdateColumn("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("updating departure %s status: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func departuresToDomain(models []DepartureModel) []*domain.FixedDeparture {
	out := make([]*domain.FixedDeparture, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out
}
