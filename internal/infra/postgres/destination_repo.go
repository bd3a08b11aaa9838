package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"travel-catalog-service/internal/domain"
)

// DestinationRepository implements domain.DestinationRepository with GORM.
type DestinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository creates a new destination repository.
func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// SlugTaken reports whether slug is used by another destination.
func (r *DestinationRepository) SlugTaken(ctx context.Context, slug string, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&DestinationModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting slug %q: %w", slug, err)
	}
	return count > 0, nil
}

func (r *DestinationRepository) applyFilter(q *gorm.DB, filter domain.DestinationFilter) *gorm.DB {
	q = q.Where("is_active = ?", true)
	if filter.Trending {
		q = q.Where("is_trending = ?", true)
	}
	if filter.TourType != "" {
		q = q.Where("tour_type = ?", string(filter.TourType))
	}
	if filter.Country != "" {
		q = q.Where("LOWER(country) = LOWER(?)", filter.Country)
	}
	if filter.State != "" {
		// For international tours the storefront sends a country name in the
		// state field, so match it against either column.
		q = q.Where("LOWER(state) = LOWER(?) OR LOWER(country) = LOWER(?)", filter.State, filter.State)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.HolidayTypeID != "" {
		q = q.Where("holiday_type_id = ?", filter.HolidayTypeID)
	}
	return q
}

// List returns active destinations matching the filter with a total row count.
func (r *DestinationRepository) List(ctx context.Context, filter domain.DestinationFilter) ([]*domain.Destination, int64, error) {
	filter.Normalize()

	q := r.applyFilter(r.db.WithContext(ctx).Model(&DestinationModel{}), filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting destinations: %w", err)
	}

	var models []DestinationModel
	err := q.Order("visit_count DESC, created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing destinations: %w", err)
	}

	return destinationsToDomain(models), total, nil
}

// Search returns active destinations matching a free-text query over name,
// location, country and description, narrowed by the filter.
func (r *DestinationRepository) Search(ctx context.Context, query string, filter domain.DestinationFilter) ([]*domain.Destination, error) {
	filter.Normalize()

	q := r.applyFilter(r.db.WithContext(ctx).Model(&DestinationModel{}), filter)
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(country) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var models []DestinationModel
	err := q.Order("visit_count DESC, created_at DESC").
		Limit(filter.Limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("searching destinations: %w", err)
	}
	return destinationsToDomain(models), nil
}

// SuggestCandidates fetches active destinations whose name, location,
// country, state or description contains query, capped at limit.
func (r *DestinationRepository) SuggestCandidates(ctx context.Context, query string, limit int) ([]*domain.Destination, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var models []DestinationModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("name <> ''").
		Where(
			"LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(country) LIKE ? OR LOWER(state) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("fetching destination suggestions: %w", err)
	}
	return destinationsToDomain(models), nil
}

// GetByID retrieves a destination by its id.
func (r *DestinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	var model DestinationModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting destination %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// GetBySlug retrieves an active destination by its slug.
func (r *DestinationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	var model DestinationModel
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting destination by slug %q: %w", slug, err)
	}
	return model.ToDomain(), nil
}

// Create inserts a new destination.
func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	model := DestinationFromDomain(d)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Slug: d.Slug}
		}
		return fmt.Errorf("creating destination: %w", err)
	}
	*d = *model.ToDomain()
	return nil
}

// Update saves all fields of an existing destination.
func (r *DestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	model := DestinationFromDomain(d)
	result := r.db.WithContext(ctx).Model(&DestinationModel{}).
		Where("id = ?", d.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Slug: d.Slug}
		}
		return fmt.Errorf("updating destination %s: %w", d.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a destination by id.
func (r *DestinationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DestinationModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting destination %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementVisits bumps the visit counter used for trending ordering.
func (r *DestinationRepository) IncrementVisits(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&DestinationModel{}).
		Where("id = ?", id).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("incrementing visits for destination %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DistinctCountries returns the countries of active destinations.
func (r *DestinationRepository) DistinctCountries(ctx context.Context) ([]string, error) {
	return r.pluckDistinct(ctx, "country")
}

// DistinctStates returns the states of active destinations.
func (r *DestinationRepository) DistinctStates(ctx context.Context) ([]string, error) {
	return r.pluckDistinct(ctx, "state")
}

// DistinctTourTypes returns the tour types of active destinations.
func (r *DestinationRepository) DistinctTourTypes(ctx context.Context) ([]string, error) {
	return r.pluckDistinct(ctx, "tour_type")
}

func (r *DestinationRepository) pluckDistinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).Model(&DestinationModel{}).
		Where("is_active = ?", true).
		Where(column+" <> ''").
		Distinct(column).
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("listing destination %s values: %w", column, err)
	}
	return values, nil
}

func destinationsToDomain(models []DestinationModel) []*domain.Destination {
	out := make([]*domain.Destination, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out
}
