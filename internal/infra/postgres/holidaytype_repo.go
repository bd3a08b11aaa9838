package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"travel-catalog-service/internal/domain"
)

// HolidayTypeRepository implements domain.HolidayTypeRepository with GORM.
type HolidayTypeRepository struct {
	db *gorm.DB
}

// NewHolidayTypeRepository creates a new holiday type repository.
func NewHolidayTypeRepository(db *gorm.DB) *HolidayTypeRepository {
	return &HolidayTypeRepository{db: db}
}

// SlugTaken reports whether slug is used by another holiday type.
func (r *HolidayTypeRepository) SlugTaken(ctx context.Context, slug string, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&HolidayTypeModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting slug %q: %w", slug, err)
	}
	return count > 0, nil
}

// List returns holiday types in display order.
func (r *HolidayTypeRepository) List(ctx context.Context, activeOnly bool) ([]*domain.HolidayType, error) {
	q := r.db.WithContext(ctx).Model(&HolidayTypeModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var models []HolidayTypeModel
	if err := q.Order("sort_order ASC, created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing holiday types: %w", err)
	}
	return holidayTypesToDomain(models), nil
}

// SuggestCandidates fetches active holiday types whose title or
// descriptions contain query, capped at limit.
func (r *HolidayTypeRepository) SuggestCandidates(ctx context.Context, query string, limit int) ([]*domain.HolidayType, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var models []HolidayTypeModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("title <> ''").
		Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(short_description) LIKE ?",
			pattern, pattern, pattern,
		).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("fetching holiday type suggestions: %w", err)
	}
	return holidayTypesToDomain(models), nil
}

// GetByID retrieves a holiday type by its id.
func (r *HolidayTypeRepository) GetByID(ctx context.Context, id string) (*domain.HolidayType, error) {
	var model HolidayTypeModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting holiday type %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// GetBySlug retrieves an active holiday type by its slug.
func (r *HolidayTypeRepository) GetBySlug(ctx context.Context, slug string) (*domain.HolidayType, error) {
	var model HolidayTypeModel
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting holiday type by slug %q: %w", slug, err)
	}
	return model.ToDomain(), nil
}

// Create inserts a new holiday type.
func (r *HolidayTypeRepository) Create(ctx context.Context, h *domain.HolidayType) error {
	model := HolidayTypeFromDomain(h)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Slug: h.Slug}
		}
		return fmt.Errorf("creating holiday type: %w", err)
	}
	*h = *model.ToDomain()
	return nil
}

// Update saves all fields of an existing holiday type.
func (r *HolidayTypeRepository) Update(ctx context.Context, h *domain.HolidayType) error {
	model := HolidayTypeFromDomain(h)
	result := r.db.WithContext(ctx).Model(&HolidayTypeModel{}).
		Where("id = ?", h.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Slug: h.Slug}
		}
		return fmt.Errorf("updating holiday type %s: %w", h.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a holiday type by id.
func (r *HolidayTypeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&HolidayTypeModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting holiday type %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func holidayTypesToDomain(models []HolidayTypeModel) []*domain.HolidayType {
	out := make([]*domain.HolidayType, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out
}
