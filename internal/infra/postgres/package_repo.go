package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"travel-catalog-service/internal/domain"
)

// PackageRepository implements domain.PackageRepository with GORM.
type PackageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository.
func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// SlugTaken reports whether slug is used by another package.
func (r *PackageRepository) SlugTaken(ctx context.Context, slug string, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&PackageModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting slug %q: %w", slug, err)
	}
	return count > 0, nil
}

// List returns active packages matching the filter with a total row count.
func (r *PackageRepository) List(ctx context.Context, filter domain.PackageFilter) ([]*domain.Package, int64, error) {
	filter.Normalize()

	q := r.db.WithContext(ctx).Model(&PackageModel{}).Where("is_active = ?", true)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Featured {
		q = q.Where("is_featured = ?", true)
	}
	if filter.TourType != "" {
		q = q.Where("tour_type = ?", string(filter.TourType))
	}
	if filter.Country != "" {
		q = q.Where("LOWER(country) = LOWER(?)", filter.Country)
	}
	if filter.State != "" {
		q = q.Where("LOWER(state) = LOWER(?)", filter.State)
	}
	if filter.HolidayTypeID != "" {
		q = q.Where("holiday_type_id = ?", filter.HolidayTypeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting packages: %w", err)
	}

	var models []PackageModel
	err := q.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing packages: %w", err)
	}

	return packagesToDomain(models), total, nil
}

// ListByCategory returns up to limit active packages of one category.
func (r *PackageRepository) ListByCategory(ctx context.Context, category string, limit int) ([]*domain.Package, error) {
	var models []PackageModel
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND category = ?", true, category).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing packages by category: %w", err)
	}
	return packagesToDomain(models), nil
}

// Search returns active packages matching a free-text query over title,
// destination, description and country, optionally narrowed by category
// and price range.
func (r *PackageRepository) Search(ctx context.Context, params domain.PackageSearch) ([]*domain.Package, error) {
	q := r.db.WithContext(ctx).Model(&PackageModel{}).Where("is_active = ?", true)

	if params.Query != "" {
		pattern := "%" + strings.ToLower(params.Query) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(destination) LIKE ? OR LOWER(description) LIKE ? OR LOWER(country) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if params.Category != "" {
		q = q.Where("category = ?", params.Category)
	}
	if params.MinPrice > 0 {
		q = q.Where("price >= ?", params.MinPrice)
	}
	if params.MaxPrice > 0 {
		q = q.Where("price <= ?", params.MaxPrice)
	}

	var models []PackageModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("searching packages: %w", err)
	}
	return packagesToDomain(models), nil
}

// SuggestCandidates fetches active packages whose title, destination or
// description contains query, capped at limit. Rows missing a title or
// destination are excluded so they never reach the ranker.
func (r *PackageRepository) SuggestCandidates(ctx context.Context, query string, limit int) ([]*domain.Package, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var models []PackageModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("title <> '' AND destination <> ''").
		Where(
			"LOWER(title) LIKE ? OR LOWER(destination) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("fetching package suggestions: %w", err)
	}
	return packagesToDomain(models), nil
}

// GetByID retrieves a package by its id.
func (r *PackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	var model PackageModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting package %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// GetBySlug retrieves an active package by its slug. Deactivated packages
// are not reachable through their public URL.
func (r *PackageRepository) GetBySlug(ctx context.Context, slug string) (*domain.Package, error) {
	var model PackageModel
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting package by slug %q: %w", slug, err)
	}
	return model.ToDomain(), nil
}

// Create inserts a new package. A duplicate slug, even one that slipped
// past the pre-check under concurrency, comes back as a ConflictError.
func (r *PackageRepository) Create(ctx context.Context, p *domain.Package) error {
	model := PackageFromDomain(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Slug: p.Slug}
		}
		return fmt.Errorf("creating package: %w", err)
	}
	*p = *model.ToDomain()
	return nil
}

// Update saves all fields of an existing package.
func (r *PackageRepository) Update(ctx context.Context, p *domain.Package) error {
	model := PackageFromDomain(p)
	result := r.db.WithContext(ctx).Model(&PackageModel{}).
		Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Slug: p.Slug}
		}
		return fmt.Errorf("updating package %s: %w", p.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a package by id.
func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PackageModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting package %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DistinctCountries returns the countries of active packages.
func (r *PackageRepository) DistinctCountries(ctx context.Context) ([]string, error) {
	var countries []string
	err := r.db.WithContext(ctx).Model(&PackageModel{}).
		Where("is_active = ? AND country <> ''", true).
		Distinct("country").
		Order("country").
		Pluck("country", &countries).Error
	if err != nil {
		return nil, fmt.Errorf("listing package countries: %w", err)
	}
	return countries, nil
}

// DistinctStates returns the states of active packages.
func (r *PackageRepository) DistinctStates(ctx context.Context) ([]string, error) {
	var states []string
	err := r.db.WithContext(ctx).Model(&PackageModel{}).
		Where("is_active = ? AND state <> ''", true).
		Distinct("state").
		Order("state").
		Pluck("state", &states).Error
	if err != nil {
		return nil, fmt.Errorf("listing package states: %w", err)
	}
	return states, nil
}

func packagesToDomain(models []PackageModel) []*domain.Package {
	out := make([]*domain.Package, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out
}
