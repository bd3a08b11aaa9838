package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travel-catalog-service/internal/domain"
)

// ContentRepository implements domain.ContentRepository with GORM. It
// covers blogs, testimonials, FAQs, SEO settings and site blocks, which
// share too little shape to justify one repository each.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository.
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// ListBlogs returns blogs matching the filter with a total row count,
// newest first.
func (r *ContentRepository) ListBlogs(ctx context.Context, filter domain.BlogFilter) ([]*domain.Blog, int64, error) {
	filter.Normalize()

	q := r.db.WithContext(ctx).Model(&BlogModel{})
	if filter.Published {
		q = q.Where("is_published = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Featured {
		q = q.Where("is_featured = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting blogs: %w", err)
	}

	var models []BlogModel
	err := q.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing blogs: %w", err)
	}

	blogs := make([]*domain.Blog, 0, len(models))
	for i := range models {
		blogs = append(blogs, models[i].ToDomain())
	}
	return blogs, total, nil
}

// GetBlog retrieves a blog by its id.
func (r *ContentRepository) GetBlog(ctx context.Context, id string) (*domain.Blog, error) {
	var model BlogModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting blog %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// CreateBlog inserts a new blog.
func (r *ContentRepository) CreateBlog(ctx context.Context, b *domain.Blog) error {
	model := BlogFromDomain(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating blog: %w", err)
	}
	*b = *model.ToDomain()
	return nil
}

// UpdateBlog saves all fields of an existing blog.
func (r *ContentRepository) UpdateBlog(ctx context.Context, b *domain.Blog) error {
	model := BlogFromDomain(b)
	result := r.db.WithContext(ctx).Model(&BlogModel{}).
		Where("id = ?", b.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("updating blog %s: %w", b.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteBlog removes a blog by id.
func (r *ContentRepository) DeleteBlog(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BlogModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting blog %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementBlogViews bumps the view counter of a blog.
func (r *ContentRepository) IncrementBlogViews(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&BlogModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return fmt.Errorf("incrementing views for blog %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListTestimonials returns active testimonials, optionally featured only.
func (r *ContentRepository) ListTestimonials(ctx context.Context, featuredOnly bool) ([]*domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}

	var models []TestimonialModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing testimonials: %w", err)
	}

	out := make([]*domain.Testimonial, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out, nil
}

// GetTestimonial retrieves a testimonial by its id.
func (r *ContentRepository) GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	var model TestimonialModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting testimonial %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// CreateTestimonial inserts a new testimonial.
func (r *ContentRepository) CreateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	model := TestimonialFromDomain(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating testimonial: %w", err)
	}
	*t = *model.ToDomain()
	return nil
}

// UpdateTestimonial saves all fields of an existing testimonial.
func (r *ContentRepository) UpdateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	model := TestimonialFromDomain(t)
	result := r.db.WithContext(ctx).Model(&TestimonialModel{}).
		Where("id = ?", t.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("updating testimonial %s: %w", t.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteTestimonial removes a testimonial by id.
func (r *ContentRepository) DeleteTestimonial(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TestimonialModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting testimonial %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListFAQs returns active FAQs for a location page in display order.
// An empty location returns every active FAQ.
func (r *ContentRepository) ListFAQs(ctx context.Context, location string) ([]*domain.FAQ, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if location != "" {
		q = q.Where("LOWER(location) = LOWER(?)", location)
	}

	var models []FAQModel
	if err := q.Order("sort_order ASC, created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing faqs: %w", err)
	}

	out := make([]*domain.FAQ, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out, nil
}

// CreateFAQ inserts a new FAQ.
func (r *ContentRepository) CreateFAQ(ctx context.Context, f *domain.FAQ) error {
	model := FAQFromDomain(f)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("creating faq: %w", err)
	}
	*f = *model.ToDomain()
	return nil
}

// UpdateFAQ saves all fields of an existing FAQ.
func (r *ContentRepository) UpdateFAQ(ctx context.Context, f *domain.FAQ) error {
	model := FAQFromDomain(f)
	result := r.db.WithContext(ctx).Model(&FAQModel{}).
		Where("id = ?", f.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("updating faq %s: %w", f.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteFAQ removes a FAQ by id.
func (r *ContentRepository) DeleteFAQ(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&FAQModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting faq %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetSEO retrieves the SEO settings for one page.
func (r *ContentRepository) GetSEO(ctx context.Context, page string) (*domain.SEOSettings, error) {
	var model SEOSettingsModel
	err := r.db.WithContext(ctx).Where("page = ?", page).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting seo settings for page %q: %w", page, err)
	}
	return model.ToDomain(), nil
}

// ListSEO returns the SEO settings of every page.
func (r *ContentRepository) ListSEO(ctx context.Context) ([]*domain.SEOSettings, error) {
	var models []SEOSettingsModel
	if err := r.db.WithContext(ctx).Order("page ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing seo settings: %w", err)
	}

	out := make([]*domain.SEOSettings, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out, nil
}

// UpsertSEO creates or replaces the SEO settings for a page. Page is the
// conflict key.
func (r *ContentRepository) UpsertSEO(ctx context.Context, s *domain.SEOSettings) error {
	model := SEOSettingsFromDomain(s)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("upserting seo settings for page %q: %w", s.Page, err)
	}
	*s = *model.ToDomain()
	return nil
}

// ActiveBlock retrieves the single active block of a kind.
func (r *ContentRepository) ActiveBlock(ctx context.Context, kind domain.BlockKind) (*domain.SiteBlock, error) {
	var model SiteBlockModel
	err := r.db.WithContext(ctx).
		Where("kind = ? AND is_active = ?", string(kind), true).
		Order("updated_at DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting active %s block: %w", kind, err)
	}
	return model.ToDomain(), nil
}

// ListBlocks returns every block of a kind, drafts included. An empty kind
// returns all blocks.
func (r *ContentRepository) ListBlocks(ctx context.Context, kind domain.BlockKind) ([]*domain.SiteBlock, error) {
	q := r.db.WithContext(ctx).Model(&SiteBlockModel{})
	if kind != "" {
		q = q.Where("kind = ?", string(kind))
	}

	var models []SiteBlockModel
	if err := q.Order("updated_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing %s blocks: %w", kind, err)
	}

	out := make([]*domain.SiteBlock, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out, nil
}

// SaveBlock creates or updates a site block. Activating a block
// deactivates its siblings of the same kind so at most one stays live.
func (r *ContentRepository) SaveBlock(ctx context.Context, b *domain.SiteBlock) error {
	model := SiteBlockFromDomain(b)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.IsActive {
			deactivate := tx.Model(&SiteBlockModel{}).
				Where("kind = ? AND is_active = ?", string(b.Kind), true)
			if b.ID != "" {
				deactivate = deactivate.Where("id <> ?", b.ID)
			}
			if err := deactivate.UpdateColumn("is_active", false).Error; err != nil {
				return err
			}
		}

		if b.ID == "" {
			return tx.Create(model).Error
		}

		result := tx.Model(&SiteBlockModel{}).
			Where("id = ?", b.ID).
			Select("*").Omit("id", "created_at").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("saving %s block: %w", b.Kind, err)
	}

	*b = *model.ToDomain()
	return nil
}

// DeleteBlock removes a site block by id.
func (r *ContentRepository) DeleteBlock(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SiteBlockModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting block %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
