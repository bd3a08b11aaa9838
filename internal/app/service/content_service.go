package service

import (
	"context"

	"go.uber.org/zap"

	"travel-catalog-service/internal/domain"
)

// ContentService handles editorial content: blogs, testimonials, FAQs,
// SEO settings and site blocks.
type ContentService struct {
	repo   domain.ContentRepository
	logger *zap.Logger
}

// NewContentService creates a new ContentService.
func NewContentService(repo domain.ContentRepository, logger *zap.Logger) *ContentService {
	return &ContentService{
		repo:   repo,
		logger: logger,
	}
}

// ListBlogs returns blogs matching the filter plus the pagination
// envelope.
func (s *ContentService) ListBlogs(ctx context.Context, filter domain.BlogFilter) ([]*domain.Blog, domain.Pagination, error) {
	filter.Normalize()

	blogs, total, err := s.repo.ListBlogs(ctx, filter)
	if err != nil {
		s.logger.Error("blog list failed", zap.Error(err))
		return nil, domain.Pagination{}, err
	}
	return blogs, domain.NewPagination(total, filter.Page, filter.Limit), nil
}

// GetBlog retrieves one blog and counts the read. The view counter only
// feeds the popularity widgets, so its failure is logged and swallowed.
func (s *ContentService) GetBlog(ctx context.Context, id string) (*domain.Blog, error) {
	blog, err := s.repo.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementBlogViews(ctx, id); err != nil {
		s.logger.Warn("blog view increment failed",
			zap.String("id", id),
			zap.Error(err),
		)
	} else {
		blog.Views++
	}

	return blog, nil
}

// CreateBlog validates and persists a new blog.
func (s *ContentService) CreateBlog(ctx context.Context, b *domain.Blog) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := s.repo.CreateBlog(ctx, b); err != nil {
		s.logger.Error("blog create failed", zap.Error(err))
		return err
	}
	s.logger.Info("blog created", zap.String("id", b.ID))
	return nil
}

// UpdateBlog persists changes to an existing blog.
func (s *ContentService) UpdateBlog(ctx context.Context, id string, updated *domain.Blog) (*domain.Blog, error) {
	current, err := s.repo.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.ID = id
	updated.Views = current.Views
	updated.Likes = current.Likes
	updated.CreatedAt = current.CreatedAt

	if err := s.repo.UpdateBlog(ctx, updated); err != nil {
		s.logger.Error("blog update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DeleteBlog removes a blog.
func (s *ContentService) DeleteBlog(ctx context.Context, id string) error {
	return s.repo.DeleteBlog(ctx, id)
}

// ListTestimonials returns active testimonials, optionally featured only.
func (s *ContentService) ListTestimonials(ctx context.Context, featuredOnly bool) ([]*domain.Testimonial, error) {
	return s.repo.ListTestimonials(ctx, featuredOnly)
}

// CreateTestimonial validates and persists a new testimonial.
func (s *ContentService) CreateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return s.repo.CreateTestimonial(ctx, t)
}

// UpdateTestimonial persists changes to an existing testimonial.
func (s *ContentService) UpdateTestimonial(ctx context.Context, id string, updated *domain.Testimonial) (*domain.Testimonial, error) {
	current, err := s.repo.GetTestimonial(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.ID = id
	updated.CreatedAt = current.CreatedAt

	if err := s.repo.UpdateTestimonial(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTestimonial removes a testimonial.
func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return s.repo.DeleteTestimonial(ctx, id)
}

// ListFAQs returns active FAQs for a location page ("" for all).
func (s *ContentService) ListFAQs(ctx context.Context, location string) ([]*domain.FAQ, error) {
	return s.repo.ListFAQs(ctx, location)
}

// CreateFAQ validates and persists a new FAQ.
func (s *ContentService) CreateFAQ(ctx context.Context, f *domain.FAQ) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return s.repo.CreateFAQ(ctx, f)
}

// UpdateFAQ persists changes to an existing FAQ.
func (s *ContentService) UpdateFAQ(ctx context.Context, id string, updated *domain.FAQ) (*domain.FAQ, error) {
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.ID = id
	if err := s.repo.UpdateFAQ(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteFAQ removes a FAQ.
func (s *ContentService) DeleteFAQ(ctx context.Context, id string) error {
	return s.repo.DeleteFAQ(ctx, id)
}

// GetSEO returns the SEO settings for one page.
func (s *ContentService) GetSEO(ctx context.Context, page string) (*domain.SEOSettings, error) {
	if page == "" {
		return nil, domain.NewValidationError("page", "is required")
	}
	return s.repo.GetSEO(ctx, page)
}

// ListSEO returns every page's SEO settings.
func (s *ContentService) ListSEO(ctx context.Context) ([]*domain.SEOSettings, error) {
	return s.repo.ListSEO(ctx)
}

// UpsertSEO creates or replaces the SEO settings for a page.
func (s *ContentService) UpsertSEO(ctx context.Context, seo *domain.SEOSettings) error {
	if seo.Page == "" {
		return domain.NewValidationError("page", "is required")
	}
	if seo.Title == "" {
		return domain.NewValidationError("title", "is required")
	}
	if seo.Robots == "" {
		seo.Robots = "index, follow"
	}
	return s.repo.UpsertSEO(ctx, seo)
}

// ActiveBlock returns the live site block of a kind.
func (s *ContentService) ActiveBlock(ctx context.Context, kind domain.BlockKind) (*domain.SiteBlock, error) {
	if !domain.ValidBlockKind(kind) {
		return nil, domain.NewValidationError("kind", "must be one of: hero, header, footer, cta")
	}
	return s.repo.ActiveBlock(ctx, kind)
}

// ListBlocks returns every block of a kind, drafts included.
func (s *ContentService) ListBlocks(ctx context.Context, kind domain.BlockKind) ([]*domain.SiteBlock, error) {
	if kind != "" && !domain.ValidBlockKind(kind) {
		return nil, domain.NewValidationError("kind", "must be one of: hero, header, footer, cta")
	}
	return s.repo.ListBlocks(ctx, kind)
}

// SaveBlock validates and persists a site block, deactivating siblings
// when it goes live.
func (s *ContentService) SaveBlock(ctx context.Context, b *domain.SiteBlock) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return s.repo.SaveBlock(ctx, b)
}

// DeleteBlock removes a site block.
func (s *ContentService) DeleteBlock(ctx context.Context, id string) error {
	return s.repo.DeleteBlock(ctx, id)
}
