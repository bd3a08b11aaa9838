package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/transport/httpserver/dto"
	"travel-catalog-service/internal/validator"
)

// ContentHandler handles editorial content HTTP requests: blogs,
// testimonials, FAQs, SEO settings and site blocks.
type ContentHandler struct {
	service   *service.ContentService
	presenter *dto.Presenter
	validator *validator.Validator
	logger    *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc *service.ContentService, p *dto.Presenter, v *validator.Validator, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service:   svc,
		presenter: p,
		validator: v,
		logger:    logger,
	}
}

// ListBlogs handles GET /api/v1/blogs
func (h *ContentHandler) ListBlogs(c *fiber.Ctx) error {
	var req dto.BlogListRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	blogs, pagination, err := h.service.ListBlogs(c.Context(), req.ToFilter())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list blogs")
	}

	return c.JSON(dto.ListResponse{
		Data:       h.presenter.Blogs(blogs),
		Pagination: pagination,
	})
}

// GetBlog handles GET /api/v1/blogs/:id
//
// Reading a blog counts as a view.
func (h *ContentHandler) GetBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	blog, err := h.service.GetBlog(c.Context(), id)
	if err != nil {
		return respondDomainError(c, h.logger, err, "get blog")
	}

	return c.JSON(h.presenter.Blog(blog))
}

// CreateBlog handles POST /api/v1/blogs
func (h *ContentHandler) CreateBlog(c *fiber.Ctx) error {
	var blog domain.Blog
	if err := c.BodyParser(&blog); err != nil {
		return invalidBody(c)
	}

	if err := h.service.CreateBlog(c.Context(), &blog); err != nil {
		return respondDomainError(c, h.logger, err, "create blog")
	}

	return c.Status(fiber.StatusCreated).JSON(h.presenter.Blog(&blog))
}

// UpdateBlog handles PUT /api/v1/blogs/:id
func (h *ContentHandler) UpdateBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	var blog domain.Blog
	if err := c.BodyParser(&blog); err != nil {
		return invalidBody(c)
	}

	updated, err := h.service.UpdateBlog(c.Context(), id, &blog)
	if err != nil {
		return respondDomainError(c, h.logger, err, "update blog")
	}

	return c.JSON(h.presenter.Blog(updated))
}

// DeleteBlog handles DELETE /api/v1/blogs/:id
func (h *ContentHandler) DeleteBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.DeleteBlog(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "delete blog")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListTestimonials handles GET /api/v1/testimonials
func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.service.ListTestimonials(c.Context(), c.QueryBool("featured"))
	if err != nil {
		return respondDomainError(c, h.logger, err, "list testimonials")
	}

	return c.JSON(fiber.Map{"data": h.presenter.Testimonials(testimonials)})
}

// CreateTestimonial handles POST /api/v1/testimonials
func (h *ContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	var t domain.Testimonial
	if err := c.BodyParser(&t); err != nil {
		return invalidBody(c)
	}

	if err := h.service.CreateTestimonial(c.Context(), &t); err != nil {
		return respondDomainError(c, h.logger, err, "create testimonial")
	}

	return c.Status(fiber.StatusCreated).JSON(h.presenter.Testimonial(&t))
}

// UpdateTestimonial handles PUT /api/v1/testimonials/:id
func (h *ContentHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	var t domain.Testimonial
	if err := c.BodyParser(&t); err != nil {
		return invalidBody(c)
	}

	updated, err := h.service.UpdateTestimonial(c.Context(), id, &t)
	if err != nil {
		return respondDomainError(c, h.logger, err, "update testimonial")
	}

	return c.JSON(h.presenter.Testimonial(updated))
}

// DeleteTestimonial handles DELETE /api/v1/testimonials/:id
func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.DeleteTestimonial(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "delete testimonial")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListFAQs handles GET /api/v1/faqs
func (h *ContentHandler) ListFAQs(c *fiber.Ctx) error {
	faqs, err := h.service.ListFAQs(c.Context(), c.Query("location"))
	if err != nil {
		return respondDomainError(c, h.logger, err, "list faqs")
	}

	return c.JSON(fiber.Map{"data": faqs})
}

// CreateFAQ handles POST /api/v1/faqs
func (h *ContentHandler) CreateFAQ(c *fiber.Ctx) error {
	var f domain.FAQ
	if err := c.BodyParser(&f); err != nil {
		return invalidBody(c)
	}

	if err := h.service.CreateFAQ(c.Context(), &f); err != nil {
		return respondDomainError(c, h.logger, err, "create faq")
	}

	return c.Status(fiber.StatusCreated).JSON(&f)
}

// UpdateFAQ handles PUT /api/v1/faqs/:id
func (h *ContentHandler) UpdateFAQ(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	var f domain.FAQ
	if err := c.BodyParser(&f); err != nil {
		return invalidBody(c)
	}

	updated, err := h.service.UpdateFAQ(c.Context(), id, &f)
	if err != nil {
		return respondDomainError(c, h.logger, err, "update faq")
	}

	return c.JSON(updated)
}

// DeleteFAQ handles DELETE /api/v1/faqs/:id
func (h *ContentHandler) DeleteFAQ(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.DeleteFAQ(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "delete faq")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetSEO handles GET /api/v1/seo/:page
func (h *ContentHandler) GetSEO(c *fiber.Ctx) error {
	seo, err := h.service.GetSEO(c.Context(), c.Params("page"))
	if err != nil {
		return respondDomainError(c, h.logger, err, "get seo settings")
	}

	return c.JSON(seo)
}

// ListSEO handles GET /api/v1/seo
func (h *ContentHandler) ListSEO(c *fiber.Ctx) error {
	settings, err := h.service.ListSEO(c.Context())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list seo settings")
	}

	return c.JSON(fiber.Map{"data": settings})
}

// UpsertSEO handles PUT /api/v1/seo
func (h *ContentHandler) UpsertSEO(c *fiber.Ctx) error {
	var seo domain.SEOSettings
	if err := c.BodyParser(&seo); err != nil {
		return invalidBody(c)
	}

	if err := h.service.UpsertSEO(c.Context(), &seo); err != nil {
		return respondDomainError(c, h.logger, err, "save seo settings")
	}

	return c.JSON(&seo)
}

// ActiveBlock handles GET /api/v1/blocks/:kind/active
func (h *ContentHandler) ActiveBlock(c *fiber.Ctx) error {
	block, err := h.service.ActiveBlock(c.Context(), domain.BlockKind(c.Params("kind")))
	if err != nil {
		return respondDomainError(c, h.logger, err, "get active block")
	}

	return c.JSON(h.presenter.Block(block))
}

// ListBlocks handles GET /api/v1/blocks/:kind
func (h *ContentHandler) ListBlocks(c *fiber.Ctx) error {
	blocks, err := h.service.ListBlocks(c.Context(), domain.BlockKind(c.Params("kind")))
	if err != nil {
		return respondDomainError(c, h.logger, err, "list blocks")
	}

	return c.JSON(fiber.Map{"data": h.presenter.Blocks(blocks)})
}

// SaveBlock handles PUT /api/v1/blocks
//
// Activating a block deactivates its siblings of the same kind; the
// service runs that swap in one transaction.
func (h *ContentHandler) SaveBlock(c *fiber.Ctx) error {
	var block domain.SiteBlock
	if err := c.BodyParser(&block); err != nil {
		return invalidBody(c)
	}

	if err := h.service.SaveBlock(c.Context(), &block); err != nil {
		return respondDomainError(c, h.logger, err, "save block")
	}

	return c.JSON(h.presenter.Block(&block))
}

// DeleteBlock handles DELETE /api/v1/blocks/:id
func (h *ContentHandler) DeleteBlock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.DeleteBlock(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "delete block")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
