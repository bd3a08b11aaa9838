package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/transport/httpserver/dto"
	"travel-catalog-service/internal/validator"
)

// PackageHandler handles tour package HTTP requests.
type PackageHandler struct {
	service   *service.PackageService
	presenter *dto.Presenter
	validator *validator.Validator
	logger    *zap.Logger
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(svc *service.PackageService, p *dto.Presenter, v *validator.Validator, logger *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service:   svc,
		presenter: p,
		validator: v,
		logger:    logger,
	}
}

// List handles GET /api/v1/packages
func (h *PackageHandler) List(c *fiber.Ctx) error {
	var req dto.PackageListRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	packages, pagination, err := h.service.List(c.Context(), req.ToFilter())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list packages")
	}

	return c.JSON(dto.ListResponse{
		Data:       h.presenter.Packages(packages),
		Pagination: pagination,
	})
}

// Search handles GET /api/v1/packages/search
func (h *PackageHandler) Search(c *fiber.Ctx) error {
	var req dto.PackageSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	packages, err := h.service.Search(c.Context(), req.ToSearch())
	if err != nil {
		return respondDomainError(c, h.logger, err, "search packages")
	}

	return c.JSON(fiber.Map{"data": h.presenter.Packages(packages)})
}

// Categories handles GET /api/v1/packages/categories
func (h *PackageHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": domain.PackageCategories})
}

// ListByCategory handles GET /api/v1/packages/category/:category
func (h *PackageHandler) ListByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	limit := c.QueryInt("limit")

	packages, err := h.service.ListByCategory(c.Context(), category, limit)
	if err != nil {
		return respondDomainError(c, h.logger, err, "list packages by category")
	}

	return c.JSON(fiber.Map{"data": h.presenter.Packages(packages)})
}

// Countries handles GET /api/v1/packages/countries
func (h *PackageHandler) Countries(c *fiber.Ctx) error {
	countries, err := h.service.Countries(c.Context())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list package countries")
	}
	return c.JSON(fiber.Map{"countries": countries})
}

// States handles GET /api/v1/packages/states
func (h *PackageHandler) States(c *fiber.Ctx) error {
	states, err := h.service.States(c.Context())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list package states")
	}
	return c.JSON(fiber.Map{"states": states})
}

// GetByID handles GET /api/v1/packages/:id
func (h *PackageHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	pkg, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, h.logger, err, "get package")
	}

	return c.JSON(h.presenter.Package(pkg))
}

// GetBySlug handles GET /api/v1/packages/slug/:slug
func (h *PackageHandler) GetBySlug(c *fiber.Ctx) error {
	pkg, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondDomainError(c, h.logger, err, "get package")
	}

	return c.JSON(h.presenter.Package(pkg))
}

// Create handles POST /api/v1/packages
func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var pkg domain.Package
	if err := c.BodyParser(&pkg); err != nil {
		return invalidBody(c)
	}

	if err := h.service.Create(c.Context(), &pkg); err != nil {
		return respondDomainError(c, h.logger, err, "create package")
	}

	return c.Status(fiber.StatusCreated).JSON(h.presenter.Package(&pkg))
}

// Update handles PUT /api/v1/packages/:id
func (h *PackageHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	var pkg domain.Package
	if err := c.BodyParser(&pkg); err != nil {
		return invalidBody(c)
	}

	updated, err := h.service.Update(c.Context(), id, &pkg)
	if err != nil {
		return respondDomainError(c, h.logger, err, "update package")
	}

	return c.JSON(h.presenter.Package(updated))
}

// Delete handles DELETE /api/v1/packages/:id
func (h *PackageHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "delete package")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
