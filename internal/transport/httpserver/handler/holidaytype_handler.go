package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/transport/httpserver/dto"
)

// HolidayTypeHandler handles holiday type HTTP requests.
type HolidayTypeHandler struct {
	service   *service.HolidayTypeService
	presenter *dto.Presenter
	logger    *zap.Logger
}

// NewHolidayTypeHandler creates a new HolidayTypeHandler.
func NewHolidayTypeHandler(svc *service.HolidayTypeService, p *dto.Presenter, logger *zap.Logger) *HolidayTypeHandler {
	return &HolidayTypeHandler{
		service:   svc,
		presenter: p,
		logger:    logger,
	}
}

// List handles GET /api/v1/holiday-types
//
// The storefront wants only active entries; the admin UI passes all=true.
func (h *HolidayTypeHandler) List(c *fiber.Ctx) error {
	activeOnly := !c.QueryBool("all")

	types, err := h.service.List(c.Context(), activeOnly)
	if err != nil {
		return respondDomainError(c, h.logger, err, "list holiday types")
	}

	return c.JSON(fiber.Map{"data": h.presenter.HolidayTypes(types)})
}

// GetByID handles GET /api/v1/holiday-types/:id
func (h *HolidayTypeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	ht, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, h.logger, err, "get holiday type")
	}

	return c.JSON(h.presenter.HolidayType(ht))
}

// GetBySlug handles GET /api/v1/holiday-types/slug/:slug
func (h *HolidayTypeHandler) GetBySlug(c *fiber.Ctx) error {
	ht, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondDomainError(c, h.logger, err, "get holiday type")
	}

	return c.JSON(h.presenter.HolidayType(ht))
}

// Create handles POST /api/v1/holiday-types
func (h *HolidayTypeHandler) Create(c *fiber.Ctx) error {
	var ht domain.HolidayType
	if err := c.BodyParser(&ht); err != nil {
		return invalidBody(c)
	}

	if err := h.service.Create(c.Context(), &ht); err != nil {
		return respondDomainError(c, h.logger, err, "create holiday type")
	}

	return c.Status(fiber.StatusCreated).JSON(h.presenter.HolidayType(&ht))
}

// Update handles PUT /api/v1/holiday-types/:id
func (h *HolidayTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	var ht domain.HolidayType
	if err := c.BodyParser(&ht); err != nil {
		return invalidBody(c)
	}

	updated, err := h.service.Update(c.Context(), id, &ht)
	if err != nil {
		return respondDomainError(c, h.logger, err, "update holiday type")
	}

	return c.JSON(h.presenter.HolidayType(updated))
}

// Delete handles DELETE /api/v1/holiday-types/:id
func (h *HolidayTypeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "delete holiday type")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
