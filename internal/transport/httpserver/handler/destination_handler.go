package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/transport/httpserver/dto"
	"travel-catalog-service/internal/validator"
)

// DestinationHandler handles destination HTTP requests.
type DestinationHandler struct {
	service   *service.DestinationService
	presenter *dto.Presenter
	validator *validator.Validator
	logger    *zap.Logger
}

// NewDestinationHandler creates a new DestinationHandler.
func NewDestinationHandler(svc *service.DestinationService, p *dto.Presenter, v *validator.Validator, logger *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		service:   svc,
		presenter: p,
		validator: v,
		logger:    logger,
	}
}

// List handles GET /api/v1/destinations
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	var req dto.DestinationListRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	destinations, pagination, err := h.service.List(c.Context(), req.ToFilter())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list destinations")
	}

	return c.JSON(dto.ListResponse{
		Data:       h.presenter.Destinations(destinations),
		Pagination: pagination,
	})
}

// Search handles GET /api/v1/destinations/search
func (h *DestinationHandler) Search(c *fiber.Ctx) error {
	var req dto.DestinationListRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	destinations, err := h.service.Search(c.Context(), c.Query("q"), req.ToFilter())
	if err != nil {
		return respondDomainError(c, h.logger, err, "search destinations")
	}

	return c.JSON(fiber.Map{"data": h.presenter.Destinations(destinations)})
}

// Countries handles GET /api/v1/destinations/countries
func (h *DestinationHandler) Countries(c *fiber.Ctx) error {
	countries, err := h.service.Countries(c.Context())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list destination countries")
	}
	return c.JSON(fiber.Map{"countries": countries})
}

// States handles GET /api/v1/destinations/states
func (h *DestinationHandler) States(c *fiber.Ctx) error {
	states, err := h.service.States(c.Context())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list destination states")
	}
	return c.JSON(fiber.Map{"states": states})
}

// TourTypes handles GET /api/v1/destinations/tour-types
func (h *DestinationHandler) TourTypes(c *fiber.Ctx) error {
	tourTypes, err := h.service.TourTypes(c.Context())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list destination tour types")
	}
	return c.JSON(fiber.Map{"tourTypes": tourTypes})
}

// GetByID handles GET /api/v1/destinations/:id
func (h *DestinationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	dest, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, h.logger, err, "get destination")
	}

	return c.JSON(h.presenter.Destination(dest))
}

// GetBySlug handles GET /api/v1/destinations/slug/:slug
//
// Fetching by slug is a storefront page view, so it also bumps the
// destination's visit counter.
func (h *DestinationHandler) GetBySlug(c *fiber.Ctx) error {
	dest, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondDomainError(c, h.logger, err, "get destination")
	}

	return c.JSON(h.presenter.Destination(dest))
}

// Create handles POST /api/v1/destinations
func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	var dest domain.Destination
	if err := c.BodyParser(&dest); err != nil {
		return invalidBody(c)
	}

	if err := h.service.Create(c.Context(), &dest); err != nil {
		return respondDomainError(c, h.logger, err, "create destination")
	}

	return c.Status(fiber.StatusCreated).JSON(h.presenter.Destination(&dest))
}

// Update handles PUT /api/v1/destinations/:id
func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	var dest domain.Destination
	if err := c.BodyParser(&dest); err != nil {
		return invalidBody(c)
	}

	updated, err := h.service.Update(c.Context(), id, &dest)
	if err != nil {
		return respondDomainError(c, h.logger, err, "update destination")
	}

	return c.JSON(h.presenter.Destination(updated))
}

// Delete handles DELETE /api/v1/destinations/:id
func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "delete destination")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
