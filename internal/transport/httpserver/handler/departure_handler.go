package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/domain"
	"travel-catalog-service/internal/transport/httpserver/dto"
	"travel-catalog-service/internal/validator"
)

// DepartureHandler handles fixed departure HTTP requests.
type DepartureHandler struct {
	service   *service.DepartureService
	presenter *dto.Presenter
	validator *validator.Validator
	logger    *zap.Logger
}

// NewDepartureHandler creates a new DepartureHandler.
func NewDepartureHandler(svc *service.DepartureService, p *dto.Presenter, v *validator.Validator, logger *zap.Logger) *DepartureHandler {
	return &DepartureHandler{
		service:   svc,
		presenter: p,
		validator: v,
		logger:    logger,
	}
}

// List handles GET /api/v1/fixed-departures
func (h *DepartureHandler) List(c *fiber.Ctx) error {
	var req dto.DepartureListRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c)
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	departures, pagination, err := h.service.List(c.Context(), req.ToFilter())
	if err != nil {
		return respondDomainError(c, h.logger, err, "list departures")
	}

	return c.JSON(dto.ListResponse{
		Data:       h.presenter.Departures(departures),
		Pagination: pagination,
	})
}

// GetByID handles GET /api/v1/fixed-departures/:id
func (h *DepartureHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	dep, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, h.logger, err, "get departure")
	}

	return c.JSON(h.presenter.Departure(dep))
}

// GetBySlug handles GET /api/v1/fixed-departures/slug/:slug
func (h *DepartureHandler) GetBySlug(c *fiber.Ctx) error {
	dep, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondDomainError(c, h.logger, err, "get departure")
	}

	return c.JSON(h.presenter.Departure(dep))
}

// Create handles POST /api/v1/fixed-departures
func (h *DepartureHandler) Create(c *fiber.Ctx) error {
	var dep domain.FixedDeparture
	if err := c.BodyParser(&dep); err != nil {
		return invalidBody(c)
	}

	if err := h.service.Create(c.Context(), &dep); err != nil {
		return respondDomainError(c, h.logger, err, "create departure")
	}

	return c.Status(fiber.StatusCreated).JSON(h.presenter.Departure(&dep))
}

// Update handles PUT /api/v1/fixed-departures/:id
func (h *DepartureHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	var dep domain.FixedDeparture
	if err := c.BodyParser(&dep); err != nil {
		return invalidBody(c)
	}

	updated, err := h.service.Update(c.Context(), id, &dep)
	if err != nil {
		return respondDomainError(c, h.logger, err, "update departure")
	}

	return c.JSON(h.presenter.Departure(updated))
}

// Cancel handles POST /api/v1/fixed-departures/:id/cancel
func (h *DepartureHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.Cancel(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "cancel departure")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Delete handles DELETE /api/v1/fixed-departures/:id
func (h *DepartureHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, h.logger, err, "delete departure")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
