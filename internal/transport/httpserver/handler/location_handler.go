package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/transport/httpserver/dto"
)

// LocationHandler exposes the upstream geo directory (countries, states,
// cities) used by the admin forms.
type LocationHandler struct {
	service *service.LocationService
	logger  *zap.Logger
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(svc *service.LocationService, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		service: svc,
		logger:  logger,
	}
}

// Countries handles GET /api/v1/locations/countries
func (h *LocationHandler) Countries(c *fiber.Ctx) error {
	countries, err := h.service.Countries(c.Context())
	if err != nil {
		h.logger.Error("geo countries lookup failed", zap.Error(err))

		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: "location directory unavailable",
			Code:  "UPSTREAM_ERROR",
		})
	}

	return c.JSON(fiber.Map{"data": countries})
}

// States handles GET /api/v1/locations/countries/:country/states
func (h *LocationHandler) States(c *fiber.Ctx) error {
	country := c.Params("country")

	states, err := h.service.States(c.Context(), country)
	if err != nil {
		h.logger.Error("geo states lookup failed",
			zap.String("country", country),
			zap.Error(err))

		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: "location directory unavailable",
			Code:  "UPSTREAM_ERROR",
		})
	}

	return c.JSON(fiber.Map{"data": states})
}

// CitiesByState handles GET /api/v1/locations/countries/:country/states/:state/cities
func (h *LocationHandler) CitiesByState(c *fiber.Ctx) error {
	country := c.Params("country")
	state := c.Params("state")

	cities, err := h.service.CitiesByState(c.Context(), country, state)
	if err != nil {
		h.logger.Error("geo cities lookup failed",
			zap.String("country", country),
			zap.String("state", state),
			zap.Error(err))

		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: "location directory unavailable",
			Code:  "UPSTREAM_ERROR",
		})
	}

	return c.JSON(fiber.Map{"data": cities})
}

// CitiesByCountry handles GET /api/v1/locations/countries/:country/cities
func (h *LocationHandler) CitiesByCountry(c *fiber.Ctx) error {
	country := c.Params("country")

	cities, err := h.service.CitiesByCountry(c.Context(), country)
	if err != nil {
		h.logger.Error("geo cities lookup failed",
			zap.String("country", country),
			zap.Error(err))

		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: "location directory unavailable",
			Code:  "UPSTREAM_ERROR",
		})
	}

	return c.JSON(fiber.Map{"data": cities})
}
