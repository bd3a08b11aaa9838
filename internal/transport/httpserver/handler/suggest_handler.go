package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/transport/httpserver/dto"
)

// SuggestHandler handles type-ahead suggestion HTTP requests.
//
// Suggestion endpoints never fail: a malformed or too-short query, or a
// storage error behind the service, all come back as 200 with empty lists.
// The search box must keep working no matter what.
type SuggestHandler struct {
	service   *service.SuggestService
	presenter *dto.Presenter
	logger    *zap.Logger
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(svc *service.SuggestService, p *dto.Presenter, logger *zap.Logger) *SuggestHandler {
	return &SuggestHandler{
		service:   svc,
		presenter: p,
		logger:    logger,
	}
}

// Packages handles GET /api/v1/suggestions/packages
func (h *SuggestHandler) Packages(c *fiber.Ctx) error {
	suggestions := h.service.SuggestPackages(c.Context(), c.Query("q"))

	return c.JSON(dto.SuggestionsResponse{
		Suggestions: h.presenter.PackageSuggestions(suggestions),
	})
}

// HolidayTypes handles GET /api/v1/suggestions/holiday-types
func (h *SuggestHandler) HolidayTypes(c *fiber.Ctx) error {
	suggestions := h.service.SuggestHolidayTypes(c.Context(), c.Query("q"))

	return c.JSON(dto.SuggestionsResponse{
		Suggestions: h.presenter.HolidayTypeSuggestions(suggestions),
	})
}

// Combined handles GET /api/v1/suggestions
func (h *SuggestHandler) Combined(c *fiber.Ctx) error {
	combined := h.service.SuggestCombined(c.Context(), c.Query("q"))

	return c.JSON(dto.CombinedSuggestionsResponse{
		Destinations: h.presenter.DestinationSuggestions(combined.Destinations),
		Packages:     h.presenter.PackageSuggestions(combined.Packages),
	})
}
