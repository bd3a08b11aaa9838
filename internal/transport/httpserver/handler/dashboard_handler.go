package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/domain"
)

// DashboardHandler renders the admin dashboard page.
type DashboardHandler struct {
	packages     *service.PackageService
	destinations *service.DestinationService
	departures   *service.DepartureService
	logger       *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(packages *service.PackageService, destinations *service.DestinationService, departures *service.DepartureService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		packages:     packages,
		destinations: destinations,
		departures:   departures,
		logger:       logger,
	}
}

// Render handles GET /dashboard
//
// Count failures degrade to zero; the page still renders.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	packageCount, _ := h.packages.Count(c.Context())
	destinationCount, _ := h.destinations.Count(c.Context())
	upcomingCount, _ := h.departures.Count(c.Context(), domain.DepartureUpcoming)

	return c.Render("pages/dashboard", fiber.Map{
		"Title":            "Travel Catalog Dashboard",
		"PackageCount":     packageCount,
		"DestinationCount": destinationCount,
		"UpcomingCount":    upcomingCount,
	}, "layouts/base")
}
