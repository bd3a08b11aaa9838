// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travel-catalog-service/internal/app/service"
	"travel-catalog-service/internal/imageurl"
	"travel-catalog-service/internal/transport/httpserver/dto"
	"travel-catalog-service/internal/transport/httpserver/handler"
	"travel-catalog-service/internal/transport/httpserver/middleware"
	"travel-catalog-service/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         int
	BodyLimit    int
	Debug        bool
	AllowOrigins string
	BaseURL      string
}

// Services bundles everything the router wires into handlers.
type Services struct {
	Packages     *service.PackageService
	Destinations *service.DestinationService
	Departures   *service.DepartureService
	HolidayTypes *service.HolidayTypeService
	Suggest      *service.SuggestService
	Content      *service.ContentService
	Locations    *service.LocationService
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg ServerConfig,
	svcs Services,
	db *gorm.DB,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	// Template engine for dashboard
	engine := html.New("./web/templates", ".html")
	if cfg.Debug {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		AppName:      "travel-catalog-service",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
		Views:        engine,
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(db))

	// Global middleware
	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(middleware.CORS(cfg.AllowOrigins))
	app.Use(compress.New())

	// Static files, including uploaded images
	app.Static("/static", "./web/static")
	app.Static("/uploads", "./web/uploads")

	presenter := dto.NewPresenter(imageurl.NewResolver(cfg.BaseURL))

	packageHandler := handler.NewPackageHandler(svcs.Packages, presenter, v, logger)
	destinationHandler := handler.NewDestinationHandler(svcs.Destinations, presenter, v, logger)
	departureHandler := handler.NewDepartureHandler(svcs.Departures, presenter, v, logger)
	holidayTypeHandler := handler.NewHolidayTypeHandler(svcs.HolidayTypes, presenter, logger)
	suggestHandler := handler.NewSuggestHandler(svcs.Suggest, presenter, logger)
	contentHandler := handler.NewContentHandler(svcs.Content, presenter, v, logger)
	locationHandler := handler.NewLocationHandler(svcs.Locations, logger)
	dashboardHandler := handler.NewDashboardHandler(svcs.Packages, svcs.Destinations, svcs.Departures, logger)

	registerRoutes(app,
		packageHandler,
		destinationHandler,
		departureHandler,
		holidayTypeHandler,
		suggestHandler,
		contentHandler,
		locationHandler,
		dashboardHandler,
	)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all API routes.
func registerRoutes(
	app *fiber.App,
	packages *handler.PackageHandler,
	destinations *handler.DestinationHandler,
	departures *handler.DepartureHandler,
	holidayTypes *handler.HolidayTypeHandler,
	suggest *handler.SuggestHandler,
	content *handler.ContentHandler,
	locations *handler.LocationHandler,
	dashboard *handler.DashboardHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	// Dashboard (HTML)
	app.Get("/dashboard", dashboard.Render)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	v1 := app.Group("/api/v1")

	// Packages. Fixed paths must be registered before the :id catch-all.
	pkg := v1.Group("/packages")
	pkg.Get("/", packages.List)
	pkg.Get("/search", packages.Search)
	pkg.Get("/categories", packages.Categories)
	pkg.Get("/countries", packages.Countries)
	pkg.Get("/states", packages.States)
	pkg.Get("/category/:category", packages.ListByCategory)
	pkg.Get("/slug/:slug", packages.GetBySlug)
	pkg.Get("/:id", packages.GetByID)
	pkg.Post("/", packages.Create)
	pkg.Put("/:id", packages.Update)
	pkg.Delete("/:id", packages.Delete)

	// Destinations
	dest := v1.Group("/destinations")
	dest.Get("/", destinations.List)
	dest.Get("/search", destinations.Search)
	dest.Get("/countries", destinations.Countries)
	dest.Get("/states", destinations.States)
	dest.Get("/tour-types", destinations.TourTypes)
	dest.Get("/slug/:slug", destinations.GetBySlug)
	dest.Get("/:id", destinations.GetByID)
	dest.Post("/", destinations.Create)
	dest.Put("/:id", destinations.Update)
	dest.Delete("/:id", destinations.Delete)

	// Fixed departures
	dep := v1.Group("/fixed-departures")
	dep.Get("/", departures.List)
	dep.Get("/slug/:slug", departures.GetBySlug)
	dep.Get("/:id", departures.GetByID)
	dep.Post("/", departures.Create)
	dep.Post("/:id/cancel", departures.Cancel)
	dep.Put("/:id", departures.Update)
	dep.Delete("/:id", departures.Delete)

	// Holiday types
	ht := v1.Group("/holiday-types")
	ht.Get("/", holidayTypes.List)
	ht.Get("/slug/:slug", holidayTypes.GetBySlug)
	ht.Get("/:id", holidayTypes.GetByID)
	ht.Post("/", holidayTypes.Create)
	ht.Put("/:id", holidayTypes.Update)
	ht.Delete("/:id", holidayTypes.Delete)

	// Type-ahead suggestions
	sug := v1.Group("/suggestions")
	sug.Get("/", suggest.Combined)
	sug.Get("/packages", suggest.Packages)
	sug.Get("/holiday-types", suggest.HolidayTypes)

	// Blogs
	blogs := v1.Group("/blogs")
	blogs.Get("/", content.ListBlogs)
	blogs.Get("/:id", content.GetBlog)
	blogs.Post("/", content.CreateBlog)
	blogs.Put("/:id", content.UpdateBlog)
	blogs.Delete("/:id", content.DeleteBlog)

	// Testimonials
	testimonials := v1.Group("/testimonials")
	testimonials.Get("/", content.ListTestimonials)
	testimonials.Post("/", content.CreateTestimonial)
	testimonials.Put("/:id", content.UpdateTestimonial)
	testimonials.Delete("/:id", content.DeleteTestimonial)

	// FAQs
	faqs := v1.Group("/faqs")
	faqs.Get("/", content.ListFAQs)
	faqs.Post("/", content.CreateFAQ)
	faqs.Put("/:id", content.UpdateFAQ)
	faqs.Delete("/:id", content.DeleteFAQ)

	// SEO settings
	seo := v1.Group("/seo")
	seo.Get("/", content.ListSEO)
	seo.Get("/:page", content.GetSEO)
	seo.Put("/", content.UpsertSEO)

	// Site blocks
	blocks := v1.Group("/blocks")
	blocks.Put("/", content.SaveBlock)
	blocks.Get("/:kind", content.ListBlocks)
	blocks.Get("/:kind/active", content.ActiveBlock)
	blocks.Delete("/:id", content.DeleteBlock)

	// Geo directory
	loc := v1.Group("/locations")
	loc.Get("/countries", locations.Countries)
	loc.Get("/countries/:country/states", locations.States)
	loc.Get("/countries/:country/states/:state/cities", locations.CitiesByState)
	loc.Get("/countries/:country/cities", locations.CitiesByCountry)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		case code >= 400:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Error("unhandled error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "UNHANDLED_ERROR",
		})
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}