package server

import (
	"net/http"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"predator-web/internal/bootstrap"
	"predator-web/internal/config"
	"predator-web/internal/pkg/logger"
	"predator-web/internal/pkg/serverutils"
	"predator-web/internal/render"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
	logger    logger.ILogger
}

func New(cfg *config.Config, container *bootstrap.Container, log logger.ILogger) *Server {
	app := fiber.New(fiber.Config{
		// Params and form values end up in stored session state.
		Immutable:             true,
		BodyLimit:             1 * 1024 * 1024, // 1MB
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: allowCredentials(cfg.App.CorsAllowedOrigins),
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Static
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(render.Static()),
		MaxAge: 3600,
	}))

	app.Use(serverutils.SessionMiddleware(container.Session))

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
		logger:    log,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.logger.Info("SERVER", "Server is running", map[string]interface{}{
		"url": "http://localhost:" + s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// allowCredentials is false for a wildcard origin, which Fiber's cors
// middleware refuses to combine with credentials.
func allowCredentials(origins string) bool {
	for _, o := range strings.Split(origins, ",") {
		if strings.TrimSpace(o) == "*" {
			return false
		}
	}
	return origins != ""
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.CatalogController.RegisterRoutes(app)
	c.SiteController.RegisterRoutes(app)
	c.CheckoutController.RegisterRoutes(app)
	c.ConsultantController.RegisterRoutes(app)
}
