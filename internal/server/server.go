package server

import (
	"log"

	"ducochat-be/internal/bootstrap"
	"ducochat-be/internal/config"
	"ducochat-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

// registerRoutes hands the root router to each controller. Controllers own
// their full paths because the webhook and ops routes live outside /api.
func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.OpsController.RegisterRoutes(app)
	c.WebhookController.RegisterRoutes(app)

	c.AuthController.RegisterRoutes(app)
	c.CategoryController.RegisterRoutes(app)
	c.QuestionController.RegisterRoutes(app)
	c.ModalityController.RegisterRoutes(app)
	c.EndUserController.RegisterRoutes(app)
	c.RatingController.RegisterRoutes(app)
	c.TutorialController.RegisterRoutes(app)
}
