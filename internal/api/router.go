package api

import (
	"time"

	"investr/docs"
	"investr/internal/api/handlers"
	"investr/pkg/auth"
	"investr/pkg/config"
	"investr/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// SetupRouter wires the HTTP API. jwtManager may be nil, in which case
// /api/v1 is left open.
func SetupRouter(
	calcHandler *handlers.CalculatorHandler,
	sessionHandler *handlers.SessionHandler,
	jwtManager *auth.JWTManager,
	cfg *config.Config,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	var protected []fiber.Handler
	if cfg.RateLimit.Max > 0 {
		protected = append(protected, limiter.New(limiter.Config{
			Max:        cfg.RateLimit.Max,
			Expiration: cfg.RateLimit.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests",
				})
			},
		}))
	}
	if jwtManager != nil {
		protected = append(protected, middleware.AuthMiddleware(jwtManager, appLogger))
	} else {
		appLogger.Warn("JWT validation disabled, /api/v1 is open")
	}

	v1 := app.Group("/api/v1", protected...)

	// Calculators
	v1.Get("/rates", calcHandler.GetRateTable)
	v1.Post("/rates/resolve", calcHandler.ResolveRate)
	v1.Post("/projections", calcHandler.Project)
	v1.Post("/explanations", calcHandler.Explain)
	v1.Post("/simulations", calcHandler.Simulate)
	v1.Post("/recommendations", calcHandler.Recommend)

	// Workspaces
	sessions := v1.Group("/sessions")
	sessions.Post("", sessionHandler.CreateSession)
	sessions.Get("/:id", sessionHandler.GetSession)
	sessions.Delete("/:id", sessionHandler.DeleteSession)
	sessions.Patch("/:id/form", sessionHandler.EditForm)
	sessions.Post("/:id/simulation", sessionHandler.SubmitSimulation)
	sessions.Post("/:id/recommendation", sessionHandler.SubmitRecommendation)

	return app
}
