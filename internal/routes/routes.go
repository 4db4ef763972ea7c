package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/research-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	researchHandler *handlers.ResearchHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Status endpoints, no auth and no rate limit.
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP.
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/token", authHandler.IssueToken)

	// Research CRUD (JWT required, token resolved to a user per request).
	researches := app.Group("/researches",
		limiter.New(limiter.Config{
			Max:               60,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}),
		middleware.Protected(cfg),
		middleware.CurrentUser(authService),
	)
	researches.Post("/", researchHandler.Create)
	researches.Get("/", researchHandler.List)
	researches.Get("/:id", researchHandler.Get)
	researches.Put("/:id", researchHandler.Update)
	researches.Delete("/:id", researchHandler.Delete)
}
