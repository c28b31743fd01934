package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joiful-app/joilogs-backend/internal/config"
	"github.com/joiful-app/joilogs-backend/internal/handlers"
	"github.com/joiful-app/joilogs-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	logHandler *handlers.LogHandler,
	paymentHandler *handlers.PaymentHandler,
	supportHandler *handlers.SupportHandler,
	healthHandler *handlers.HealthHandler,
	legalHandler *handlers.LegalHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Legal pages
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth operations
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Everything below requires a valid access token.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/me", profileHandler.Me)

	protected.Get("/logs", logHandler.List)
	protected.Get("/logs/open", logHandler.Open)
	protected.Post("/logs", logHandler.Save)
	protected.Delete("/logs/:date", logHandler.Delete)

	protected.Post("/premium/checkout", paymentHandler.Checkout)
	protected.Get("/support/widget", supportHandler.WidgetConfig)
}
