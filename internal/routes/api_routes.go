package routes

import (
	"fleet-waitlist/backend/internal/api"
	"fleet-waitlist/backend/internal/config"
	"fleet-waitlist/backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the authenticated /api routes
func RegisterAPIRoutes(r chi.Router, cfg *config.Config, deps *api.Dependencies, handlers *api.Handlers) {
	limiter := middleware.NewRateLimiter(cfg.Limits.RPS, cfg.Limits.Burst)

	r.Route("/api", func(a chi.Router) {
		a.Use(limiter.Middleware)
		a.Use(middleware.AuthMiddleware([]byte(cfg.Auth.JWTSecret), deps.Services.Access)) // all routes must be authenticated
		a.Use(middleware.CaptureAccount)

		a.With(middleware.InFlightMiddleware(deps.Metrics, "profile")).
			Get("/profile/{character_id}", handlers.GetProfile())
	})
}
