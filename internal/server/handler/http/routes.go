package http

import (
	"net/http"

	"github.com/atinyakov/AuthKeeper/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// AuthKeeper API. It applies request logging, mounts the registration
// and login endpoints under /api, and exposes a liveness check.
//
// Routes:
//
//	POST /api/register → authHandler.Register
//	POST /api/login    → authHandler.Login
//	GET  /health       → Health
//
// The /api subtree only accepts requests with Content-Type
// application/json.
func NewRouter(authHandler *AuthHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/health", Health)

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Only allow requests with Content-Type: application/json
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	return r
}
