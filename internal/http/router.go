// Package http assembles the service's router.
package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"scoreboard-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a chi router with permissive read-only
// CORS so browser frontends can consume the view directly.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/scoreboard", handler.Scoreboard)
	r.Post("/scoreboard/refresh", handler.Refresh)
	r.Post("/scoreboard/{category}/more", handler.ShowMore)

	return r
}
