// Package api is the Bifrost REST API: a stateless HTTP facade over the
// base64 codec in pkg/b64.
//
// Every request is independent; the service holds no mutable state beyond
// its metrics, so any number of requests may run concurrently. Routes under
// /api/v1 require the X-API-Key header. The /metrics endpoint is left open
// for Prometheus scraping.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting Bifrost codec server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)

	return http.ListenAndServe(addr, server.Routes())
}

// Routes assembles the router: middleware, codec endpoints and metrics
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", s.metrics.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		// Health check
		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		// Codec operations
		r.Get("/presets", s.metrics.InstrumentHandler("GET", "/api/v1/presets", s.handlePresets))
		r.Post("/encode", s.metrics.InstrumentHandler("POST", "/api/v1/encode", s.handleEncode))
		r.Post("/decode", s.metrics.InstrumentHandler("POST", "/api/v1/decode", s.handleDecode))
	})

	return r
}
