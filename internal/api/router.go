package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"scamguard/internal/api/handlers"
	apimiddleware "scamguard/internal/api/middleware"
	"scamguard/internal/config"
	"scamguard/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   *config.Config
	handlers *handlers.Handlers
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg *config.Config, h *handlers.Handlers, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Health checks
	router.Get("/health", r.handlers.Health.Check)
	router.Get("/ready", r.handlers.Health.Ready)

	// API v1 routes
	router.Route("/api/v1", func(api chi.Router) {
		// Per-channel analysis
		api.Route("/analyze", func(analyze chi.Router) {
			analyze.Post("/email", r.handlers.Analysis.AnalyzeEmail)
			analyze.Post("/url", r.handlers.Analysis.AnalyzeURL)
			analyze.Post("/url/batch", r.handlers.Analysis.BatchAnalyzeURLs)
			analyze.Post("/webpage", r.handlers.Analysis.AnalyzeWebpage)
		})

		// Risk fusion and domain age
		api.Post("/risk-score", r.handlers.Risk.Score)
		api.Post("/domain-age", r.handlers.Risk.DomainAge)

		// Service counters
		api.Get("/stats", r.handlers.Analysis.GetStats)
	})

	return router
}
