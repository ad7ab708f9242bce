package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scamguard/internal/api"
	"scamguard/internal/api/handlers"
	"scamguard/internal/config"
	"scamguard/internal/domain/services"
	"scamguard/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting ScamGuard")

	// Initialize detection services
	patterns := services.NewPatternSet()
	extractor := services.NewURLFeatureExtractor(log)
	emailDetector := services.NewEmailDetector(patterns, cfg.Detection, log)
	urlDetector := services.NewURLDetector(extractor, cfg.Detection, log)
	webpageDetector := services.NewWebpageDetector(patterns, extractor, cfg.Detection, log)
	domainAge := services.NewDomainAgeAdapter(cfg.Detection, log)
	fusion := services.NewRiskFusionEngine(cfg.Scoring, log)

	analyzer := services.NewAnalyzer(emailDetector, urlDetector, webpageDetector, domainAge, fusion, log)
	log.Info().Msg("analysis services initialized")

	// Initialize handlers and router
	h := handlers.New(cfg, analyzer, log)
	router := api.NewRouter(cfg, h, log)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start HTTP server
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
}
