package handlers

import (
	"scamguard/internal/config"
	"scamguard/internal/domain/services"
	"scamguard/pkg/logger"
)

// Handlers aggregates all HTTP handlers
type Handlers struct {
	Health   *HealthHandler
	Analysis *AnalysisHandler
	Risk     *RiskHandler
}

// New creates all handlers with their dependencies
func New(cfg *config.Config, analyzer *services.Analyzer, log *logger.Logger) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(cfg, analyzer, log),
		Analysis: NewAnalysisHandler(analyzer, log),
		Risk:     NewRiskHandler(analyzer, log),
	}
}
