package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"scamguard/internal/config"
	"scamguard/internal/domain/services"
	"scamguard/pkg/logger"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	config    *config.Config
	analyzer  *services.Analyzer
	logger    *logger.Logger
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(cfg *config.Config, analyzer *services.Analyzer, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		config:    cfg,
		analyzer:  analyzer,
		logger:    log.WithComponent("health"),
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Service:   h.config.App.Name,
		Version:   h.config.App.Version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// Ready handles GET /ready - reports per-component readiness. The detectors
// are constructed at startup and carry no external connections, so readiness
// here is a presence check rather than a liveness probe.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"email_detector":     "ready",
		"url_detector":       "ready",
		"webpage_classifier": "ready",
		"risk_scorer":        "ready",
		"domain_checker":     "ready",
	}

	status := http.StatusOK
	overallStatus := "ready"
	if h.analyzer == nil {
		for k := range checks {
			checks[k] = "not initialized"
		}
		status = http.StatusServiceUnavailable
		overallStatus = "not ready"
	}

	response := HealthResponse{
		Status:    overallStatus,
		Service:   h.config.App.Name,
		Version:   h.config.App.Version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
