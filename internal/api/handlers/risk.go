package handlers

import (
	"encoding/json"
	"net/http"

	"scamguard/internal/domain/models"
	"scamguard/internal/domain/services"
	"scamguard/pkg/logger"
)

// RiskHandler handles risk fusion and domain age requests
type RiskHandler struct {
	analyzer *services.Analyzer
	logger   *logger.Logger
}

// NewRiskHandler creates a new risk handler
func NewRiskHandler(analyzer *services.Analyzer, log *logger.Logger) *RiskHandler {
	return &RiskHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("risk-handler"),
	}
}

// Score handles POST /api/v1/risk-score
func (h *RiskHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req models.RiskScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	verdict := h.analyzer.RiskScore(req.Bundle())

	h.logger.Debug().
		Float64("risk_score", verdict.RiskScore).
		Str("risk_level", string(verdict.RiskLevel)).
		Msg("risk score computed")

	h.respondJSON(w, http.StatusOK, verdict)
}

// DomainAge handles POST /api/v1/domain-age
func (h *RiskHandler) DomainAge(w http.ResponseWriter, r *http.Request) {
	var req models.DomainAgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Domain == "" {
		h.respondError(w, http.StatusBadRequest, "domain is required")
		return
	}

	age := h.analyzer.DomainAge(models.WhoisRecord{
		CreationDate: req.CreationDate,
		Registrar:    req.Registrar,
	})

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"domain": services.CleanDomain(req.Domain),
		"age":    age,
	})
}

func (h *RiskHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *RiskHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
