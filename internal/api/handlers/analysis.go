package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"scamguard/internal/domain/models"
	"scamguard/internal/domain/services"
	"scamguard/pkg/logger"
)

// AnalysisHandler handles the per-channel analysis API requests
type AnalysisHandler struct {
	analyzer *services.Analyzer
	logger   *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer *services.Analyzer, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("analysis-handler"),
	}
}

// analysisEnvelope wraps a channel result with a per-analysis ID.
type analysisEnvelope struct {
	AnalysisID string      `json:"analysis_id"`
	Result     interface{} `json:"result"`
}

// AnalyzeEmail handles POST /api/v1/analyze/email
func (h *AnalysisHandler) AnalyzeEmail(w http.ResponseWriter, r *http.Request) {
	var req models.EmailAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Subject == "" && req.Body == "" {
		h.respondError(w, http.StatusBadRequest, "subject or body is required")
		return
	}

	result := h.analyzer.AnalyzeEmail(&req)

	h.logger.Debug().
		Bool("is_phishing", result.IsPhishing).
		Float64("score", result.PhishingScore).
		Msg("email analyzed")

	h.respondJSON(w, http.StatusOK, analysisEnvelope{
		AnalysisID: uuid.New().String(),
		Result:     result,
	})
}

// AnalyzeURL handles POST /api/v1/analyze/url
func (h *AnalysisHandler) AnalyzeURL(w http.ResponseWriter, r *http.Request) {
	var req models.URLAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" {
		h.respondError(w, http.StatusBadRequest, "url is required")
		return
	}

	result := h.analyzer.AnalyzeURL(&req)

	h.respondJSON(w, http.StatusOK, analysisEnvelope{
		AnalysisID: uuid.New().String(),
		Result:     result,
	})
}

// BatchAnalyzeURLs handles POST /api/v1/analyze/url/batch
func (h *AnalysisHandler) BatchAnalyzeURLs(w http.ResponseWriter, r *http.Request) {
	var req models.URLBatchAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.URLs) == 0 {
		h.respondError(w, http.StatusBadRequest, "urls array is required")
		return
	}

	if len(req.URLs) > 100 {
		h.respondError(w, http.StatusBadRequest, "maximum 100 URLs per batch")
		return
	}

	results := h.analyzer.AnalyzeURLBatch(r.Context(), req.URLs)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"analysis_id": uuid.New().String(),
		"results":     results,
		"count":       len(results),
	})
}

// AnalyzeWebpage handles POST /api/v1/analyze/webpage
func (h *AnalysisHandler) AnalyzeWebpage(w http.ResponseWriter, r *http.Request) {
	var req models.WebpageAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" {
		h.respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	result := h.analyzer.AnalyzeWebpage(&req)

	h.respondJSON(w, http.StatusOK, analysisEnvelope{
		AnalysisID: uuid.New().String(),
		Result:     result,
	})
}

// GetStats handles GET /api/v1/stats
func (h *AnalysisHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.analyzer.GetStats())
}

func (h *AnalysisHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *AnalysisHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
