package services

import (
	"context"
	"sync"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// Channel names used for stats bookkeeping.
const (
	ChannelEmail   = "email"
	ChannelURL     = "url"
	ChannelWebpage = "webpage"
)

// AnalyzerStats contains counters about analyses served. This is service
// glue, not scoring state: the detectors themselves stay pure and the
// counters never feed back into a verdict.
type AnalyzerStats struct {
	TotalAnalyzed    int64            `json:"total_analyzed"`
	PhishingDetected int64            `json:"phishing_detected"`
	ByChannel        map[string]int64 `json:"by_channel"`
	RiskScored       int64            `json:"risk_scored"`
}

// Analyzer fronts the per-channel detectors, the domain age adapter and the
// risk fusion engine behind one service facade for the API layer.
type Analyzer struct {
	email     *EmailDetector
	url       *URLDetector
	webpage   *WebpageDetector
	domainAge *DomainAgeAdapter
	fusion    *RiskFusionEngine
	logger    *logger.Logger

	stats   AnalyzerStats
	statsMu sync.RWMutex
}

// NewAnalyzer creates a new analyzer facade
func NewAnalyzer(email *EmailDetector, url *URLDetector, webpage *WebpageDetector, domainAge *DomainAgeAdapter, fusion *RiskFusionEngine, log *logger.Logger) *Analyzer {
	return &Analyzer{
		email:     email,
		url:       url,
		webpage:   webpage,
		domainAge: domainAge,
		fusion:    fusion,
		logger:    log.WithComponent("analyzer"),
		stats: AnalyzerStats{
			ByChannel: make(map[string]int64),
		},
	}
}

// AnalyzeEmail scores an email analysis request.
func (a *Analyzer) AnalyzeEmail(req *models.EmailAnalysisRequest) models.EmailAnalysis {
	result := a.email.Analyze(req.Subject, req.Body, req.SenderDomain, req.MLSentiment)
	a.recordAnalysis(ChannelEmail, result.IsPhishing)
	return result
}

// AnalyzeURL scores a single URL.
func (a *Analyzer) AnalyzeURL(req *models.URLAnalysisRequest) models.URLAnalysis {
	result := a.url.Analyze(req.URL, req.MLProbability)
	a.recordAnalysis(ChannelURL, result.IsPhishing)
	return result
}

// AnalyzeURLBatch scores a batch of URLs with bounded concurrency. Results
// are positional: results[i] corresponds to urls[i]. A cancelled context
// stops scheduling further URLs; in-flight scorings still finish and any
// unscheduled slots are left as zero values.
func (a *Analyzer) AnalyzeURLBatch(ctx context.Context, urls []string) []models.URLAnalysis {
	results := make([]models.URLAnalysis, len(urls))

	const maxConcurrency = 5
	sem := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup

	for i, u := range urls {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(idx int, rawURL string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := a.url.Analyze(rawURL, nil)
			a.recordAnalysis(ChannelURL, result.IsPhishing)
			results[idx] = result
		}(i, u)
	}

	wg.Wait()
	return results
}

// AnalyzeWebpage classifies a webpage analysis request.
func (a *Analyzer) AnalyzeWebpage(req *models.WebpageAnalysisRequest) models.WebpageAnalysis {
	result := a.webpage.Analyze(req.Text, req.URL, req.MLCategories)
	a.recordAnalysis(ChannelWebpage, result.IsPhishing)
	return result
}

// RiskScore fuses a signal bundle into a verdict.
func (a *Analyzer) RiskScore(signals models.SignalBundle) models.RiskVerdict {
	verdict := a.fusion.Fuse(signals)

	a.statsMu.Lock()
	a.stats.RiskScored++
	a.statsMu.Unlock()

	return verdict
}

// DomainAge normalizes a resolved WHOIS record.
func (a *Analyzer) DomainAge(record models.WhoisRecord) models.DomainAge {
	return a.domainAge.CheckAge(record)
}

// GetStats returns a copy of the current counters.
func (a *Analyzer) GetStats() AnalyzerStats {
	a.statsMu.RLock()
	defer a.statsMu.RUnlock()

	stats := AnalyzerStats{
		TotalAnalyzed:    a.stats.TotalAnalyzed,
		PhishingDetected: a.stats.PhishingDetected,
		RiskScored:       a.stats.RiskScored,
		ByChannel:        make(map[string]int64, len(a.stats.ByChannel)),
	}
	for k, v := range a.stats.ByChannel {
		stats.ByChannel[k] = v
	}
	return stats
}

func (a *Analyzer) recordAnalysis(channel string, isPhishing bool) {
	a.statsMu.Lock()
	defer a.statsMu.Unlock()

	a.stats.TotalAnalyzed++
	a.stats.ByChannel[channel]++
	if isPhishing {
		a.stats.PhishingDetected++
	}
}
