package services

import (
	"strings"

	"scamguard/internal/config"
	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// webpageFinancialKeywords is the keyword list used to decide whether a page
// is a financial page. It is wider than the email financial list: pages show
// form-field vocabulary (login, password, pin) that email bodies rarely do.
var webpageFinancialKeywords = []string{
	"bank", "banking", "login", "password", "otp", "cvv", "pin",
	"upi", "payment", "transaction", "account", "netbanking",
	"debit", "credit", "card number", "transfer", "balance",
}

// webpageSampleLen bounds how much page text is inspected, in characters.
const webpageSampleLen = 1000

// WebpageDetector classifies webpage content as financial and/or phishing.
// It composes the shared pattern set for phishing-indicator phrases, the URL
// feature extractor for the page's source URL, and an optional categorical
// opinion from an external zero-shot classifier.
type WebpageDetector struct {
	patterns  *PatternSet
	extractor *URLFeatureExtractor
	config    config.DetectionConfig
	logger    *logger.Logger
}

// NewWebpageDetector creates a new webpage detector
func NewWebpageDetector(patterns *PatternSet, extractor *URLFeatureExtractor, cfg config.DetectionConfig, log *logger.Logger) *WebpageDetector {
	return &WebpageDetector{
		patterns:  patterns,
		extractor: extractor,
		config:    cfg,
		logger:    log.WithComponent("webpage-detector"),
	}
}

// Analyze classifies page text fetched from sourceURL. mlCategories is an
// optional score-per-label distribution from the external classifier; when it
// carries a score for the phishing category, that score is blended into the
// rule-based result and reported as the confidence.
func (d *WebpageDetector) Analyze(text, sourceURL string, mlCategories map[string]float64) models.WebpageAnalysis {
	sample := strings.ToLower(truncate(text, webpageSampleLen))

	financial := matchKeywords(sample, webpageFinancialKeywords)
	indicators := d.patterns.FindCategory(sample, models.CategoryPhishingIndicator)

	result := models.WebpageAnalysis{
		Category:          "unknown",
		FinancialKeywords: financial,
		Indicators:        indicators,
		SourceURL:         d.extractor.Extract(sourceURL),
	}

	if len(financial) >= 3 {
		result.IsFinancial = true
		result.Category = "financial"
	}

	score := 0.0

	if len(indicators) > 0 {
		score += min(float64(len(indicators))*0.15, 0.4)
	}
	if len(financial) > 0 && len(indicators) > 0 {
		// Financial vocabulary plus phishing phrasing on the same page is
		// the high-risk combination.
		score += 0.3
	}

	if mlScore, ok := mlCategories[models.WebpageCategoryPhishing]; ok {
		ratio := d.config.WebpageRuleBlendRatio
		score = score*ratio + mlScore*(1-ratio)
		result.Confidence = mlScore
	}

	result.PhishingScore = clamp(score, 0, 1)
	result.IsPhishing = result.PhishingScore > d.config.WebpagePhishingThreshold

	return result
}

// truncate returns at most n leading characters of s, never splitting a
// multibyte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
