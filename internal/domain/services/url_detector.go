package services

import (
	"fmt"

	"scamguard/internal/config"
	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// URLDetector scores URLs for phishing likelihood from their lexical
// features. The per-term contributions are additive; an optional external
// classifier probability is blended in when supplied.
type URLDetector struct {
	extractor *URLFeatureExtractor
	config    config.DetectionConfig
	logger    *logger.Logger
}

// NewURLDetector creates a new URL detector
func NewURLDetector(extractor *URLFeatureExtractor, cfg config.DetectionConfig, log *logger.Logger) *URLDetector {
	return &URLDetector{
		extractor: extractor,
		config:    cfg,
		logger:    log.WithComponent("url-detector"),
	}
}

// Analyze extracts features from the URL and scores them. mlProbability is an
// optional phishing probability from an external model; nil means no model
// opinion is available and scoring is rule-based only.
//
// The phishing threshold here is 0.6, stricter than the email and webpage
// channels: URL evidence alone is weaker than content evidence, so a URL has
// to look worse before it is called phishing outright.
func (d *URLDetector) Analyze(rawURL string, mlProbability *float64) models.URLAnalysis {
	features := d.extractor.Extract(rawURL)

	result := models.URLAnalysis{
		Reasons:  []string{},
		Features: features,
	}

	score := 0.0

	if features.Length > 75 {
		score += 0.2
		result.Reasons = append(result.Reasons, "Unusually long URL")
	}
	if features.HasIP {
		score += 0.3
		result.Reasons = append(result.Reasons, "URL contains IP address")
	}
	if features.NumSubdomains > 3 {
		score += 0.25
		result.Reasons = append(result.Reasons, fmt.Sprintf("Too many subdomains (%d)", features.NumSubdomains))
	}
	if features.NumAt > 0 {
		score += 0.25
		result.Reasons = append(result.Reasons, "URL contains @ symbol (redirect)")
	}
	if features.NumHyphens > 3 {
		score += 0.15
		result.Reasons = append(result.Reasons, "Excessive hyphens in URL")
	}
	if features.SuspiciousTLD {
		score += 0.2
		result.Reasons = append(result.Reasons, fmt.Sprintf("Suspicious domain extension: .%s", features.TLD))
	}
	if features.HasPunycode {
		score += 0.25
		result.Reasons = append(result.Reasons, "Punycode detected (possible homograph attack)")
	}
	if features.DomainEntropy > 4.5 {
		score += 0.2
		result.Reasons = append(result.Reasons, "Domain appears randomly generated")
	}

	// Blend with the external model opinion when one was supplied.
	if mlProbability != nil {
		ratio := d.config.URLRuleBlendRatio
		score = score*ratio + *mlProbability*(1-ratio)
	}

	result.PhishingScore = clamp(score, 0, 1)
	result.IsPhishing = result.PhishingScore > d.config.URLPhishingThreshold

	return result
}
