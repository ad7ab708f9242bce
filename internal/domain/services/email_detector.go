package services

import (
	"fmt"
	"strings"

	"scamguard/internal/config"
	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// knownBrandDomains maps a brand keyword, as it appears in email text, to the
// sender domains that brand legitimately mails from. An email that talks
// about a brand but arrives from elsewhere is the strongest single phishing
// signal this detector has.
var knownBrandDomains = map[string][]string{
	"sbi":     {"sbi.co.in"},
	"hdfc":    {"hdfcbank.com"},
	"icici":   {"icicibank.com"},
	"axis":    {"axisbank.com"},
	"paytm":   {"paytm.com"},
	"phonepe": {"phonepe.com"},
}

// domainMismatch describes a claimed brand whose known domains don't cover
// the actual sender domain.
type domainMismatch struct {
	Claimed  string
	Actual   string
	Expected string
}

// EmailDetector scores emails for phishing likelihood from pattern matches,
// sender/domain consistency and an optional external classifier opinion.
// Each contributing term is capped independently; the final score is clamped
// to [0,1].
type EmailDetector struct {
	patterns *PatternSet
	config   config.DetectionConfig
	logger   *logger.Logger
}

// NewEmailDetector creates a new email detector
func NewEmailDetector(patterns *PatternSet, cfg config.DetectionConfig, log *logger.Logger) *EmailDetector {
	return &EmailDetector{
		patterns: patterns,
		config:   cfg,
		logger:   log.WithComponent("email-detector"),
	}
}

// Analyze scores an email. senderDomain and sentiment are optional: an empty
// sender domain skips the mismatch check, a nil sentiment skips the ML term.
func (d *EmailDetector) Analyze(subject, body, senderDomain string, sentiment *models.SentimentOpinion) models.EmailAnalysis {
	text := strings.ToLower(subject + " " + body)

	matches := d.patterns.Find(text)

	result := models.EmailAnalysis{
		Reasons:        []string{},
		PatternMatches: matches,
	}

	score := 0.0

	if urgency := matches[models.CategoryUrgency]; len(urgency) > 0 {
		score += 0.30
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Urgency tactics detected: %s", strings.Join(headOf(urgency, 2), ", ")))
	}
	if fear := matches[models.CategoryFear]; len(fear) > 0 {
		score += 0.30
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Fear/threat language: %s", strings.Join(headOf(fear, 2), ", ")))
	}
	if reward := matches[models.CategoryReward]; len(reward) > 0 {
		score += 0.25
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Reward/prize language: %s", strings.Join(headOf(reward, 2), ", ")))
	}

	if financial := matches[models.CategoryFinancial]; len(financial) > 0 {
		score += 0.15
		// The reason is only worth surfacing once several distinct keywords
		// co-occur; one keyword alone is too common in legitimate mail.
		if len(financial) >= 3 {
			result.Reasons = append(result.Reasons, "Multiple financial keywords detected")
		}
	}

	if senderDomain != "" {
		if mm := checkSenderDomainMismatch(text, senderDomain); mm != nil {
			score += 0.40
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Sender domain mismatch: claims to be %s but from %s (expected %s)",
					mm.Claimed, mm.Actual, mm.Expected))
		}
	}

	if sentiment != nil && sentiment.Label == models.SentimentNegative && sentiment.Score > 0.7 {
		score += 0.20
		result.Reasons = append(result.Reasons, "ML model detected suspicious content")
	}

	result.PhishingScore = clamp(score, 0, 1)
	result.IsPhishing = result.PhishingScore > d.config.EmailPhishingThreshold

	return result
}

// checkSenderDomainMismatch returns the first brand the text claims to be
// from whose known domain set does not cover the sender domain, or nil.
// Brand keywords are checked in a fixed order so the reported mismatch is
// deterministic.
func checkSenderDomainMismatch(text, senderDomain string) *domainMismatch {
	brandOrder := []string{"sbi", "hdfc", "icici", "axis", "paytm", "phonepe"}

	for _, brand := range brandOrder {
		if !strings.Contains(text, brand) {
			continue
		}
		validDomains := knownBrandDomains[brand]
		matched := false
		for _, valid := range validDomains {
			if strings.Contains(senderDomain, valid) {
				matched = true
				break
			}
		}
		if !matched {
			return &domainMismatch{
				Claimed:  strings.ToUpper(brand),
				Actual:   senderDomain,
				Expected: validDomains[0],
			}
		}
	}

	return nil
}

// headOf returns at most n leading elements of items.
func headOf(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
