package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"scamguard/internal/config"
	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

func newWebpageDetector(t *testing.T) *WebpageDetector {
	t.Helper()
	cfg := config.Default()
	log := logger.NewDefault()
	return NewWebpageDetector(NewPatternSet(), NewURLFeatureExtractor(log), cfg.Detection, log)
}

func TestWebpageDetector_Analyze(t *testing.T) {
	d := newWebpageDetector(t)

	tests := []struct {
		name          string
		text          string
		wantFinancial bool
		wantCategory  string
		wantPhishing  bool
	}{
		{
			name:          "informational page",
			text:          "Welcome to our recipe blog. Today we bake bread.",
			wantFinancial: false,
			wantCategory:  "unknown",
			wantPhishing:  false,
		},
		{
			name:          "financial page without phishing phrasing",
			text:          "Log in to netbanking with your password to view your account balance.",
			wantFinancial: true,
			wantCategory:  "financial",
			wantPhishing:  false,
		},
		{
			name:          "financial vocabulary with phishing phrasing",
			text:          "Suspended account! Verify your account now: enter your password, card number and OTP to restore your bank account.",
			wantFinancial: true,
			wantCategory:  "financial",
			wantPhishing:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Analyze(tt.text, "https://example.com/", nil)

			assert.Equal(t, tt.wantFinancial, result.IsFinancial)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantPhishing, result.IsPhishing)
			assert.GreaterOrEqual(t, result.PhishingScore, 0.0)
			assert.LessOrEqual(t, result.PhishingScore, 1.0)
		})
	}
}

func TestWebpageDetector_IndicatorScoreIsCapped(t *testing.T) {
	d := newWebpageDetector(t)

	// Four distinct indicator phrases, no financial vocabulary beyond them.
	text := "verify your account / confirm your identity / urgent action / click here immediately"
	result := d.Analyze(text, "", nil)

	// min(4*0.15, 0.4) plus the financial+indicator combination bonus: the
	// indicator phrases themselves contain the word "account".
	assert.InDelta(t, 0.7, result.PhishingScore, 1e-9)
	assert.True(t, result.IsPhishing)
}

func TestWebpageDetector_MLBlend(t *testing.T) {
	d := newWebpageDetector(t)

	categories := map[string]float64{
		models.WebpageCategoryPhishing: 0.9,
		models.WebpageCategoryBanking:  0.1,
	}

	result := d.Analyze("Welcome to our recipe blog.", "", categories)

	// rules 0.0, blended 0.6*0.0 + 0.4*0.9
	assert.InDelta(t, 0.36, result.PhishingScore, 1e-9)
	assert.Equal(t, 0.9, result.Confidence)
	assert.False(t, result.IsPhishing)
}

func TestWebpageDetector_OnlyLeadingTextIsInspected(t *testing.T) {
	d := newWebpageDetector(t)

	// The scam vocabulary sits past the inspected sample.
	text := strings.Repeat("a", 2000) + " verify your account otp bank password"
	result := d.Analyze(text, "", nil)

	assert.Empty(t, result.FinancialKeywords)
	assert.Empty(t, result.Indicators)
	assert.Equal(t, 0.0, result.PhishingScore)
}

func TestWebpageDetector_SampleIsMeasuredInCharacters(t *testing.T) {
	d := newWebpageDetector(t)

	// 400 three-byte characters put the vocabulary past 1000 bytes but well
	// inside 1000 characters; it must still be inspected.
	text := strings.Repeat("₹", 400) + " verify your account otp bank password pin"
	result := d.Analyze(text, "", nil)

	assert.NotEmpty(t, result.FinancialKeywords)
	assert.Contains(t, result.Indicators, "verify your account")
}
