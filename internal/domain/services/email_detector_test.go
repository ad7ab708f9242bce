package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamguard/internal/config"
	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

func newEmailDetector(t *testing.T) *EmailDetector {
	t.Helper()
	cfg := config.Default()
	return NewEmailDetector(NewPatternSet(), cfg.Detection, logger.NewDefault())
}

func TestEmailDetector_Analyze(t *testing.T) {
	d := newEmailDetector(t)

	tests := []struct {
		name         string
		subject      string
		body         string
		senderDomain string
		wantPhishing bool
	}{
		{
			name:         "urgency plus fear crosses the threshold",
			subject:      "URGENT: your account will be suspended",
			body:         "Unusual activity detected. Verify immediately or lose access.",
			wantPhishing: true,
		},
		{
			name:         "plain business email",
			subject:      "Meeting notes",
			body:         "Attached are the notes from Tuesday.",
			wantPhishing: false,
		},
		{
			name:         "single tactic stays under the threshold",
			subject:      "Limited time offer",
			body:         "Our sale ends this week.",
			wantPhishing: false,
		},
		{
			name:         "brand mismatch plus urgency",
			subject:      "SBI alert: action required",
			body:         "Your SBI netbanking needs verification.",
			senderDomain: "sbi-alerts.xyz",
			wantPhishing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Analyze(tt.subject, tt.body, tt.senderDomain, nil)

			assert.Equal(t, tt.wantPhishing, result.IsPhishing)
			assert.GreaterOrEqual(t, result.PhishingScore, 0.0)
			assert.LessOrEqual(t, result.PhishingScore, 1.0)
			if tt.wantPhishing {
				assert.NotEmpty(t, result.Reasons)
			}
		})
	}
}

func TestEmailDetector_SenderDomainMismatch(t *testing.T) {
	d := newEmailDetector(t)

	result := d.Analyze("Your HDFC account", "Please verify your HDFC account details", "hdfc-secure.com", nil)

	require.NotEmpty(t, result.Reasons)
	assert.Contains(t, result.Reasons, "Sender domain mismatch: claims to be HDFC but from hdfc-secure.com (expected hdfcbank.com)")
}

func TestEmailDetector_LegitimateSenderDomainIsNotFlagged(t *testing.T) {
	d := newEmailDetector(t)

	result := d.Analyze("Your HDFC statement", "Your monthly statement is ready.", "mail.hdfcbank.com", nil)

	for _, reason := range result.Reasons {
		assert.NotContains(t, reason, "Sender domain mismatch")
	}
}

func TestEmailDetector_SentimentOpinion(t *testing.T) {
	d := newEmailDetector(t)

	tests := []struct {
		name       string
		sentiment  *models.SentimentOpinion
		wantReason bool
	}{
		{
			name:       "strong negative sentiment contributes",
			sentiment:  &models.SentimentOpinion{Label: models.SentimentNegative, Score: 0.9},
			wantReason: true,
		},
		{
			name:       "weak negative sentiment is ignored",
			sentiment:  &models.SentimentOpinion{Label: models.SentimentNegative, Score: 0.5},
			wantReason: false,
		},
		{
			name:       "positive sentiment is ignored",
			sentiment:  &models.SentimentOpinion{Label: "POSITIVE", Score: 0.99},
			wantReason: false,
		},
		{
			name:       "nil sentiment is ignored",
			sentiment:  nil,
			wantReason: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Analyze("Hello", "Just checking in.", "", tt.sentiment)

			if tt.wantReason {
				assert.Contains(t, result.Reasons, "ML model detected suspicious content")
				assert.InDelta(t, 0.20, result.PhishingScore, 1e-9)
			} else {
				assert.NotContains(t, result.Reasons, "ML model detected suspicious content")
			}
		})
	}
}

func TestEmailDetector_FinancialKeywordReason(t *testing.T) {
	d := newEmailDetector(t)

	// One financial keyword contributes score but no reason.
	one := d.Analyze("Invoice", "Please settle the payment.", "", nil)
	assert.InDelta(t, 0.15, one.PhishingScore, 1e-9)
	assert.NotContains(t, one.Reasons, "Multiple financial keywords detected")

	// Three or more distinct keywords surface the reason.
	many := d.Analyze("Payment", "Your bank account payment needs the OTP.", "", nil)
	assert.Contains(t, many.Reasons, "Multiple financial keywords detected")
}

func TestEmailDetector_ScoreIsClamped(t *testing.T) {
	d := newEmailDetector(t)

	// Every term fires at once; the sum exceeds 1 before clamping.
	result := d.Analyze(
		"URGENT: SBI account blocked",
		"Unusual activity on your SBI netbanking account. You won a reward, verify your account with the OTP and CVV immediately.",
		"evil.example",
		&models.SentimentOpinion{Label: models.SentimentNegative, Score: 0.95},
	)

	assert.Equal(t, 1.0, result.PhishingScore)
	assert.True(t, result.IsPhishing)
}
