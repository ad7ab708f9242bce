package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scamguard/internal/domain/models"
)

func TestPatternSet_Find(t *testing.T) {
	ps := NewPatternSet()

	tests := []struct {
		name     string
		text     string
		category models.PatternCategory
		want     []string
	}{
		{
			name:     "urgency phrase is matched case-insensitively",
			text:     "URGENT: verify your account NOW",
			category: models.CategoryUrgency,
			want:     []string{"urgent", "verify your account"},
		},
		{
			name:     "fear language",
			text:     "Your card has been blocked due to suspicious activity",
			category: models.CategoryFear,
			want:     []string{"blocked", "suspicious activity"},
		},
		{
			name:     "reward language",
			text:     "Congratulations! You are a winner, claim your prize",
			category: models.CategoryReward,
			want:     []string{"winner", "prize", "claim your", "congratulations"},
		},
		{
			name:     "financial keywords as substrings",
			text:     "Complete the UPI payment and share the OTP",
			category: models.CategoryFinancial,
			want:     []string{"upi", "payment", "otp"},
		},
		{
			name:     "plain text matches nothing",
			text:     "See you at lunch tomorrow",
			category: models.CategoryUrgency,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ps.Find(tt.text)[tt.category]
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatternSet_Find_DeduplicatesWithinCategory(t *testing.T) {
	ps := NewPatternSet()

	// "urgent" appears twice; it must be reported once.
	matches := ps.Find("urgent urgent urgent")
	assert.Equal(t, []string{"urgent"}, matches[models.CategoryUrgency])
}

func TestPatternSet_Find_AbsentCategories(t *testing.T) {
	ps := NewPatternSet()

	matches := ps.Find("the quarterly report is attached")
	assert.NotContains(t, matches, models.CategoryUrgency)
	assert.NotContains(t, matches, models.CategoryFear)
	assert.NotContains(t, matches, models.CategoryReward)
}

func TestPatternSet_FindCategory(t *testing.T) {
	ps := NewPatternSet()

	got := ps.FindCategory("please verify your account and enter your password", models.CategoryPhishingIndicator)
	assert.Contains(t, got, "verify your account")
	assert.Contains(t, got, "enter your password")
}

func TestMatchKeywords_Order(t *testing.T) {
	matched := matchKeywords("pay via upi after logging into your bank account", []string{"bank", "upi", "wire"})
	assert.Equal(t, []string{"bank", "upi"}, matched)
}
