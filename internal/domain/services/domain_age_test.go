package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamguard/internal/config"
	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

func newDomainAgeAdapter(t *testing.T) *DomainAgeAdapter {
	t.Helper()
	cfg := config.Default()
	return NewDomainAgeAdapter(cfg.Detection, logger.NewDefault())
}

func TestDomainAgeAdapter_CheckAge(t *testing.T) {
	a := newDomainAgeAdapter(t)

	t.Run("missing creation date yields the unknown sentinel", func(t *testing.T) {
		result := a.CheckAge(models.WhoisRecord{})

		assert.Equal(t, -1, result.AgeDays)
		assert.False(t, result.IsNew)
		assert.Nil(t, result.RegistrationDate)
		assert.Nil(t, result.Registrar)
	})

	t.Run("recently registered domain is new", func(t *testing.T) {
		created := time.Now().AddDate(0, 0, -30)
		registrar := "Example Registrar Inc."

		result := a.CheckAge(models.WhoisRecord{
			CreationDate: &created,
			Registrar:    &registrar,
		})

		assert.Equal(t, 30, result.AgeDays)
		assert.True(t, result.IsNew)
		require.NotNil(t, result.RegistrationDate)
		assert.Equal(t, created.Format(time.RFC3339), *result.RegistrationDate)
		require.NotNil(t, result.Registrar)
		assert.Equal(t, registrar, *result.Registrar)
	})

	t.Run("ninety days is no longer new", func(t *testing.T) {
		created := time.Now().AddDate(0, 0, -90).Add(-time.Hour)

		result := a.CheckAge(models.WhoisRecord{CreationDate: &created})

		assert.Equal(t, 90, result.AgeDays)
		assert.False(t, result.IsNew)
	})

	t.Run("old domain", func(t *testing.T) {
		created := time.Now().AddDate(-5, 0, 0)

		result := a.CheckAge(models.WhoisRecord{CreationDate: &created})

		assert.Greater(t, result.AgeDays, 1000)
		assert.False(t, result.IsNew)
	})

	t.Run("future creation date maps to the unknown sentinel", func(t *testing.T) {
		created := time.Now().AddDate(0, 0, 10)

		result := a.CheckAge(models.WhoisRecord{CreationDate: &created})

		assert.Equal(t, -1, result.AgeDays)
		assert.False(t, result.IsNew)
		// The record's date is still reported; only the age is unknown.
		require.NotNil(t, result.RegistrationDate)
	})
}

func TestCleanDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare domain", input: "example.com", want: "example.com"},
		{name: "https scheme", input: "https://example.com", want: "example.com"},
		{name: "http scheme with www", input: "http://www.example.com", want: "example.com"},
		{name: "path stripped", input: "https://example.com/login/verify", want: "example.com"},
		{name: "port stripped", input: "example.com:8080", want: "example.com"},
		{name: "everything at once", input: "https://www.example.com:443/path?q=1", want: "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDomain(tt.input))
		})
	}
}
