package services

import (
	"strings"
	"time"

	"scamguard/internal/config"
	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// DomainAgeAdapter normalizes resolved WHOIS-style records into an
// age-in-days view. It does no lookups of its own: the record comes from the
// external WHOIS collaborator, and a failed lookup arrives here as an empty
// record rather than an error.
type DomainAgeAdapter struct {
	thresholdDays int
	logger        *logger.Logger
}

// NewDomainAgeAdapter creates a new domain age adapter
func NewDomainAgeAdapter(cfg config.DetectionConfig, log *logger.Logger) *DomainAgeAdapter {
	return &DomainAgeAdapter{
		thresholdDays: cfg.NewDomainThresholdDays,
		logger:        log.WithComponent("domain-age"),
	}
}

// CheckAge converts a WHOIS record into a DomainAge. A record without a
// creation date yields the unknown sentinel {AgeDays: -1, IsNew: false},
// never an error. A creation date in the future (bogus registry data or
// clock skew) also maps to the sentinel, so -1 always means "age unknown"
// and never a computed negative age.
func (a *DomainAgeAdapter) CheckAge(record models.WhoisRecord) models.DomainAge {
	result := models.DomainAge{
		AgeDays: -1,
	}

	if record.CreationDate == nil {
		return result
	}

	iso := record.CreationDate.Format(time.RFC3339)
	result.RegistrationDate = &iso
	result.Registrar = record.Registrar

	days := int(time.Since(*record.CreationDate).Hours() / 24)
	if days < 0 {
		a.logger.Warn().Str("creation_date", iso).Msg("creation date in the future, treating age as unknown")
		return result
	}

	result.AgeDays = days
	result.IsNew = days < a.thresholdDays

	return result
}

// CleanDomain normalizes a raw domain string: scheme, leading www, path and
// port are stripped.
func CleanDomain(domain string) string {
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "www.")

	if idx := strings.Index(domain, "/"); idx != -1 {
		domain = domain[:idx]
	}
	if idx := strings.Index(domain, ":"); idx != -1 {
		domain = domain[:idx]
	}

	return strings.TrimSpace(domain)
}
