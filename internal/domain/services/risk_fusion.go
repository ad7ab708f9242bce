package services

import (
	"strings"

	"scamguard/internal/config"
	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// RiskFusionEngine combines named per-channel signals into one risk verdict.
// It is agnostic of which detector produced a signal value: all it knows is
// the fixed weight table and the normalization rule per signal name.
type RiskFusionEngine struct {
	config  config.ScoringConfig
	weights map[models.SignalName]float64
	logger  *logger.Logger
}

// NewRiskFusionEngine creates a new risk fusion engine
func NewRiskFusionEngine(cfg config.ScoringConfig, log *logger.Logger) *RiskFusionEngine {
	return &RiskFusionEngine{
		config: cfg,
		weights: map[models.SignalName]float64{
			models.SignalWebsiteTrust:    cfg.Weights.WebsiteTrust,
			models.SignalURLPhishing:     cfg.Weights.URLPhishing,
			models.SignalFinancialIntent: cfg.Weights.FinancialIntent,
			models.SignalOTPMisuse:       cfg.Weights.OTPMisuse,
			models.SignalUPIScam:         cfg.Weights.UPIScam,
		},
		logger: log.WithComponent("risk-fusion"),
	}
}

// Fuse computes the weighted risk verdict over the present signals.
//
// Website trust is inverted before weighting: a high trust value means low
// risk. The weighted average runs over present signals only, normalized by
// the sum of their weights, so an absent signal neither raises nor lowers the
// score; it only lowers confidence. An empty bundle yields the defined
// zero-confidence low verdict rather than an error.
func (e *RiskFusionEngine) Fuse(signals models.SignalBundle) models.RiskVerdict {
	totalScore := 0.0
	totalWeight := 0.0

	// Accumulate in the fixed signal order: float addition is not
	// associative, so map iteration order would make the score vary in its
	// last bits between calls with the same bundle.
	for _, name := range models.SignalNames {
		weight := e.weights[name]
		value, present := signals[name]
		if !present {
			continue
		}

		normalized := value
		if name == models.SignalWebsiteTrust {
			normalized = 1.0 - value
		}

		totalScore += normalized * weight
		totalWeight += weight
	}

	score := 0.0
	if totalWeight > 0 {
		score = totalScore / totalWeight
	}

	// Financial activity amplifies whatever risk is already present.
	if fi, ok := signals[models.SignalFinancialIntent]; ok && fi > e.config.FinancialIntentGate {
		score = clamp(score*e.config.FinancialAmplifier, 0, 1)
	}

	level := e.levelFor(score)

	return models.RiskVerdict{
		RiskScore:   score,
		RiskLevel:   level,
		Explanation: e.explain(level, signals),
		Confidence:  float64(countPresent(signals)) / float64(len(models.SignalNames)),
	}
}

// levelFor bands a score into a risk level. Band lower bounds are inclusive.
func (e *RiskFusionEngine) levelFor(score float64) models.RiskLevel {
	switch {
	case score >= e.config.HighRiskThreshold:
		return models.RiskLevelHigh
	case score >= e.config.MediumRiskThreshold:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

// explain generates the deterministic verdict text. For each level the first
// matching rule in priority order wins; the specific-signal callouts check
// the raw signal values, not the fused score.
func (e *RiskFusionEngine) explain(level models.RiskLevel, signals models.SignalBundle) string {
	bar := e.config.ExplanationSignalBar

	switch level {
	case models.RiskLevelHigh:
		var sb strings.Builder
		sb.WriteString("⚠️ HIGH RISK - DO NOT PROCEED. ")

		if signals[models.SignalUPIScam] > bar {
			sb.WriteString("This appears to be a UPI scam. ")
		} else if signals[models.SignalOTPMisuse] > bar {
			sb.WriteString("This site is asking for sensitive information but is not trustworthy. ")
		} else if signals[models.SignalURLPhishing] > bar {
			sb.WriteString("The URL shows strong phishing indicators. ")
		}

		sb.WriteString("We strongly recommend leaving this website.")
		return sb.String()

	case models.RiskLevelMedium:
		var sb strings.Builder
		sb.WriteString("⚠️ CAUTION ADVISED. ")

		if signals[models.SignalFinancialIntent] > e.config.FinancialIntentGate {
			sb.WriteString("This page involves financial activity. ")
		}

		sb.WriteString("Verify the website authenticity before proceeding.")
		return sb.String()

	default:
		return "This page appears safe based on our analysis."
	}
}

// countPresent counts defined signals present in the bundle. Keys outside the
// defined signal set do not count.
func countPresent(signals models.SignalBundle) int {
	count := 0
	for _, name := range models.SignalNames {
		if _, ok := signals[name]; ok {
			count++
		}
	}
	return count
}

// clamp clamps a value between lo and hi
func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
