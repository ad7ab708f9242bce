package models

import "time"

// SignalName identifies one named risk dimension fed into risk fusion.
type SignalName string

const (
	SignalWebsiteTrust    SignalName = "websiteTrust"
	SignalURLPhishing     SignalName = "urlPhishing"
	SignalFinancialIntent SignalName = "financialIntent"
	SignalOTPMisuse       SignalName = "otpMisuse"
	SignalUPIScam         SignalName = "upiScam"
)

// SignalNames is the fixed set of defined signals, in weight-table order.
// Confidence reporting counts present signals against this set.
var SignalNames = []SignalName{
	SignalWebsiteTrust,
	SignalURLPhishing,
	SignalFinancialIntent,
	SignalOTPMisuse,
	SignalUPIScam,
}

// SignalBundle maps signal names to values in [0,1]. A missing key means the
// signal is unknown, which is not the same as zero: absent signals carry no
// weight in fusion and reduce confidence instead.
type SignalBundle map[SignalName]float64

// RiskLevel is the banded verdict level.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RiskVerdict is the fused output of the risk engine.
type RiskVerdict struct {
	RiskScore   float64   `json:"risk_score"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Explanation string    `json:"explanation"`
	Confidence  float64   `json:"confidence"`
}

// PatternCategory tags a pattern rule with the manipulation tactic it detects.
type PatternCategory string

const (
	CategoryUrgency           PatternCategory = "urgency"
	CategoryFear              PatternCategory = "fear"
	CategoryReward            PatternCategory = "reward"
	CategoryPhishingIndicator PatternCategory = "phishing_indicator"
	CategoryFinancial         PatternCategory = "financial"
)

// MatchResult maps a category to the distinct matched literals, in
// first-occurrence order. A category with no matches is simply absent.
type MatchResult map[PatternCategory][]string

// URLFeatures is the fixed lexical feature record extracted from a URL.
// Extraction is total: a URL that cannot be parsed yields the zero value of
// this struct rather than an error.
type URLFeatures struct {
	Length            int     `json:"length"`
	DomainLength      int     `json:"domain_length"`
	PathLength        int     `json:"path_length"`
	NumDots           int     `json:"num_dots"`
	NumHyphens        int     `json:"num_hyphens"`
	NumUnderscores    int     `json:"num_underscores"`
	NumSlashes        int     `json:"num_slashes"`
	NumQuestionMarks  int     `json:"num_questionmarks"`
	NumEquals         int     `json:"num_equals"`
	NumAt             int     `json:"num_at"`
	NumAmpersands     int     `json:"num_ampersands"`
	HasIP             bool    `json:"has_ip"`
	NumSubdomains     int     `json:"num_subdomains"`
	TLD               string  `json:"tld"`
	SuspiciousTLD     bool    `json:"suspicious_tld"`
	HasPunycode       bool    `json:"has_punycode"`
	HasPort           bool    `json:"has_port"`
	DomainEntropy     float64 `json:"domain_entropy"`
	SpecialCharCount  int     `json:"special_chars"`
}

// SentimentOpinion is an optional scalar opinion from an external text
// classifier, consumed by the email channel. The core never runs inference
// itself; an absent opinion degrades to rule-based-only scoring.
type SentimentOpinion struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentNegative is the label under which a sentiment opinion contributes
// to the email phishing score.
const SentimentNegative = "NEGATIVE"

// Webpage classifier category labels, as produced by the external zero-shot
// classifier collaborator.
const (
	WebpageCategoryBanking       = "legitimate banking website"
	WebpageCategoryPhishing      = "phishing or scam website"
	WebpageCategoryEcommerce     = "legitimate e-commerce"
	WebpageCategoryInformational = "informational website"
)

// EmailAnalysis is the email channel detection result.
type EmailAnalysis struct {
	PhishingScore  float64     `json:"phishing_score"`
	IsPhishing     bool        `json:"is_phishing"`
	Reasons        []string    `json:"reasons"`
	PatternMatches MatchResult `json:"pattern_matches"`
}

// URLAnalysis is the URL channel detection result.
type URLAnalysis struct {
	PhishingScore float64     `json:"phishing_score"`
	IsPhishing    bool        `json:"is_phishing"`
	Reasons       []string    `json:"reasons"`
	Features      URLFeatures `json:"features"`
}

// WebpageAnalysis is the webpage channel detection result.
type WebpageAnalysis struct {
	IsFinancial       bool        `json:"is_financial"`
	IsPhishing        bool        `json:"is_phishing"`
	PhishingScore     float64     `json:"phishing_score"`
	Confidence        float64     `json:"confidence"`
	Category          string      `json:"category"`
	FinancialKeywords []string    `json:"financial_keywords"`
	Indicators        []string    `json:"indicators"`
	SourceURL         URLFeatures `json:"source_url_features"`
}

// WhoisRecord is a resolved WHOIS-style record supplied by the external
// lookup collaborator. Both fields are optional; a failed lookup is
// represented by the zero value.
type WhoisRecord struct {
	CreationDate *time.Time `json:"creation_date,omitempty"`
	Registrar    *string    `json:"registrar,omitempty"`
}

// DomainAge is the normalized domain registration age record. AgeDays of -1
// means the age is unknown.
type DomainAge struct {
	AgeDays          int     `json:"age_days"`
	IsNew            bool    `json:"is_new"`
	RegistrationDate *string `json:"registration_date"`
	Registrar        *string `json:"registrar"`
}

// API request models.

// EmailAnalysisRequest is the body of POST /api/v1/analyze/email.
type EmailAnalysisRequest struct {
	Subject      string            `json:"subject"`
	Body         string            `json:"body"`
	Sender       string            `json:"sender,omitempty"`
	SenderDomain string            `json:"sender_domain,omitempty"`
	MLSentiment  *SentimentOpinion `json:"ml_sentiment,omitempty"`
}

// URLAnalysisRequest is the body of POST /api/v1/analyze/url.
type URLAnalysisRequest struct {
	URL           string   `json:"url"`
	MLProbability *float64 `json:"ml_probability,omitempty"`
}

// URLBatchAnalysisRequest is the body of POST /api/v1/analyze/url/batch.
type URLBatchAnalysisRequest struct {
	URLs []string `json:"urls"`
}

// WebpageAnalysisRequest is the body of POST /api/v1/analyze/webpage.
type WebpageAnalysisRequest struct {
	Text         string             `json:"text"`
	URL          string             `json:"url"`
	MLCategories map[string]float64 `json:"ml_categories,omitempty"`
}

// RiskScoreRequest is the body of POST /api/v1/risk-score. Each field is an
// optional signal; nil means the upstream detector had no opinion.
type RiskScoreRequest struct {
	WebsiteTrust    *float64 `json:"websiteTrust,omitempty"`
	URLPhishing     *float64 `json:"urlPhishing,omitempty"`
	FinancialIntent *float64 `json:"financialIntent,omitempty"`
	OTPMisuse       *float64 `json:"otpMisuse,omitempty"`
	UPIScam         *float64 `json:"upiScam,omitempty"`
}

// Bundle converts the request into a SignalBundle, keeping only present signals.
func (r RiskScoreRequest) Bundle() SignalBundle {
	bundle := make(SignalBundle)
	put := func(name SignalName, v *float64) {
		if v != nil {
			bundle[name] = *v
		}
	}
	put(SignalWebsiteTrust, r.WebsiteTrust)
	put(SignalURLPhishing, r.URLPhishing)
	put(SignalFinancialIntent, r.FinancialIntent)
	put(SignalOTPMisuse, r.OTPMisuse)
	put(SignalUPIScam, r.UPIScam)
	return bundle
}

// DomainAgeRequest is the body of POST /api/v1/domain-age: the domain being
// asked about plus the resolved WHOIS record for it, if the lookup succeeded.
type DomainAgeRequest struct {
	Domain       string     `json:"domain"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
	Registrar    *string    `json:"registrar,omitempty"`
}
