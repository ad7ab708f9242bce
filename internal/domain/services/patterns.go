package services

import (
	"regexp"
	"strings"

	"scamguard/internal/domain/models"
)

// patternRule is one compiled regex rule tagged with its category.
type patternRule struct {
	category models.PatternCategory
	re       *regexp.Regexp
}

// keywordRule is one plain-substring rule tagged with its category.
type keywordRule struct {
	category models.PatternCategory
	keyword  string
}

// PatternSet is the ordered collection of compiled pattern rules used by the
// detectors. It is built once at startup and never mutated afterwards, so a
// single instance is safe to share across any number of concurrent requests.
type PatternSet struct {
	regexRules   []patternRule
	keywordRules []keywordRule
}

var urgencyPatterns = []string{
	`urgent(?:ly)?`,
	`immediate(?:ly)?`,
	`act now`,
	`within \d+ hours?`,
	`expires? (?:today|soon|now)`,
	`limited time`,
	`account (?:will be |has been )?(?:suspended|closed|blocked)`,
	`verify (?:immediately|now|your account)`,
	`action required`,
	`security alert`,
	`unusual activity`,
}

var fearPatterns = []string{
	`blocked`,
	`frozen`,
	`compromised`,
	`unauthorized`,
	`suspicious activity`,
	`fraud(?:ulent)? (?:activity|transaction)`,
	`legal action`,
	`lose access`,
	`permanent(?:ly)?`,
	`cancel(?:led|lation)?`,
}

var rewardPatterns = []string{
	`won`,
	`winner`,
	`prize`,
	`reward`,
	`cash ?back`,
	`free`,
	`claim (?:now|your)`,
	`congratulations`,
	`you(?:'ve| have) been selected`,
	`lottery`,
	`bonus`,
	`gift card`,
}

// financialKeywords are matched as plain substrings, not regexes.
var financialKeywords = []string{
	"bank", "banking", "account", "netbanking", "internet banking",
	"upi", "paytm", "phonepe", "gpay", "google pay",
	"transaction", "payment", "otp", "cvv", "debit", "credit",
}

var phishingIndicators = []string{
	"verify your account", "confirm your identity", "urgent action",
	"suspended account", "unusual activity", "click here immediately",
	"enter your password", "update your information",
}

// NewPatternSet compiles the default pattern rules. Rule order within a
// category is fixed: matches are reported in declaration order.
func NewPatternSet() *PatternSet {
	ps := &PatternSet{}

	compile := func(category models.PatternCategory, patterns []string) {
		for _, p := range patterns {
			ps.regexRules = append(ps.regexRules, patternRule{
				category: category,
				re:       regexp.MustCompile(p),
			})
		}
	}
	compile(models.CategoryUrgency, urgencyPatterns)
	compile(models.CategoryFear, fearPatterns)
	compile(models.CategoryReward, rewardPatterns)

	addKeywords := func(category models.PatternCategory, keywords []string) {
		for _, kw := range keywords {
			ps.keywordRules = append(ps.keywordRules, keywordRule{
				category: category,
				keyword:  kw,
			})
		}
	}
	addKeywords(models.CategoryFinancial, financialKeywords)
	addKeywords(models.CategoryPhishingIndicator, phishingIndicators)

	return ps
}

// Find matches text against every rule and returns the matched literals per
// category. The text is lowercased first, so matching is case-insensitive.
// For each regex rule only the first matching span is recorded, and a literal
// already recorded for a category is not added again. No match in a category
// is a normal outcome: the category is simply absent from the result.
func (ps *PatternSet) Find(text string) models.MatchResult {
	lowered := strings.ToLower(text)
	result := make(models.MatchResult)
	seen := make(map[models.PatternCategory]map[string]bool)

	record := func(category models.PatternCategory, literal string) {
		if seen[category] == nil {
			seen[category] = make(map[string]bool)
		}
		if seen[category][literal] {
			return
		}
		seen[category][literal] = true
		result[category] = append(result[category], literal)
	}

	for _, rule := range ps.regexRules {
		if m := rule.re.FindString(lowered); m != "" {
			record(rule.category, m)
		}
	}
	for _, rule := range ps.keywordRules {
		if strings.Contains(lowered, rule.keyword) {
			record(rule.category, rule.keyword)
		}
	}

	return result
}

// FindCategory returns the distinct matched literals for a single category.
func (ps *PatternSet) FindCategory(text string, category models.PatternCategory) []string {
	return ps.Find(text)[category]
}

// matchKeywords returns the distinct keywords from the list that occur in
// text as plain substrings, in list order. The text must already be lowercased.
func matchKeywords(text string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
