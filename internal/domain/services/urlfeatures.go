package services

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// suspiciousTLDs is the denylist of cheap or abuse-heavy top level domains.
var suspiciousTLDs = map[string]bool{
	"tk": true, "ml": true, "ga": true, "cf": true, "gq": true,
	"pw": true, "cc": true, "top": true, "work": true, "click": true,
	"loan": true, "racing": true, "men": true, "download": true,
}

var ipv4Pattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// URLFeatureExtractor derives the lexical feature record from raw URLs.
// Extraction is pure and total: it never fails the caller. Malformed input
// degrades to the zero-value feature record, with the parse error reported
// through the logger only.
type URLFeatureExtractor struct {
	logger *logger.Logger
}

// NewURLFeatureExtractor creates a new URL feature extractor
func NewURLFeatureExtractor(log *logger.Logger) *URLFeatureExtractor {
	return &URLFeatureExtractor{
		logger: log.WithComponent("url-features"),
	}
}

// Extract computes the feature record for a URL.
func (fe *URLFeatureExtractor) Extract(rawURL string) models.URLFeatures {
	var features models.URLFeatures

	parsed, err := url.Parse(rawURL)
	if err != nil {
		fe.logger.Warn().Err(err).Str("url", rawURL).Msg("URL parse failed, using default features")
		return features
	}

	host := parsed.Host
	path := parsed.Path

	features.Length = len(rawURL)
	features.DomainLength = len(host)
	features.PathLength = len(path)

	features.NumDots = strings.Count(rawURL, ".")
	features.NumHyphens = strings.Count(rawURL, "-")
	features.NumUnderscores = strings.Count(rawURL, "_")
	features.NumSlashes = strings.Count(rawURL, "/")
	features.NumQuestionMarks = strings.Count(rawURL, "?")
	features.NumEquals = strings.Count(rawURL, "=")
	features.NumAt = strings.Count(rawURL, "@")
	features.NumAmpersands = strings.Count(rawURL, "&")

	features.HasIP = ipv4Pattern.MatchString(host)

	if strings.Contains(host, ".") {
		labels := strings.Split(host, ".")
		if n := len(labels) - 2; n > 0 {
			features.NumSubdomains = n
		}
		features.TLD = strings.ToLower(labels[len(labels)-1])
		features.SuspiciousTLD = suspiciousTLDs[features.TLD]
	}

	features.HasPunycode = strings.Contains(host, "xn--")
	features.HasPort = strings.Contains(host, ":")
	features.DomainEntropy = shannonEntropy(host)

	for _, c := range host {
		if !isAlnum(c) && c != '.' && c != '-' {
			features.SpecialCharCount++
		}
	}

	return features
}

// shannonEntropy computes the Shannon entropy of s in bits per character.
// An empty string has entropy 0.
func shannonEntropy(s string) float64 {
	if len(s) == 0 {
		return 0.0
	}

	freq := make(map[rune]int)
	total := 0
	for _, c := range s {
		freq[c]++
		total++
	}

	length := float64(total)
	entropy := 0.0
	for _, count := range freq {
		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}

	return entropy
}

func isAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
