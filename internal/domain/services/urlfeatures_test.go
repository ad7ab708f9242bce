package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"scamguard/pkg/logger"
)

func TestURLFeatureExtractor_Extract(t *testing.T) {
	fe := NewURLFeatureExtractor(logger.NewDefault())

	t.Run("basic URL", func(t *testing.T) {
		f := fe.Extract("https://example.com/login?next=/home")

		assert.Equal(t, len("https://example.com/login?next=/home"), f.Length)
		assert.Equal(t, len("example.com"), f.DomainLength)
		assert.Equal(t, len("/login"), f.PathLength)
		assert.Equal(t, 1, f.NumQuestionMarks)
		assert.Equal(t, 1, f.NumEquals)
		assert.Equal(t, 0, f.NumSubdomains)
		assert.Equal(t, "com", f.TLD)
		assert.False(t, f.SuspiciousTLD)
		assert.False(t, f.HasIP)
	})

	t.Run("IP host", func(t *testing.T) {
		f := fe.Extract("http://192.168.1.1/login")
		assert.True(t, f.HasIP)
	})

	t.Run("subdomain counting", func(t *testing.T) {
		f := fe.Extract("https://a.b.c.example.com/")
		assert.Equal(t, 3, f.NumSubdomains)
		assert.Equal(t, "com", f.TLD)
	})

	t.Run("suspicious TLD", func(t *testing.T) {
		f := fe.Extract("http://free-money.tk/")
		assert.Equal(t, "tk", f.TLD)
		assert.True(t, f.SuspiciousTLD)
	})

	t.Run("punycode and port", func(t *testing.T) {
		f := fe.Extract("http://xn--pple-43d.com:8080/")
		assert.True(t, f.HasPunycode)
		assert.True(t, f.HasPort)
	})

	t.Run("at symbol", func(t *testing.T) {
		f := fe.Extract("http://example.com@evil.com/")
		assert.Equal(t, 1, f.NumAt)
	})

	t.Run("malformed URL degrades to zero features", func(t *testing.T) {
		f := fe.Extract("http://%zz%invalid")
		assert.Equal(t, 0, f.Length)
		assert.Equal(t, "", f.TLD)
		assert.False(t, f.HasIP)
	})
}

func TestShannonEntropy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "empty string", input: "", want: 0},
		{name: "single repeated character", input: "aaaa", want: 0},
		{name: "two equally frequent characters", input: "abab", want: 1},
		{name: "four distinct characters", input: "abcd", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, shannonEntropy(tt.input), 1e-9)
		})
	}
}

func TestShannonEntropy_RandomLooksHigherThanWords(t *testing.T) {
	word := shannonEntropy("paypal.com")
	random := shannonEntropy("xk9q2jv7zr1mw4.com")
	assert.Greater(t, random, word)
}

func TestShannonEntropy_UpperBound(t *testing.T) {
	// Entropy of a string over n distinct runes is at most log2(n).
	s := "abcdefgh"
	assert.LessOrEqual(t, shannonEntropy(s), math.Log2(8)+1e-9)
}
