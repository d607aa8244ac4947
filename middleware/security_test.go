package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	ok, problems := ValidatePasswordStrength("goodpass1")
	assert.True(t, ok)
	assert.Empty(t, problems)

	ok, problems = ValidatePasswordStrength("short1")
	assert.False(t, ok)
	assert.NotEmpty(t, problems)

	ok, _ = ValidatePasswordStrength("nodigitshere")
	assert.False(t, ok)

	ok, _ = ValidatePasswordStrength("12345678")
	assert.False(t, ok)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", SanitizeInput("<b>bold</b>"))
	assert.Equal(t, "plain text", SanitizeInput("  plain text  "))
	assert.Equal(t, "Tom &amp; Jerry", SanitizeInput("Tom & Jerry"))
}

func TestRateLimiterReusesLimiterPerKey(t *testing.T) {
	rl := NewRateLimiter()

	a := rl.GetLimiter("1.2.3.4", 1, 1)
	b := rl.GetLimiter("1.2.3.4", 1, 1)
	c := rl.GetLimiter("5.6.7.8", 1, 1)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter()
	rl.GetLimiter("stale", 1, 1)

	// Not yet idle long enough
	rl.Cleanup()
	assert.Len(t, rl.limiters, 1)
}
