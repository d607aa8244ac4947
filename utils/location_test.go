package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocationKnownZip(t *testing.T) {
	location, ok := ResolveLocation("10001")
	assert.True(t, ok)
	assert.Equal(t, "New York, NY", location)
}

func TestResolveLocationUnknownZip(t *testing.T) {
	location, ok := ResolveLocation("00000")
	assert.False(t, ok)
	assert.Empty(t, location)
}

func TestResolveLocationOrNil(t *testing.T) {
	known := "90210"
	unknown := "00000"

	assert.Nil(t, ResolveLocationOrNil(nil))
	assert.Nil(t, ResolveLocationOrNil(&unknown))

	got := ResolveLocationOrNil(&known)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Beverly Hills, CA", *got)
	}
}
