package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerIsDiscoverable(t *testing.T) {
	cases := []struct {
		name         string
		available    bool
		status       WorkerStatus
		discoverable bool
	}{
		{"available and approved", true, WorkerStatusApproved, true},
		{"unavailable", false, WorkerStatusApproved, false},
		{"pending review", true, WorkerStatusPendingReview, false},
		{"suspended", true, WorkerStatusSuspended, false},
		{"unavailable and suspended", false, WorkerStatusSuspended, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := WorkerProfile{IsAvailable: tc.available, Status: tc.status}
			assert.Equal(t, tc.discoverable, w.IsDiscoverable())
		})
	}
}

func TestWorkerMatches(t *testing.T) {
	plumber := WorkerProfile{ServiceType: ServicePlumber}
	allPurpose := WorkerProfile{ServiceType: ServiceAll}

	assert.True(t, plumber.Matches(ServicePlumber))
	assert.False(t, plumber.Matches(ServiceElectrician))
	assert.True(t, allPurpose.Matches(ServicePlumber))
	assert.True(t, allPurpose.Matches(ServiceMechanic))
}

func TestIsValidServiceType(t *testing.T) {
	assert.True(t, IsValidServiceType(ServicePlumber))
	assert.True(t, IsValidServiceType(ServiceElectrician))
	assert.True(t, IsValidServiceType(ServiceMechanic))
	assert.True(t, IsValidServiceType(ServiceAll))
	assert.False(t, IsValidServiceType("carpenter"))
	assert.False(t, IsValidServiceType(""))
}

func TestBrowsableServiceTypesExcludesAll(t *testing.T) {
	for _, s := range BrowsableServiceTypes() {
		assert.NotEqual(t, ServiceAll, s)
	}
	assert.Len(t, BrowsableServiceTypes(), 3)
}
