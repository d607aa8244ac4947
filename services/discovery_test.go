package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fixitnow-server/models"
)

func TestMergeUniqueWorkersDeduplicates(t *testing.T) {
	specific := []models.WorkerProfile{
		{ID: 1, ServiceType: models.ServicePlumber},
		{ID: 2, ServiceType: models.ServicePlumber},
	}
	// Worker 2 appears in both result sets; it must show up once.
	allPurpose := []models.WorkerProfile{
		{ID: 2, ServiceType: models.ServicePlumber},
		{ID: 3, ServiceType: models.ServiceAll},
	}

	merged := MergeUniqueWorkers(specific, allPurpose)

	assert.Len(t, merged, 3)
	seen := make(map[uint]bool)
	for _, w := range merged {
		assert.False(t, seen[w.ID], "worker %d duplicated", w.ID)
		seen[w.ID] = true
	}
}

func TestMergeUniqueWorkersOrderSpecificFirst(t *testing.T) {
	specific := []models.WorkerProfile{{ID: 5}, {ID: 6}}
	allPurpose := []models.WorkerProfile{{ID: 7}, {ID: 8}}

	merged := MergeUniqueWorkers(specific, allPurpose)

	ids := make([]uint, 0, len(merged))
	for _, w := range merged {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []uint{5, 6, 7, 8}, ids)
}

func TestMergeUniqueWorkersEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeUniqueWorkers(nil, nil))
	assert.Len(t, MergeUniqueWorkers(nil, []models.WorkerProfile{{ID: 1}}), 1)
}
