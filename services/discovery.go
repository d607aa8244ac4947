package services

import (
	"sync"

	"gorm.io/gorm"

	"fixitnow-server/models"
)

// DiscoveryService finds workers eligible to serve a booking request.
type DiscoveryService struct {
	db *gorm.DB
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(db *gorm.DB) *DiscoveryService {
	return &DiscoveryService{db: db}
}

// FindAvailableWorkers returns workers that are available and approved and
// either match the requested category exactly or are flagged all-purpose.
// The two queries run concurrently and the joined result is deduplicated by
// worker ID, category-specific matches first.
func (s *DiscoveryService) FindAvailableWorkers(serviceType models.ServiceType) ([]models.WorkerProfile, error) {
	var (
		specific   []models.WorkerProfile
		allPurpose []models.WorkerProfile
		errSpec    error
		errAll     error
		wg         sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errSpec = s.db.
			Where("service_type = ? AND is_available = ? AND status = ?",
				serviceType, true, models.WorkerStatusApproved).
			Find(&specific).Error
	}()
	go func() {
		defer wg.Done()
		errAll = s.db.
			Where("service_type = ? AND is_available = ? AND status = ?",
				models.ServiceAll, true, models.WorkerStatusApproved).
			Find(&allPurpose).Error
	}()
	wg.Wait()

	if errSpec != nil {
		return nil, errSpec
	}
	if errAll != nil {
		return nil, errAll
	}

	return MergeUniqueWorkers(specific, allPurpose), nil
}

// MergeUniqueWorkers joins worker result sets preserving order, keeping the
// first occurrence of each worker ID. A worker whose category is "all" can
// satisfy both discovery queries; it must appear only once.
func MergeUniqueWorkers(groups ...[]models.WorkerProfile) []models.WorkerProfile {
	seen := make(map[uint]bool)
	merged := make([]models.WorkerProfile, 0)
	for _, group := range groups {
		for _, worker := range group {
			if seen[worker.ID] {
				continue
			}
			seen[worker.ID] = true
			merged = append(merged, worker)
		}
	}
	return merged
}
