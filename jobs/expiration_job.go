package jobs

import (
	"log"
	"time"

	"fixitnow-server/config"
	"fixitnow-server/database"
	"fixitnow-server/models"
)

// ExpirationJob cancels bookings that have sat in PENDING past their TTL.
type ExpirationJob struct {
	stopChan chan bool
}

// NewExpirationJob creates a new expiration job
func NewExpirationJob() *ExpirationJob {
	return &ExpirationJob{
		stopChan: make(chan bool),
	}
}

// Start begins the expiration job
func (j *ExpirationJob) Start() {
	go j.run()
	log.Println("Booking expiration job started")
}

// Stop stops the expiration job
func (j *ExpirationJob) Stop() {
	j.stopChan <- true
	log.Println("Booking expiration job stopped")
}

func (j *ExpirationJob) run() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.cancelStalePending()
		case <-j.stopChan:
			return
		}
	}
}

// cancelStalePending finds PENDING bookings older than the configured TTL
// and cancels them. Cancellation is a status transition, never a delete.
func (j *ExpirationJob) cancelStalePending() {
	cutoff := time.Now().Add(-config.AppConfig.Booking.PendingTTL)

	var stale []models.Booking
	err := database.DB.Where("status = ? AND created_at <= ?",
		models.BookingStatusPending, cutoff).Find(&stale).Error
	if err != nil {
		log.Printf("Error checking stale bookings: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	log.Printf("Found %d stale pending bookings", len(stale))

	for _, booking := range stale {
		if err := database.DB.Model(&booking).
			Update("status", models.BookingStatusCanceled).Error; err != nil {
			log.Printf("Failed to cancel stale booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Canceled stale booking %d (pending since %s)",
			booking.ID, booking.CreatedAt.Format(time.RFC3339))
	}
}
