package routes

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fixitnow-server/database"
	"fixitnow-server/models"
)

// CreateBookingRequest represents the booking creation request
type CreateBookingRequest struct {
	WorkerID    uint    `json:"worker_id" binding:"required"`
	Notes       *string `json:"notes"`
	ScheduledAt *string `json:"scheduled_at"` // RFC3339, optional
}

// RegisterBookingRoutes registers booking lifecycle routes
func RegisterBookingRoutes(router *gin.RouterGroup) {
	router.POST("", createBooking)
	router.GET("/my", getMyBookings)
	router.POST("/:id/accept", acceptBooking)
	router.POST("/:id/start", startBooking)
	router.POST("/:id/complete", completeBooking)
	router.POST("/:id/cancel", cancelBooking)
}

// createBooking creates exactly one PENDING booking for the authenticated
// requester, denormalizing the worker's name and service type at write time.
func createBooking(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "You must be logged in to book a service",
		})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	var scheduledAt *time.Time
	if req.ScheduledAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "scheduled_at must be an RFC3339 timestamp",
			})
			return
		}
		scheduledAt = &parsed
	}

	var worker models.WorkerProfile
	if err := database.DB.First(&worker, req.WorkerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Worker not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch worker",
		})
		return
	}

	if worker.Status != models.WorkerStatusApproved {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "This worker is not accepting bookings",
		})
		return
	}

	booking := models.NewBooking(userID, &worker, req.Notes, scheduledAt)

	if err := database.DB.Create(&booking).Error; err != nil {
		log.Printf("Error creating booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Could not create your booking request",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Booking request sent to " + worker.FullName,
		"booking":     booking,
		"redirect_to": "dashboard/user",
	})
}

// getMyBookings returns the caller's bookings partitioned into active/past
func getMyBookings(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "You must be logged in to view bookings",
		})
		return
	}

	var bookings []models.Booking
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Could not load your bookings",
		})
		return
	}

	active, past := models.PartitionBookings(bookings)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"active":  active,
		"past":    past,
	})
}

func acceptBooking(c *gin.Context) {
	transitionBooking(c, models.BookingStatusConfirmed)
}

func startBooking(c *gin.Context) {
	transitionBooking(c, models.BookingStatusInProgress)
}

func completeBooking(c *gin.Context) {
	transitionBooking(c, models.BookingStatusCompleted)
}

func cancelBooking(c *gin.Context) {
	transitionBooking(c, models.BookingStatusCanceled)
}

// transitionBooking applies the lifecycle contract: the assigned worker
// drives the booking forward (accept, start, complete); cancellation is open
// to the requester as well. Invalid transitions are conflicts, foreign
// callers are forbidden.
func transitionBooking(c *gin.Context, next models.BookingStatus) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "You must be logged in",
		})
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking ID",
		})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch booking",
		})
		return
	}

	isRequester := booking.UserID == userID

	isAssignedWorker := false
	if booking.WorkerID != nil {
		var worker models.WorkerProfile
		if err := database.DB.Where("user_id = ?", userID).First(&worker).Error; err == nil {
			isAssignedWorker = worker.ID == *booking.WorkerID
		}
	}

	allowed := isAssignedWorker
	if next == models.BookingStatusCanceled {
		allowed = isAssignedWorker || isRequester
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You are not a party to this booking",
		})
		return
	}

	if !booking.CanTransition(next) {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Booking cannot move from " + string(booking.Status) + " to " + string(next),
		})
		return
	}

	updates := map[string]interface{}{"status": next}
	if next == models.BookingStatusCompleted {
		updates["completed_at"] = time.Now()
	}

	if err := database.DB.Model(&booking).Updates(updates).Error; err != nil {
		log.Printf("Error updating booking %d: %v", booking.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update booking",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated",
		"booking": booking,
	})
}
