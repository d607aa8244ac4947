package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fixitnow-server/database"
	"fixitnow-server/middleware"
	"fixitnow-server/models"
	"fixitnow-server/services"
)

// AvailabilityRequest represents the availability toggle request
type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// RegisterWorkerRoutes registers worker discovery and profile routes
func RegisterWorkerRoutes(router *gin.RouterGroup) {
	router.GET("/browse/:serviceType", browseWorkers)
	router.GET("/profile/:id", getWorkerProfile)
	router.POST("/me/profile", createWorkerProfile)
	router.GET("/me/dashboard", getWorkerDashboard)
	router.PATCH("/me/availability", updateAvailability)
}

// createWorkerProfile finishes worker onboarding for accounts that have no
// professional profile yet. The profile starts approved and unavailable,
// same as signup.
func createWorkerProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "You must be logged in as a worker",
		})
		return
	}

	var req models.WorkerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !models.IsValidServiceType(req.ServiceType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Service type must be plumber, electrician, mechanic or all",
		})
		return
	}

	if *req.YearsOfExperience < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Years of experience cannot be negative",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	if !user.IsWorker() {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Only worker accounts can create a worker profile",
		})
		return
	}

	var existing models.WorkerProfile
	if err := database.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "You already have a worker profile",
		})
		return
	}

	worker := models.WorkerProfile{
		UserID:            user.ID,
		FullName:          user.FullName,
		PhoneNumber:       user.PhoneNumber,
		ServiceType:       req.ServiceType,
		Experience:        middleware.SanitizeInput(req.Experience),
		YearsOfExperience: *req.YearsOfExperience,
		ServiceArea:       middleware.SanitizeInput(req.ServiceArea),
		WillingToTravel:   req.WillingToTravel,
		IsAvailable:       false,
		Status:            models.WorkerStatusApproved,
	}

	if err := database.DB.Create(&worker).Error; err != nil {
		log.Printf("Error creating worker profile for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create worker profile",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Worker profile created successfully",
		"worker":      worker,
		"redirect_to": "dashboard/worker",
	})
}

// browseWorkers returns workers eligible for the requested category:
// available, approved, and either a direct category match or all-purpose.
func browseWorkers(c *gin.Context) {
	serviceType := models.ServiceType(c.Param("serviceType"))
	if !models.IsValidServiceType(serviceType) || serviceType == models.ServiceAll {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Unknown service category",
		})
		return
	}

	discovery := services.NewDiscoveryService(database.DB)
	workers, err := discovery.FindAvailableWorkers(serviceType)
	if err != nil {
		log.Printf("Error fetching workers for %s: %v", serviceType, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Could not fetch available workers",
		})
		return
	}

	// Empty result is a normal outcome, not an error
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workers": workers,
	})
}

// getWorkerProfile returns a single worker for the booking page
func getWorkerProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid worker ID",
		})
		return
	}

	var worker models.WorkerProfile
	if err := database.DB.First(&worker, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Worker not found",
			})
			return
		}
		log.Printf("Error fetching worker profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch worker profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  worker,
	})
}

// getWorkerDashboard returns the worker profile, assigned bookings grouped
// by lifecycle stage, and headline stats.
func getWorkerDashboard(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "You must be logged in as a worker",
		})
		return
	}

	var worker models.WorkerProfile
	if err := database.DB.Where("user_id = ?", userID).First(&worker).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success":     false,
				"message":     "Worker profile not found",
				"redirect_to": "worker-setup",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch worker profile",
		})
		return
	}

	var jobs []models.Booking
	if err := database.DB.Where("worker_id = ?", worker.ID).
		Order("created_at DESC").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch jobs",
		})
		return
	}

	pending := make([]models.Booking, 0)
	inFlight := make([]models.Booking, 0)
	history := make([]models.Booking, 0)
	completedJobs := 0
	for _, job := range jobs {
		switch {
		case job.Status == models.BookingStatusPending:
			pending = append(pending, job)
		case job.Status.IsTerminal():
			history = append(history, job)
			if job.Status == models.BookingStatusCompleted {
				completedJobs++
			}
		default:
			inFlight = append(inFlight, job)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"worker":           worker,
		"pending_requests": pending,
		"active_jobs":      inFlight,
		"job_history":      history,
		"stats": gin.H{
			"total_earnings":   worker.TotalEarnings,
			"completed_jobs":   completedJobs,
			"pending_requests": len(pending),
		},
	})
}

// updateAvailability flips the worker's discoverability flag. The change is
// visible to the next browse query; there is no cache in front of it.
func updateAvailability(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "You must be logged in as a worker",
		})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	result := database.DB.Model(&models.WorkerProfile{}).
		Where("user_id = ?", userID).
		Update("is_available", *req.IsAvailable)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update availability",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Worker profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Availability updated successfully",
		"is_available": *req.IsAvailable,
	})
}
