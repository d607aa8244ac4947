package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixitnow-server/database"
	"fixitnow-server/models"
	"fixitnow-server/utils"
)

// CompleteProfileRequest represents the onboarding request
type CompleteProfileRequest struct {
	FullName    string  `json:"full_name"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	ZipCode     *string `json:"zip_code"`
}

// UpdateLocationRequest represents the location update request
type UpdateLocationRequest struct {
	ZipCode string `json:"zip_code" binding:"required"`
}

// RegisterUserRoutes registers customer profile and dashboard routes
func RegisterUserRoutes(router *gin.RouterGroup) {
	router.POST("/me/profile", completeProfile)
	router.PATCH("/me/location", updateLocation)
	router.GET("/me/dashboard", getUserDashboard)
}

// completeProfile finishes customer onboarding
func completeProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not authenticated",
			"message": "You must be logged in to complete your profile",
		})
		return
	}

	var req CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	if req.ZipCode != nil && !utils.ValidateZipCode(*req.ZipCode) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid zip code",
			"message": "Zip code must be 5 digits",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "User not found",
			"message": "No profile found for this account",
		})
		return
	}

	user.PhoneNumber = req.PhoneNumber
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.ZipCode != nil {
		user.ZipCode = req.ZipCode
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Profile update failed",
			"message": "Failed to save your profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Profile completed successfully",
		"user":        user,
		"redirect_to": "dashboard/user",
	})
}

// updateLocation sets the customer's zip code
func updateLocation(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not authenticated",
			"message": "You must be logged in to update your location",
		})
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	if !utils.ValidateZipCode(req.ZipCode) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid zip code",
			"message": "Zip code must be 5 digits",
		})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("zip_code", req.ZipCode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Update failed",
			"message": "Could not update your location",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Location updated successfully",
		"zip_code": req.ZipCode,
		"location": utils.ResolveLocationOrNil(&req.ZipCode),
	})
}

// getUserDashboard returns the customer profile, resolved location, and the
// customer's bookings partitioned into active and past sets.
func getUserDashboard(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not authenticated",
			"message": "You must be logged in to view your dashboard",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":       "Profile not found",
			"message":     "Complete your profile to continue",
			"redirect_to": "onboarding",
		})
		return
	}

	var bookings []models.Booking
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Fetch failed",
			"message": "Could not load your bookings",
		})
		return
	}

	active, past := models.PartitionBookings(bookings)

	c.JSON(http.StatusOK, gin.H{
		"user":            user,
		"location":        utils.ResolveLocationOrNil(user.ZipCode),
		"active_bookings": active,
		"past_bookings":   past,
	})
}
