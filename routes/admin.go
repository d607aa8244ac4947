package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fixitnow-server/database"
	"fixitnow-server/models"
)

// WorkerApprovalRequest represents the approval status change request
type WorkerApprovalRequest struct {
	Status models.WorkerStatus `json:"status" binding:"required"`
}

// RegisterAdminRoutes registers the worker review surface
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/workers", getAllWorkers)
	router.PATCH("/workers/:id/approval", updateWorkerApproval)
}

// getAllWorkers lists worker profiles for review, newest first
func getAllWorkers(c *gin.Context) {
	var workers []models.WorkerProfile
	query := database.DB.Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		if !models.IsValidWorkerStatus(models.WorkerStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Unknown approval status",
			})
			return
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&workers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch workers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workers": workers,
	})
}

// updateWorkerApproval moves a worker between review states. Suspended and
// pending workers drop out of discovery regardless of their availability flag.
func updateWorkerApproval(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid worker ID",
		})
		return
	}

	var req WorkerApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if !models.IsValidWorkerStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Unknown approval status",
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
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch worker",
		})
		return
	}

	if err := database.DB.Model(&worker).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update worker status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Worker status updated",
		"worker":  worker,
	})
}
