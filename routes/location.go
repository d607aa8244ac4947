package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixitnow-server/utils"
)

// RegisterLocationRoutes registers zip code lookup routes
func RegisterLocationRoutes(router *gin.RouterGroup) {
	router.GET("/:zip", resolveLocation)
}

// resolveLocation maps a 5-digit zip code to a display location. Unknown
// codes resolve to null rather than an error.
func resolveLocation(c *gin.Context) {
	zip := c.Param("zip")
	if !utils.ValidateZipCode(zip) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Zip code must be 5 digits",
		})
		return
	}

	location, ok := utils.ResolveLocation(zip)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"zip_code": zip,
			"location": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"zip_code": zip,
		"location": location,
	})
}
