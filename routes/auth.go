package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fixitnow-server/database"
	"fixitnow-server/middleware"
	"fixitnow-server/models"
	"fixitnow-server/services"
	"fixitnow-server/utils"
)

// SignUpRequest represents the customer registration request
type SignUpRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// WorkerSignUpRequest represents the worker registration request
type WorkerSignUpRequest struct {
	FullName          string             `json:"full_name" binding:"required"`
	Email             string             `json:"email" binding:"required,email"`
	Password          string             `json:"password" binding:"required"`
	PhoneNumber       string             `json:"phone_number" binding:"required"`
	ServiceType       models.ServiceType `json:"service_type" binding:"required"`
	Experience        string             `json:"experience" binding:"required"`
	YearsOfExperience *int               `json:"years_of_experience" binding:"required"`
	ServiceArea       string             `json:"service_area" binding:"required"`
	WillingToTravel   bool               `json:"willing_to_travel"`
}

// SignInRequest represents the sign in request
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	router.POST("/signup", signUp)
	router.POST("/worker/signup", workerSignUp)
	router.POST("/signin", signIn)
	router.POST("/login", signIn) // Alias for signin
	router.POST("/refresh", refreshToken)
	router.POST("/logout", logout)
}

// redirectFor maps a resolved identity to the surface the client should land
// on: onboarding when the customer profile is incomplete, worker profile
// setup when a worker has none, otherwise the role's dashboard.
func redirectFor(user *models.User, workerProfile *models.WorkerProfile) string {
	switch user.Role {
	case models.RoleWorker:
		if workerProfile == nil {
			return "worker-setup"
		}
		return "dashboard/worker"
	case models.RoleAdmin:
		return "admin"
	default:
		if !user.HasCompleteProfile() {
			return "onboarding"
		}
		return "dashboard/user"
	}
}

// signUp handles customer registration
func signUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	if ok, problems := middleware.ValidatePasswordStrength(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Weak password",
			"message": strings.Join(problems, "; "),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User
	if err := database.DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "User already exists",
			"message": "An account with this email already exists",
		})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Password hashing failed",
			"message": "Failed to process password",
		})
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleCustomer,
		IsActive:     true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "User creation failed",
			"message": "Failed to create user account",
		})
		return
	}

	tokens, err := services.NewJWTService().GenerateTokenPair(&user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Token generation failed",
			"message": "Failed to generate authentication token",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "User registered successfully",
		"tokens":      tokens,
		"user":        user,
		"redirect_to": redirectFor(&user, nil),
	})
}

// workerSignUp handles worker registration. The account and the professional
// profile are created together; new workers start unavailable and approved.
func workerSignUp(c *gin.Context) {
	var req WorkerSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	if !models.IsValidServiceType(req.ServiceType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid service type",
			"message": "Service type must be plumber, electrician, mechanic or all",
		})
		return
	}

	if *req.YearsOfExperience < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid experience",
			"message": "Years of experience cannot be negative",
		})
		return
	}

	if ok, problems := middleware.ValidatePasswordStrength(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Weak password",
			"message": strings.Join(problems, "; "),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User
	if err := database.DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "User already exists",
			"message": "An account with this email already exists",
		})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Password hashing failed",
			"message": "Failed to process password",
		})
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hashedPassword,
		Role:         models.RoleWorker,
		IsActive:     true,
	}

	var worker models.WorkerProfile

	// The account and the profile commit together or not at all; a worker
	// user without a profile would be stranded at login.
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		worker = models.WorkerProfile{
			UserID:            user.ID,
			FullName:          req.FullName,
			PhoneNumber:       req.PhoneNumber,
			ServiceType:       req.ServiceType,
			Experience:        middleware.SanitizeInput(req.Experience),
			YearsOfExperience: *req.YearsOfExperience,
			ServiceArea:       middleware.SanitizeInput(req.ServiceArea),
			WillingToTravel:   req.WillingToTravel,
			IsAvailable:       false,
			Status:            models.WorkerStatusApproved,
		}

		return tx.Create(&worker).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Worker registration failed",
			"message": "Failed to create worker account",
		})
		return
	}

	tokens, err := services.NewJWTService().GenerateTokenPair(&user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Token generation failed",
			"message": "Failed to generate authentication token",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Worker registered successfully",
		"tokens":         tokens,
		"user":           user,
		"worker_profile": worker,
		"redirect_to":    redirectFor(&user, &worker),
	})
}

// signIn handles authentication for both customers and workers
func signIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication failed",
			"message": "Invalid email or password",
		})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Account deactivated",
			"message": "Your account has been deactivated",
		})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication failed",
			"message": "Invalid email or password",
		})
		return
	}

	tokens, err := services.NewJWTService().GenerateTokenPair(&user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Token generation failed",
			"message": "Failed to generate authentication token",
		})
		return
	}

	var workerProfile *models.WorkerProfile
	if user.Role == models.RoleWorker {
		var profile models.WorkerProfile
		if err := database.DB.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			workerProfile = &profile
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Authentication successful",
		"tokens":         tokens,
		"user":           user,
		"worker_profile": workerProfile,
		"redirect_to":    redirectFor(&user, workerProfile),
	})
}

// GetCurrentUser resolves the authenticated principal to its profile
func GetCurrentUser(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Not authenticated",
			"message": "Please log in to access your profile",
		})
		return
	}

	userModel, ok := user.(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Invalid user data",
			"message": "Failed to retrieve user information",
		})
		return
	}

	var workerProfile *models.WorkerProfile
	if userModel.Role == models.RoleWorker {
		var profile models.WorkerProfile
		if err := database.DB.Where("user_id = ?", userModel.ID).First(&profile).Error; err == nil {
			workerProfile = &profile
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":           userModel,
		"worker_profile": workerProfile,
		"location":       utils.ResolveLocationOrNil(userModel.ZipCode),
		"redirect_to":    redirectFor(&userModel, workerProfile),
	})
}

// refreshToken handles session re-establishment
func refreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	tokens, user, err := services.NewJWTService().RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid refresh token",
			"message": "Refresh token is invalid or expired",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"tokens":  tokens,
		"user":    user,
	})
}

// logout revokes the caller's refresh token
func logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}

	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		if err := services.NewJWTService().RevokeRefreshToken(req.RefreshToken); err != nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Logout successful",
				"success": true,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"success": true,
	})
}
