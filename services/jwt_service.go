package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"fixitnow-server/config"
	"fixitnow-server/database"
	"fixitnow-server/models"
	"fixitnow-server/utils"
)

// JWTService handles access/refresh token operations
type JWTService struct{}

// NewJWTService creates a new JWT service
func NewJWTService() *JWTService {
	return &JWTService{}
}

// TokenPair represents a pair of access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// GenerateTokenPair generates both access and refresh tokens
func (js *JWTService) GenerateTokenPair(user *models.User, userAgent, ipAddress string) (*TokenPair, error) {
	accessToken, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, err := js.generateRefreshToken(user.ID, userAgent, ipAddress)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(config.AppConfig.JWT.ExpiryHours) * 3600,
		TokenType:    "Bearer",
	}, nil
}

// generateRefreshToken generates a long-lived opaque refresh token
func (js *JWTService) generateRefreshToken(userID uint, userAgent, ipAddress string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	tokenString := hex.EncodeToString(tokenBytes)

	refreshToken := &models.RefreshToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}

	if err := database.DB.Create(refreshToken).Error; err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateRefreshToken validates a refresh token
func (js *JWTService) ValidateRefreshToken(tokenString string) (*models.RefreshToken, error) {
	var refreshToken models.RefreshToken

	if err := database.DB.Where("token = ?", tokenString).First(&refreshToken).Error; err != nil {
		return nil, errors.New("refresh token not found")
	}

	if !refreshToken.IsValid() {
		return nil, errors.New("refresh token is invalid or expired")
	}

	return &refreshToken, nil
}

// RefreshAccessToken generates a new access token using a refresh token
func (js *JWTService) RefreshAccessToken(refreshTokenString string) (*TokenPair, *models.User, error) {
	refreshToken, err := js.ValidateRefreshToken(refreshTokenString)
	if err != nil {
		return nil, nil, err
	}

	var user models.User
	if err := database.DB.First(&user, refreshToken.UserID).Error; err != nil {
		return nil, nil, errors.New("user associated with refresh token not found")
	}

	if !user.IsActive {
		return nil, nil, errors.New("user account is deactivated")
	}

	accessToken, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, nil, err
	}

	refreshToken.UpdatedAt = time.Now()
	database.DB.Save(refreshToken)

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(config.AppConfig.JWT.ExpiryHours) * 3600,
		TokenType:    "Bearer",
	}, &user, nil
}

// RevokeRefreshToken revokes a refresh token
func (js *JWTService) RevokeRefreshToken(tokenString string) error {
	var refreshToken models.RefreshToken

	if err := database.DB.Where("token = ?", tokenString).First(&refreshToken).Error; err != nil {
		return errors.New("refresh token not found")
	}

	refreshToken.Revoke()
	return database.DB.Save(&refreshToken).Error
}

// RevokeAllUserTokens revokes all refresh tokens for a user
func (js *JWTService) RevokeAllUserTokens(userID uint) error {
	return database.DB.Model(&models.RefreshToken{}).
		Where("user_id = ? AND is_revoked = ?", userID, false).
		Update("is_revoked", true).Error
}

// CleanupExpiredTokens removes expired refresh tokens
func (js *JWTService) CleanupExpiredTokens() error {
	if err := database.DB.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error; err != nil {
		return err
	}

	log.Println("Expired refresh tokens cleaned up")
	return nil
}
