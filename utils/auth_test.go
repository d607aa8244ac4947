package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixitnow-server/config"
	"fixitnow-server/types"
)

func TestMain(m *testing.M) {
	config.Load()
	m.Run()
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery1")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery1", hash)

	assert.True(t, CheckPasswordHash("correct horse battery1", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "customer")
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "customer", claims.Role)

	userID, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("not.a.token")
	assert.Error(t, err)
}

// A token signed with our secret but minted by a different issuer must not
// be accepted.
func TestVerifyTokenRejectsWrongIssuer(t *testing.T) {
	claims := &types.Claims{
		UserID: 42,
		Role:   "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "some-other-service",
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWT.Secret))
	require.NoError(t, err)

	_, err = VerifyToken(signed)
	assert.Error(t, err)
}

func TestValidateZipCode(t *testing.T) {
	assert.True(t, ValidateZipCode("10001"))
	assert.True(t, ValidateZipCode("00000"))
	assert.False(t, ValidateZipCode("1234"))
	assert.False(t, ValidateZipCode("123456"))
	assert.False(t, ValidateZipCode("1000a"))
	assert.False(t, ValidateZipCode(""))
}
