package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fixitnow-server/config"
	"fixitnow-server/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Load()
	m.Run()
}

func runAuthMiddleware(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}

	AuthMiddleware()(c)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := runAuthMiddleware(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	w := runAuthMiddleware(t, "token-without-bearer-prefix")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	w := runAuthMiddleware(t, "Bearer not.a.valid.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddlewareWithoutUser(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/workers", nil)

	AdminMiddleware()(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/workers", nil)
	c.Set("user", models.User{ID: 1, Role: models.RoleCustomer})

	AdminMiddleware()(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/workers", nil)
	c.Set("user", models.User{ID: 1, Role: models.RoleAdmin})

	AdminMiddleware()(c)
	assert.False(t, c.IsAborted())
}
