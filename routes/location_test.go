package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixitnow-server/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Load()
	m.Run()
}

func resolveZip(t *testing.T, zip string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/location/"+zip, nil)
	c.Params = gin.Params{{Key: "zip", Value: zip}}

	resolveLocation(c)
	return w
}

func TestResolveLocationKnown(t *testing.T) {
	w := resolveZip(t, "10001")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "New York, NY", body["location"])
}

func TestResolveLocationUnknownIsNullNotError(t *testing.T) {
	w := resolveZip(t, "00000")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["location"])
	assert.Equal(t, true, body["success"])
}

func TestResolveLocationMalformedZip(t *testing.T) {
	w := resolveZip(t, "abcde")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
