package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func browse(t *testing.T, serviceType string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/workers/browse/"+serviceType, nil)
	c.Params = gin.Params{{Key: "serviceType", Value: serviceType}}
	c.Set("user_id", uint(7))

	browseWorkers(c)
	return w
}

func TestBrowseWorkersRejectsUnknownCategory(t *testing.T) {
	w := browse(t, "carpenter")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// "all" is a worker-side wildcard, not a category customers can browse.
func TestBrowseWorkersRejectsAllCategory(t *testing.T) {
	w := browse(t, "all")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWorkerProfileInvalidID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/workers/profile/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	getWorkerProfile(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWorkerProfileUnauthenticated(t *testing.T) {
	w, c := postJSON(t, "/api/v1/workers/me/profile",
		`{"service_type": "plumber", "experience": "pipes", "years_of_experience": 3, "service_area": "Queens"}`, 0)

	createWorkerProfile(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateWorkerProfileRejectsUnknownServiceType(t *testing.T) {
	w, c := postJSON(t, "/api/v1/workers/me/profile",
		`{"service_type": "carpenter", "experience": "cabinets", "years_of_experience": 3, "service_area": "Queens"}`, 7)

	createWorkerProfile(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWorkerProfileRejectsNegativeExperience(t *testing.T) {
	w, c := postJSON(t, "/api/v1/workers/me/profile",
		`{"service_type": "plumber", "experience": "pipes", "years_of_experience": -1, "service_area": "Queens"}`, 7)

	createWorkerProfile(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAvailabilityUnauthenticated(t *testing.T) {
	w, c := postJSON(t, "/api/v1/workers/me/availability", `{"is_available": true}`, 0)

	updateAvailability(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateAvailabilityRejectsMissingFlag(t *testing.T) {
	w, c := postJSON(t, "/api/v1/workers/me/availability", `{}`, 7)

	updateAvailability(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
