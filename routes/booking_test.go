package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postJSON(t *testing.T, path, body string, userID uint) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		c.Set("user_id", userID)
	}
	return w, c
}

// An unauthenticated call must not reach the store; it fails before any write.
func TestCreateBookingUnauthenticated(t *testing.T) {
	w, c := postJSON(t, "/api/v1/bookings", `{"worker_id": 1}`, 0)

	createBooking(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateBookingRejectsBadBody(t *testing.T) {
	w, c := postJSON(t, "/api/v1/bookings", `{"worker_id": "not-a-number"}`, 7)

	createBooking(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsMissingWorker(t *testing.T) {
	w, c := postJSON(t, "/api/v1/bookings", `{}`, 7)

	createBooking(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRejectsBadScheduledAt(t *testing.T) {
	w, c := postJSON(t, "/api/v1/bookings", `{"worker_id": 1, "scheduled_at": "tomorrow"}`, 7)

	createBooking(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransitionBookingUnauthenticated(t *testing.T) {
	w, c := postJSON(t, "/api/v1/bookings/1/accept", ``, 0)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	acceptBooking(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTransitionBookingInvalidID(t *testing.T) {
	w, c := postJSON(t, "/api/v1/bookings/abc/accept", ``, 7)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	acceptBooking(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMyBookingsUnauthenticated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/bookings/my", nil)

	getMyBookings(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
