package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"fixitnow-server/models"
)

func TestSignUpRejectsBadBody(t *testing.T) {
	w, c := postJSON(t, "/api/v1/auth/signup", `{"full_name": "Jo"}`, 0)

	signUp(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignUpRejectsInvalidEmail(t *testing.T) {
	w, c := postJSON(t, "/api/v1/auth/signup",
		`{"full_name": "Jo Smith", "email": "not-an-email", "password": "goodpass1"}`, 0)

	signUp(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignUpRejectsWeakPassword(t *testing.T) {
	w, c := postJSON(t, "/api/v1/auth/signup",
		`{"full_name": "Jo Smith", "email": "jo@example.com", "password": "weak"}`, 0)

	signUp(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorkerSignUpRejectsUnknownServiceType(t *testing.T) {
	w, c := postJSON(t, "/api/v1/auth/worker/signup",
		`{"full_name": "Pat Doe", "email": "pat@example.com", "password": "goodpass1",
		  "phone_number": "+12125550199", "service_type": "carpenter",
		  "experience": "10 years of cabinets", "years_of_experience": 10,
		  "service_area": "Chicago"}`, 0)

	workerSignUp(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWorkerSignUpRejectsNegativeExperience(t *testing.T) {
	w, c := postJSON(t, "/api/v1/auth/worker/signup",
		`{"full_name": "Pat Doe", "email": "pat@example.com", "password": "goodpass1",
		  "phone_number": "+12125550199", "service_type": "plumber",
		  "experience": "some", "years_of_experience": -2,
		  "service_area": "Chicago"}`, 0)

	workerSignUp(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignInRejectsBadBody(t *testing.T) {
	w, c := postJSON(t, "/api/v1/auth/signin", `{"email": "jo@example.com"}`, 0)

	signIn(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRedirectFor(t *testing.T) {
	customer := models.User{Role: models.RoleCustomer}
	assert.Equal(t, "onboarding", redirectFor(&customer, nil))

	customer.PhoneNumber = "+12125550100"
	assert.Equal(t, "dashboard/user", redirectFor(&customer, nil))

	worker := models.User{Role: models.RoleWorker}
	assert.Equal(t, "worker-setup", redirectFor(&worker, nil))
	assert.Equal(t, "dashboard/worker", redirectFor(&worker, &models.WorkerProfile{ID: 1}))

	admin := models.User{Role: models.RoleAdmin}
	assert.Equal(t, "admin", redirectFor(&admin, nil))
}
