package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleanease/cleanease-api/models"
)

func TestRegisterLoginProfile(t *testing.T) {
	db := setupTestDB("user_register_login")
	r := setupTestRouter(db)

	// Register; a role in the payload is ignored.
	w := doRequest(r, "POST", "/register", "", map[string]interface{}{
		"name":     "Jamie",
		"email":    "jamie@cleanease.test",
		"password": "longenoughpass",
		"role":     models.RoleAdmin,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	registered := decodeBody(w)
	assert.Equal(t, models.RoleCustomer, registered["role"])
	assert.NotContains(t, registered, "password")

	// Login
	w = doRequest(r, "POST", "/login", "", map[string]interface{}{
		"email":    "jamie@cleanease.test",
		"password": "longenoughpass",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	loginResp := decodeBody(w)
	token, _ := loginResp["token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleCustomer, loginResp["role"])

	// Profile with the freshly issued token
	w = doRequest(r, "GET", "/profile", "Bearer "+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jamie@cleanease.test", decodeBody(w)["email"])

	// Profile without a session
	w = doRequest(r, "GET", "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB("user_bad_login")
	r := setupTestRouter(db)

	w := doRequest(r, "POST", "/register", "", map[string]interface{}{
		"name":     "Jamie",
		"email":    "jamie@cleanease.test",
		"password": "longenoughpass",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, "POST", "/login", "", map[string]interface{}{
		"email":    "jamie@cleanease.test",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(w)["error"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB("user_duplicate_email")
	r := setupTestRouter(db)
	seedUser(db, "Jamie", "jamie@cleanease.test", models.RoleCustomer)

	w := doRequest(r, "POST", "/register", "", map[string]interface{}{
		"name":     "Jamie Again",
		"email":    "jamie@cleanease.test",
		"password": "longenoughpass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email: is already registered", decodeBody(w)["error"])
}
