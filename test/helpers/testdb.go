package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UniqueEmail returns an email no other test in the process has used.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateUser inserts a user directly, hashing PasswordHash first when it
// still holds the raw password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2") {
		hashed, err := auth.HashPassword(user.PasswordHash)
		require.NoError(t, err, "hashing the test password must not fail")
		user.PasswordHash = hashed
	}
	if user.Role == "" {
		user.Role = models.UserRoleStudent
	}
	if user.PhoneNumber == "" {
		user.PhoneNumber = "87001234567"
	}

	require.NoError(t, db.Create(user).Error, "creating test user %s must not fail", user.Email)
}

// CreateAndLoginUser inserts a user and logs in through the API, returning
// the bearer token alongside the stored record.
func CreateAndLoginUser(t *testing.T, ts *TestServer, fullName, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/user/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: %s", body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginAdmin makes an admin with a unique email and logs in.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	return CreateAndLoginUser(t, ts, "Test Admin", UniqueEmail("admin"), "password123", models.UserRoleAdmin)
}

// CreateAndLoginStudent makes a student with a unique email and logs in.
func CreateAndLoginStudent(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	return CreateAndLoginUser(t, ts, "Test Student", UniqueEmail("student"), "password123", models.UserRoleStudent)
}

// CreateTestCompany inserts a company owned by the given user.
func CreateTestCompany(t *testing.T, db *gorm.DB, userID, name string) *models.Company {
	t.Helper()

	company := &models.Company{
		Name:        name,
		Description: "Test company description",
		Website:     "https://example.com",
		Location:    "Almaty",
		UserID:      userID,
	}
	require.NoError(t, db.Create(company).Error, "creating test company must not fail")
	return company
}

// CreateTestJob inserts a job posted by the given admin under the company.
func CreateTestJob(t *testing.T, db *gorm.DB, companyID, createdBy, title string) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:           title,
		Description:     "Test job description",
		Requirements:    datatypes.JSON(`["Go","SQL"]`),
		Salary:          500000,
		Location:        "Almaty",
		JobType:         "Full-time",
		ExperienceLevel: 2,
		Position:        1,
		CompanyID:       companyID,
		CreatedBy:       createdBy,
	}
	require.NoError(t, db.Create(job).Error, "creating test job must not fail")
	return job
}
