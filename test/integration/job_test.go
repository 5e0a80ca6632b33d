package integration_test

import (
	"net/http"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJobBody(companyID string) map[string]interface{} {
	return map[string]interface{}{
		"title":        "Backend Developer",
		"description":  "Build portal services",
		"requirements": "Go,Postgres,Docker",
		"salary":       650000,
		"location":     "Almaty",
		"jobType":      "Full-time",
		"experience":   "3",
		"position":     2,
		"companyId":    companyID,
	}
}

func TestPostJob(t *testing.T) {
	ts := helpers.NewTestServer(t)

	token, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Hiring Co")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/job/admin/post-job", token, postJobBody(company.ID))

	assert.Equal(t, http.StatusCreated, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, "New job created successfully.")

	var stored models.Job
	require.NoError(t, ts.DB.Where("title = ?", "Backend Developer").First(&stored).Error)
	// The comma-separated requirements string is stored as a JSON array and
	// the experience string as its numeric level.
	assert.JSONEq(t, `["Go","Postgres","Docker"]`, string(stored.Requirements))
	assert.Equal(t, 3, stored.ExperienceLevel)
	assert.Equal(t, admin.ID, stored.CreatedBy)
}

func TestPostJob_StudentForbidden(t *testing.T) {
	ts := helpers.NewTestServer(t)

	_, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Closed Co")

	studentToken, _ := helpers.CreateAndLoginStudent(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/job/admin/post-job", studentToken, postJobBody(company.ID))

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "You are not authorized to perform this action.")

	var count int64
	ts.DB.Model(&models.Job{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestGetJobs_KeywordFilter(t *testing.T) {
	ts := helpers.NewTestServer(t)

	token, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Search Co")
	helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "Frontend Engineer")
	helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "Data Analyst")

	// Case-insensitive title match.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/job/get/jobs?keyword=frontend", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Frontend Engineer")
	assert.NotContains(t, body, "Data Analyst")

	// No keyword lists everything, company preloaded.
	allRes, allBody := ts.SendRequest(t, http.MethodGet, "/api/v1/job/get/jobs", token, nil)
	assert.Equal(t, http.StatusOK, allRes.StatusCode)
	assert.Contains(t, allBody, "Frontend Engineer")
	assert.Contains(t, allBody, "Data Analyst")
	assert.Contains(t, allBody, "Search Co")

	// No match is a 404, same as the empty portal.
	noneRes, noneBody := ts.SendRequest(t, http.MethodGet, "/api/v1/job/get/jobs?keyword=golangissimo", token, nil)
	assert.Equal(t, http.StatusNotFound, noneRes.StatusCode)
	assert.Contains(t, noneBody, "Jobs not found.")
}

func TestGetJobByID(t *testing.T) {
	ts := helpers.NewTestServer(t)

	token, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "ByID Co")
	job := helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "DevOps Engineer")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/job/get/jobs/"+job.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "DevOps Engineer")

	missingRes, missingBody := ts.SendRequest(t, http.MethodGet, "/api/v1/job/get/jobs/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, missingRes.StatusCode)
	assert.Contains(t, missingBody, "Job not found.")
}

// The admin listing only shows jobs the calling admin created.
func TestGetAdminJobs_ScopedToCreator(t *testing.T) {
	ts := helpers.NewTestServer(t)

	tokenA, adminA := helpers.CreateAndLoginAdmin(t, ts)
	_, adminB := helpers.CreateAndLoginAdmin(t, ts)

	companyA := helpers.CreateTestCompany(t, ts.DB, adminA.ID, "Admin A Co")
	companyB := helpers.CreateTestCompany(t, ts.DB, adminB.ID, "Admin B Co")
	helpers.CreateTestJob(t, ts.DB, companyA.ID, adminA.ID, "Job Of Admin A")
	helpers.CreateTestJob(t, ts.DB, companyB.ID, adminB.ID, "Job Of Admin B")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/job/admin/jobs", tokenA, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Job Of Admin A")
	assert.NotContains(t, body, "Job Of Admin B")
}
