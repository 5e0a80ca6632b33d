package integration_test

import (
	"net/http"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyJob(t *testing.T) {
	ts := helpers.NewTestServer(t)

	_, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Apply Co")
	job := helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "QA Engineer")

	token, student := helpers.CreateAndLoginStudent(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/"+job.ID, token, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, "Job applied successfully.")

	var stored models.Application
	require.NoError(t, ts.DB.Where("job_id = ? AND applicant_id = ?", job.ID, student.ID).First(&stored).Error)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status, "a new application starts pending")
}

func TestApplyJob_Twice(t *testing.T) {
	ts := helpers.NewTestServer(t)

	_, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Twice Co")
	job := helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "Intern")

	token, _ := helpers.CreateAndLoginStudent(t, ts)

	firstRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/"+job.ID, token, nil)
	require.Equal(t, http.StatusCreated, firstRes.StatusCode)

	secondRes, secondBody := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/"+job.ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, secondRes.StatusCode)
	assert.Contains(t, secondBody, "You have already applied for this job.")

	var count int64
	ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestApplyJob_BadIDs(t *testing.T) {
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginStudent(t, ts)

	malformedRes, malformedBody := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, malformedRes.StatusCode)
	assert.Contains(t, malformedBody, "Invalid Job ID format.")

	missingRes, missingBody := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, missingRes.StatusCode)
	assert.Contains(t, missingBody, "Job not found.")
}

func TestGetAppliedJobs(t *testing.T) {
	ts := helpers.NewTestServer(t)

	token, _ := helpers.CreateAndLoginStudent(t, ts)

	emptyRes, emptyBody := ts.SendRequest(t, http.MethodGet, "/api/v1/application/get/appliedjobs", token, nil)
	assert.Equal(t, http.StatusNotFound, emptyRes.StatusCode)
	assert.Contains(t, emptyBody, "No Applications")

	_, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Applied Co")
	job := helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "Support Engineer")

	applyRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/"+job.ID, token, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/application/get/appliedjobs", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	// Job and its company come preloaded with each application.
	assert.Contains(t, body, "Support Engineer")
	assert.Contains(t, body, "Applied Co")
	assert.Contains(t, body, "pending")
}

func TestGetApplicants(t *testing.T) {
	ts := helpers.NewTestServer(t)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Review Co")
	job := helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "Analyst")

	studentToken, student := helpers.CreateAndLoginStudent(t, ts)
	applyRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/"+job.ID, studentToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	// Students cannot see the applicant list.
	forbiddenRes, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/application/"+job.ID+"/applicants", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, forbiddenRes.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/application/"+job.ID+"/applicants", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, student.Email, "applicant details ride along with each application")
	assert.NotContains(t, body, "password", "no credential material in the payload")
}

func TestUpdateApplicationStatus(t *testing.T) {
	ts := helpers.NewTestServer(t)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Status Co")
	job := helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "Designer")

	studentToken, student := helpers.CreateAndLoginStudent(t, ts)
	applyRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/"+job.ID, studentToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	var application models.Application
	require.NoError(t, ts.DB.Where("job_id = ? AND applicant_id = ?", job.ID, student.ID).First(&application).Error)

	// Status matching is case-insensitive, stored lowercase.
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/application/status/"+application.ID+"/update", adminToken, map[string]interface{}{
		"status": "ACCEPTED",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "response: %s", body)
	assert.Contains(t, body, "Status updated successfully.")

	var updated models.Application
	require.NoError(t, ts.DB.First(&updated, "id = ?", application.ID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)
}

func TestUpdateApplicationStatus_InvalidValue(t *testing.T) {
	ts := helpers.NewTestServer(t)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts)
	company := helpers.CreateTestCompany(t, ts.DB, admin.ID, "Invalid Status Co")
	job := helpers.CreateTestJob(t, ts.DB, company.ID, admin.ID, "Writer")

	studentToken, student := helpers.CreateAndLoginStudent(t, ts)
	applyRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/"+job.ID, studentToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	var application models.Application
	require.NoError(t, ts.DB.Where("job_id = ? AND applicant_id = ?", job.ID, student.ID).First(&application).Error)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/application/status/"+application.ID+"/update", adminToken, map[string]interface{}{
		"status": "maybe",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid status value maybe")

	// A rejected update leaves the stored status alone.
	var unchanged models.Application
	require.NoError(t, ts.DB.First(&unchanged, "id = ?", application.ID).Error)
	assert.Equal(t, models.ApplicationStatusPending, unchanged.Status)
}

func TestUpdateApplicationStatus_NotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/application/status/00000000-0000-0000-0000-000000000000/update", adminToken, map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Application not found.")
}
