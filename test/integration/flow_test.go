package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobportal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullHiringFlow walks the portal end to end: an admin registers a
// company and posts a job, a student finds it and applies, the admin reviews
// the applicants and accepts, and the student sees the accepted application.
func TestFullHiringFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	// Admin registers the company.
	companyRes, companyBody := ts.SendRequest(t, http.MethodPost, "/api/v1/company/register-company", adminToken, map[string]interface{}{
		"companyName": "Flow Systems",
		"description": "Infrastructure team",
		"website":     "https://flow.example.com",
		"location":    "Almaty",
	})
	require.Equal(t, http.StatusCreated, companyRes.StatusCode, "response: %s", companyBody)

	var companyResponse struct {
		Company struct {
			ID string `json:"id"`
		} `json:"company"`
	}
	require.NoError(t, json.Unmarshal([]byte(companyBody), &companyResponse))
	require.NotEmpty(t, companyResponse.Company.ID)

	// Admin posts a job under it.
	jobRes, jobBody := ts.SendRequest(t, http.MethodPost, "/api/v1/job/admin/post-job", adminToken, map[string]interface{}{
		"title":        "Platform Engineer",
		"description":  "Own the deployment pipeline",
		"requirements": "Go,Kubernetes,Terraform",
		"salary":       800000,
		"location":     "Almaty",
		"jobType":      "Full-time",
		"experience":   "3",
		"position":     1,
		"companyId":    companyResponse.Company.ID,
	})
	require.Equal(t, http.StatusCreated, jobRes.StatusCode, "response: %s", jobBody)

	var jobResponse struct {
		Job struct {
			ID string `json:"id"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal([]byte(jobBody), &jobResponse))
	require.NotEmpty(t, jobResponse.Job.ID)

	// Student searches and finds the posting.
	studentToken, student := helpers.CreateAndLoginStudent(t, ts)

	searchRes, searchBody := ts.SendRequest(t, http.MethodGet, "/api/v1/job/get/jobs?keyword=platform", studentToken, nil)
	require.Equal(t, http.StatusOK, searchRes.StatusCode)
	assert.Contains(t, searchBody, "Platform Engineer")
	assert.Contains(t, searchBody, "Flow Systems")

	// Student applies.
	applyRes, applyBody := ts.SendRequest(t, http.MethodPost, "/api/v1/application/apply/"+jobResponse.Job.ID, studentToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode, "response: %s", applyBody)

	// Admin reviews the applicants.
	applicantsRes, applicantsBody := ts.SendRequest(t, http.MethodGet, "/api/v1/application/"+jobResponse.Job.ID+"/applicants", adminToken, nil)
	require.Equal(t, http.StatusOK, applicantsRes.StatusCode, "response: %s", applicantsBody)
	assert.Contains(t, applicantsBody, student.Email)

	var applicantsResponse struct {
		Job struct {
			Applications []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"applications"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal([]byte(applicantsBody), &applicantsResponse))
	require.Len(t, applicantsResponse.Job.Applications, 1)
	assert.Equal(t, "pending", applicantsResponse.Job.Applications[0].Status)

	// Admin accepts the application.
	statusRes, statusBody := ts.SendRequest(t, http.MethodPut, "/api/v1/application/status/"+applicantsResponse.Job.Applications[0].ID+"/update", adminToken, map[string]interface{}{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, statusRes.StatusCode, "response: %s", statusBody)

	// Student sees the accepted application with the job attached.
	appliedRes, appliedBody := ts.SendRequest(t, http.MethodGet, "/api/v1/application/get/appliedjobs", studentToken, nil)
	require.Equal(t, http.StatusOK, appliedRes.StatusCode)
	assert.Contains(t, appliedBody, "accepted")
	assert.Contains(t, appliedBody, "Platform Engineer")
}
