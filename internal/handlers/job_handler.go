package handlers

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	tokens     *auth.TokenManager
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, tokens *auth.TokenManager) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		tokens:      tokens,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	job := rg.Group("/job")
	job.Use(middleware.AuthMiddleware(h.tokens))
	{
		job.GET("/get/jobs", h.GetAllJobs)
		job.GET("/get/jobs/:id", h.GetJobByID)

		admin := job.Group("/admin")
		admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
		{
			admin.POST("/post-job", h.PostJob)
			admin.GET("/jobs", h.GetAdminJobs)
		}
	}
}

func (h *JobHandler) PostJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PostJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Post(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "New job created successfully.",
		"job":     job,
		"success": true,
	})
}

func (h *JobHandler) GetAllJobs(c *gin.Context) {
	keyword := c.Query("keyword")
	db := h.GetDB(c)

	jobs, err := h.jobService.Search(db, keyword)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":    jobs,
		"success": true,
	})
}

func (h *JobHandler) GetJobByID(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":     job,
		"success": true,
	})
}

func (h *JobHandler) GetAdminJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	jobs, err := h.jobService.ListByCreator(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":    jobs,
		"success": true,
	})
}
