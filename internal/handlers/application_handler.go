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

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	tokens             *auth.TokenManager
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, tokens *auth.TokenManager) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		tokens:             tokens,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	application := rg.Group("/application")
	application.Use(middleware.AuthMiddleware(h.tokens))
	{
		application.POST("/apply/:id", h.ApplyJob)
		application.GET("/get/appliedjobs", h.GetAppliedJobs)

		// Reviewing applicants and moving an application through its
		// lifecycle is an admin concern.
		application.GET("/:id/applicants", middleware.RoleMiddleware(models.UserRoleAdmin), h.GetApplicants)
		application.PUT("/status/:id/update", middleware.RoleMiddleware(models.UserRoleAdmin), h.UpdateStatus)
	}
}

func (h *ApplicationHandler) ApplyJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID := c.Param("id")

	db := h.GetDB(c)

	if _, err := h.applicationService.Apply(db, userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job applied successfully.",
		"success": true,
	})
}

func (h *ApplicationHandler) GetAppliedJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListAppliedJobs(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"application": applications,
		"success":     true,
	})
}

func (h *ApplicationHandler) GetApplicants(c *gin.Context) {
	jobID := c.Param("id")

	db := h.GetDB(c)

	job, applications, err := h.applicationService.ListApplicants(db, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	job.Applications = applications

	c.JSON(http.StatusOK, gin.H{
		"job":     job,
		"success": true,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID := c.Param("id")

	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.applicationService.UpdateStatus(db, applicationID, req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully.",
		"success": true,
	})
}
