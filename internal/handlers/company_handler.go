package handlers

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
	tokens         *auth.TokenManager
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService, tokens *auth.TokenManager) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
		tokens:         tokens,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	company := rg.Group("/company")
	company.Use(middleware.AuthMiddleware(h.tokens))
	{
		company.POST("/register-company", h.RegisterCompany)
		company.GET("/get-companies", h.GetCompanies)
		company.GET("/get-company/:id", h.GetCompanyByID)
		company.PUT("/update-company/:id", h.UpdateCompany)
	}
}

func (h *CompanyHandler) RegisterCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	company, err := h.companyService.Register(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully.",
		"company": company,
		"success": true,
	})
}

func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	db := h.GetDB(c)

	companies, err := h.companyService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"success":   true,
	})
}

func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	db := h.GetDB(c)

	company, err := h.companyService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"company": company,
		"success": true,
	})
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	company, err := h.companyService.Update(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Company information updated.",
		"company": company,
		"success": true,
	})
}
