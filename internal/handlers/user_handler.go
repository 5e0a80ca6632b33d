package handlers

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	tokens      *auth.TokenManager
}

func NewUserHandler(base *BaseHandler, userService services.UserService, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		tokens:      tokens,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/login", h.Login)
		user.POST("/logout", h.Logout)
		user.PUT("/update-profile/:userId", middleware.AuthMiddleware(h.tokens), h.UpdateProfile)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Never echo the password or its hash back.
	c.JSON(http.StatusCreated, gin.H{
		"message":  "User registered successfully",
		"userId":   user.ID,
		"fullname": user.FullName,
		"email":    user.Email,
		"success":  true,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	token, err := h.userService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"success": true,
	})
}

// Logout is stateless: the token stays valid until it expires on its own.
func (h *UserHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"success": true,
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	targetID := c.Param("userId")

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.UpdateProfile(db, callerID, targetID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
		"success": true,
	})
}
