package routes

import (
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/ws"

	_ "jobportal_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes attaches every HTTP and WebSocket route to the engine.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
	tokens *auth.TokenManager,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)

		api.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Realtime endpoint: connections are accepted and logged, nothing is
	// pushed over them yet.
	wsGroup := ginRouter.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware(tokens))
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}
	logger.Info("WebSocket route /ws registered")
}
