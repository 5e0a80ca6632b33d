package app

import (
	"fmt"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"
	"jobportal_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run loads configuration, connects to the database and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
	)
}

// SetupRouter wires repositories, services, handlers and middleware into a
// gin engine. The config object is passed by reference; nothing reads global
// state.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	serviceContainer := initializeServices(tokens)
	appHandlers := initializeHandlers(serviceContainer, tokens)
	wsHandler := ws.NewWebSocketHandler()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	routes.RegisterRoutes(router, appHandlers, wsHandler, tokens)

	return router
}

func initializeServices(tokens *auth.TokenManager) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	companyRepo := repositories.NewCompanyRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	return &services.ServiceContainer{
		UserService:        services.NewUserService(userRepo, tokens),
		CompanyService:     services.NewCompanyService(companyRepo),
		JobService:         services.NewJobService(jobRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer, tokens *auth.TokenManager) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:        handlers.NewUserHandler(baseHandler, sc.UserService, tokens),
		CompanyHandler:     handlers.NewCompanyHandler(baseHandler, sc.CompanyService, tokens),
		JobHandler:         handlers.NewJobHandler(baseHandler, sc.JobService, tokens),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, sc.ApplicationService, tokens),
	}
}
