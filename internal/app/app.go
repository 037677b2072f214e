package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/database"
	"github.com/Abdullah149081/career-connect-backend/internal/config"
	"github.com/Abdullah149081/career-connect-backend/internal/email"
	"github.com/Abdullah149081/career-connect-backend/internal/handlers"
	"github.com/Abdullah149081/career-connect-backend/internal/logger"
	"github.com/Abdullah149081/career-connect-backend/internal/middleware"
	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
	"github.com/Abdullah149081/career-connect-backend/internal/routes"
	"github.com/Abdullah149081/career-connect-backend/internal/services"
	"github.com/Abdullah149081/career-connect-backend/internal/storage"
	"github.com/Abdullah149081/career-connect-backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine. Tests call it directly with
// their own config and database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.FromAppConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailService := email.NewSMTPProvider(email.FromAppConfig(cfg), email.NewTemplateManager())

	serviceContainer := initializeServices(emailService, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(emailService email.Provider, storageInstance storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	categoryRepo := repositories.NewCategoryRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	resumeRepo := repositories.NewResumeRepository()
	reviewRepo := repositories.NewReviewRepository()
	notificationRepo := repositories.NewNotificationRepository()

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, refreshTokenRepo, emailService),
		JobService:          services.NewJobService(jobRepo, userRepo, categoryRepo),
		CategoryService:     services.NewCategoryService(categoryRepo),
		ApplicationService:  services.NewApplicationService(applicationRepo, jobRepo, userRepo, resumeRepo, notificationRepo, emailService),
		ResumeService:       services.NewResumeService(resumeRepo, userRepo, storageInstance),
		ReviewService:       services.NewReviewService(reviewRepo, userRepo),
		DashboardService:    services.NewDashboardService(jobRepo, applicationRepo, resumeRepo, reviewRepo, userRepo),
		NotificationService: services.NewNotificationService(notificationRepo),
		EmailService:        emailService,
		Storage:             storageInstance,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		JobHandler:          handlers.NewJobHandler(baseHandler, container.JobService),
		CategoryHandler:     handlers.NewCategoryHandler(baseHandler, container.CategoryService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		ResumeHandler:       handlers.NewResumeHandler(baseHandler, container.ResumeService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, container.ReviewService),
		DashboardHandler:    handlers.NewDashboardHandler(baseHandler, container.DashboardService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
