package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Facu14carrizo/StuntProAR/internal/config"
	"github.com/Facu14carrizo/StuntProAR/internal/handlers"
	"github.com/Facu14carrizo/StuntProAR/internal/logger"
	"github.com/Facu14carrizo/StuntProAR/internal/mailer"
	"github.com/Facu14carrizo/StuntProAR/internal/middleware"
	"github.com/Facu14carrizo/StuntProAR/internal/repositories"
	"github.com/Facu14carrizo/StuntProAR/internal/routes"
	"github.com/Facu14carrizo/StuntProAR/internal/services"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories into services into handlers and
// returns the configured engine. Tests call it with their own DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	profileRepo := repositories.NewProfileRepository(gormDB)
	catalogRepo := repositories.NewCatalogRepository(gormDB)
	userRepo := repositories.NewUserRepository(gormDB)

	serviceContainer := services.NewContainer(
		profileRepo,
		catalogRepo,
		userRepo,
		mailer.New(cfg.Email),
	)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}
