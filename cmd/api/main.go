package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/WynstelleID/finance-bot/internal/bot"
	"github.com/WynstelleID/finance-bot/internal/config"
	"github.com/WynstelleID/finance-bot/internal/database"
	"github.com/WynstelleID/finance-bot/internal/handlers"
	"github.com/WynstelleID/finance-bot/internal/logger"
	"github.com/WynstelleID/finance-bot/internal/middleware"
	"github.com/WynstelleID/finance-bot/internal/services"
	"github.com/WynstelleID/finance-bot/internal/spreadsheet"
	"github.com/WynstelleID/finance-bot/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services and the command dispatcher
	db := dbManager.DB()
	excel := spreadsheet.NewExcel()
	userService := services.NewUserService(db)
	reportService := services.NewReportService(db, excel)
	dispatcher := bot.NewDispatcher(db, excel)

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(dispatcher)
	healthHandler := handlers.NewHealthHandler(dbManager)
	reportHandler := handlers.NewReportHandler(userService, reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())

	router.GET("/", healthHandler.Home)
	router.GET("/health", healthHandler.Health)
	router.POST("/webhook", webhookHandler.Receive)
	router.GET("/webhook", webhookHandler.Status)
	router.GET("/download_report/:number/:period", reportHandler.Download)

	log.Infof("Starting finance bot server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
