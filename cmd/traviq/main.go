package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traviq/traviq-backend/internal/pkg/config"
	"github.com/traviq/traviq-backend/internal/pkg/health"
	"github.com/traviq/traviq-backend/internal/pkg/logger"
	"github.com/traviq/traviq-backend/internal/pkg/middleware"
	"github.com/traviq/traviq-backend/internal/pkg/server"
	"github.com/traviq/traviq-backend/internal/pkg/store"
	departmentHandler "github.com/traviq/traviq-backend/services/department/handler"
	departmentHTTP "github.com/traviq/traviq-backend/services/department/handler/http"
	departmentRepository "github.com/traviq/traviq-backend/services/department/repository"
	departmentUsecase "github.com/traviq/traviq-backend/services/department/usecase"
	touristHandler "github.com/traviq/traviq-backend/services/tourist/handler"
	touristHTTP "github.com/traviq/traviq-backend/services/tourist/handler/http"
	touristRepository "github.com/traviq/traviq-backend/services/tourist/repository"
	touristUsecase "github.com/traviq/traviq-backend/services/tourist/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	appName := "traviq-backend"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Seed the in-memory collections with the demonstration fixtures
	dataStore := store.NewSeeded()

	// Initialize repositories
	touristRepo := touristRepository.NewTouristRepo(dataStore)
	departmentRepo := departmentRepository.NewDepartmentRepo(dataStore)

	// Initialize use cases
	touristUC := touristUsecase.NewTouristUC(touristRepo)
	departmentUC := departmentUsecase.NewDepartmentUC(departmentRepo)

	// Handlers for HTTP
	authHandler := touristHTTP.NewAuthHandler(touristUC, configs.Uploads)
	liveHandler := touristHTTP.NewTouristHandler(touristUC)
	dashboardHandler := departmentHTTP.NewDashboardHandler(departmentUC)
	deptHandler := departmentHTTP.NewDepartmentHandler(departmentUC)

	touristRoutes := touristHandler.NewHandler(authHandler, liveHandler)
	departmentRoutes := departmentHandler.NewHandler(dashboardHandler, deptHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, dataStore)

	// Serve uploaded documents
	e.Static(configs.Uploads.PublicPath, configs.Uploads.Dir)

	// Register service routes
	touristRoutes.RegisterRoutes(e)
	departmentRoutes.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
