package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/kasule/wagepay/internal/pkg/config"
	"github.com/kasule/wagepay/internal/pkg/database"
	"github.com/kasule/wagepay/internal/pkg/health"
	"github.com/kasule/wagepay/internal/pkg/logger"
	"github.com/kasule/wagepay/internal/pkg/middleware"
	natspkg "github.com/kasule/wagepay/internal/pkg/nats"
	"github.com/kasule/wagepay/internal/pkg/server"
	"github.com/kasule/wagepay/services/withdrawals/gateway"
	"github.com/kasule/wagepay/services/withdrawals/handler"
	httpHandler "github.com/kasule/wagepay/services/withdrawals/handler/http"
	"github.com/kasule/wagepay/services/withdrawals/repository"
	"github.com/kasule/wagepay/services/withdrawals/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "withdrawals-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/withdrawals.env"
	}
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Initialize repository
	withdrawalRepo := repository.NewWithdrawalRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize Gateway
	withdrawalGW := gateway.NewWithdrawalGW(configs, natsClient)

	// Initialize UseCase
	withdrawalUC := usecase.NewWithdrawalUC(withdrawalRepo, withdrawalGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(withdrawalUC)
	withdrawalHandler := httpHandler.NewWithdrawalHandler(withdrawalUC)

	// Initialize handlers
	h := handler.NewHandler(authHandler, withdrawalHandler, redisClient.Client, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(middleware.DefaultPanicRecoveryConfig(zapLogger)))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "postgres", Check: postgresClient.Ping},
		health.Check{Name: "redis", Check: redisClient.Ping},
		health.Check{Name: "nats", Check: func(context.Context) error { return natsClient.Ping() }},
	)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	srv.OnShutdown(func() { natsClient.Close() })
	srv.OnShutdown(func() { redisClient.Close() })
	srv.OnShutdown(func() { postgresClient.Close() })
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
