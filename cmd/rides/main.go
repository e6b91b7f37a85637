package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ridelink/ridelink/internal/pkg/config"
	"github.com/ridelink/ridelink/internal/pkg/database"
	"github.com/ridelink/ridelink/internal/pkg/health"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	nsqpkg "github.com/ridelink/ridelink/internal/pkg/nsq"
	"github.com/ridelink/ridelink/internal/pkg/server"
	wspkg "github.com/ridelink/ridelink/internal/pkg/websocket"
	"github.com/ridelink/ridelink/services/rides/gateway"
	"github.com/ridelink/ridelink/services/rides/handler"
	httpHandler "github.com/ridelink/ridelink/services/rides/handler/http"
	wsHandler "github.com/ridelink/ridelink/services/rides/handler/websocket"
	"github.com/ridelink/ridelink/services/rides/registry"
	"github.com/ridelink/ridelink/services/rides/repository"
	"github.com/ridelink/ridelink/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/rides.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Active-ride registry with its staleness sweeper
	reg := registry.New(time.Duration(configs.Match.StalenessWindowSec) * time.Second)
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	reg.StartSweeper(sweeperCtx, time.Duration(configs.Match.SweepIntervalSec)*time.Second)

	// Initialize repository
	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateways
	rideGW := gateway.NewRideGW(producer)
	routingClient := gateway.NewRoutingClient(configs.Routing)

	// WebSocket connection manager doubles as the broadcast fan-out
	manager := wspkg.NewManager(configs.JWT)

	// Initialize use case
	rideUC := usecase.NewRideUC(configs, reg, rideRepo, rideGW, routingClient, manager)

	// Handlers
	bookingHandler := httpHandler.NewBookingHandler(rideUC)
	wsManager := wsHandler.NewWebSocketManager(rideUC, manager)
	h := handler.NewHandler(rideUC, bookingHandler, wsManager, configs)

	if err := h.InitNSQConsumers(configs.NSQ.Address); err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}
	defer h.StopConsumers()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": health.NewPostgresChecker(postgresClient),
		"redis":    health.NewRedisChecker(redisClient),
	})
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}

	reg.Clear()
}
