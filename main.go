package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookie/cache"
	"bookie/database"
	"bookie/jobs"
	"bookie/logger"
	"bookie/metrics"
	"bookie/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger.Init("bookie")
	defer logger.L.Sync()

	database.Connect()

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		if err := cache.Connect(addr); err != nil {
			logger.L.Warn("redis unavailable, snapshot cache disabled", zap.Error(err))
		}
	}

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")
	metricsPort := os.Getenv("METRICS_PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}
	if metricsPort == "" {
		metricsPort = "9090"
	}

	app := fiber.New()
	routes.Setup(app)
	jobs.StartReconcileScheduler()

	metricsSrv := metrics.StartServer(metricsPort, func(ctx context.Context) error {
		db, err := database.DB.DB()
		if err != nil {
			return err
		}
		return db.PingContext(ctx)
	})

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.L.Info("server running", zap.String("addr", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.L.Panic("failed to start server", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.L.Info("gracefully shutting down")
	if err := app.Shutdown(); err != nil {
		logger.L.Fatal("server forced to shutdown", zap.Error(err))
	}
	_ = metricsSrv.Shutdown(context.Background())
	logger.L.Info("server exited cleanly")
}
