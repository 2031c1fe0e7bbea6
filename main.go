// File: clubroom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubroom/config"
	"clubroom/cron"
	"clubroom/database"
	availabilityRepo "clubroom/database/repository/availability"
	"clubroom/handlers"
	"clubroom/middleware"
	"clubroom/routes"
	"clubroom/services/facet"
	"clubroom/services/schedule"
	"clubroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitViewCache()
	utils.InitFacetCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo: availRepo,
		Cache: &schedule.RedisViewCache{
			Client: utils.GetViewCacheClient(),
			TTL:    time.Duration(config.AppConfig.ViewCacheTTL) * time.Second,
		},
		DisplayStartHour: config.AppConfig.DisplayStartHour,
		DisplayEndHour:   config.AppConfig.DisplayEndHour,
	}
	facetCatalog := facet.NewRedisCatalog(availRepo, utils.GetFacetCacheClient())

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, facetCatalog)

	// Background facet refresh worker.
	cron.InitFacetWorker(facetCatalog)

	// Periodic dependency health checks backing /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetViewCacheClient(), utils.GetFacetCacheClient()},
		database.MongoClient,
	)

	// Register routes.
	routes.RegisterRoutes(router, scheduleHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
