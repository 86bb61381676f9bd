package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorent/internal/config"
	"gorent/internal/handlers"
	"gorent/internal/middleware"
	"gorent/internal/repositories/mongodb"
	"gorent/internal/services"
	"gorent/pkg/cache"
	"gorent/pkg/database"
	"gorent/pkg/logger"
	"gorent/pkg/storage"
	"gorent/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: cfg.App.Debug,
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to mongodb")
	}
	defer db.Close()

	// The catalog cache is an optimization. When redis is disabled or
	// unreachable the app runs without it.
	var cacheService services.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Warn("redis unavailable, catalog caching disabled")
		} else {
			cacheService = services.NewCacheService(redisCache)
			defer redisCache.Close()
		}
	}

	storageProvider, err := storage.NewAWSS3Storage(cfg.Storage.AWS.Region, cfg.Storage.AWS.Bucket, cfg.Storage.AWS.CDNDomain)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize blob storage")
	}

	userRepo := mongodb.NewUserRepository(db.Database)
	vehicleRepo := mongodb.NewVehicleRepository(db.Database, cacheService)
	bookingRepo := mongodb.NewBookingRepository(db.Database)

	authService := services.NewAuthService(userRepo, storageProvider, cfg.Security.JWTSecret, cfg.Security.BcryptCost, log)
	vehicleService := services.NewVehicleService(vehicleRepo, storageProvider, log)
	bookingService := services.NewBookingService(bookingRepo, vehicleRepo, userRepo, log)
	adminService := services.NewAdminService(userRepo, vehicleRepo, bookingRepo, log)

	authHandler := handlers.NewAuthHandler(authService, log)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, log)
	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	adminHandler := handlers.NewAdminHandler(adminService, log)
	homeHandler := handlers.NewHomeHandler(vehicleService, bookingService, log)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok", "version": cfg.App.Version}
		if err := db.Ping(); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		c.JSON(http.StatusOK, status)
	})

	api := router.Group("/api/v1")
	routes.SetupHomeRoutes(api, homeHandler, cfg.Security.JWTSecret)
	routes.SetupAuthRoutes(api, authHandler, cfg.Security.JWTSecret, cfg.Storage.UploadTimeout)
	routes.SetupVehicleRoutes(api, vehicleHandler, cfg.Security.JWTSecret, cfg.Storage.UploadTimeout)
	routes.SetupBookingRoutes(api, bookingHandler, cfg.Security.JWTSecret)
	routes.SetupAdminRoutes(api, adminHandler, cfg.Security.JWTSecret)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithFields(map[string]interface{}{
			"addr": server.Addr,
			"env":  cfg.App.Environment,
		}).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}
