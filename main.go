// File: palmcove/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"palmcove/config"
	"palmcove/database"
	"palmcove/database/repository"
	memoryRepo "palmcove/database/repository/memory"
	mongoRepo "palmcove/database/repository/mongo"
	"palmcove/handlers"
	"palmcove/middleware"
	"palmcove/routes"
	"palmcove/services/booking"
	"palmcove/services/catalog"
	"palmcove/services/contact"
	"palmcove/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	loc, err := cfg.Location()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	monitor := utils.NewHealthMonitor()

	// Storage.
	var (
		store       repository.Store
		mongoClient *mongo.Client
	)
	switch cfg.StorageDriver {
	case config.DriverMongo:
		mongoClient, err = database.Connect(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		store, err = mongoRepo.NewMongoStore(ctx, mongoClient.Database(cfg.DatabaseName), repository.DefaultRooms())
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize mongo store: %v", err)
		}
	default:
		store = memoryRepo.NewMemoryStore(repository.DefaultRooms())
	}
	monitor.Register("store", store.Ping)
	logger.Info("Storage ready", zap.String("driver", cfg.StorageDriver))

	// Room catalog cache.
	var (
		roomCache   catalog.Cache
		redisClient *redis.Client
	)
	switch cfg.CacheDriver {
	case config.DriverRedis:
		redisClient, err = utils.NewCacheClient(ctx, cfg)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		roomCache = catalog.NewRedisCache(redisClient)
		monitor.Register("redis", func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
	default:
		roomCache = catalog.NewMemoryCache()
	}

	// services.
	bookingService := booking.NewBookingService(store, logger, loc)
	contactService := contact.NewContactService(store, logger)
	roomCatalog := catalog.NewRoomCatalog(store, roomCache, cfg.RoomCacheTTL, logger)

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewHealthHandler(monitor),
		handlers.NewRoomHandler(roomCatalog),
		handlers.NewContactHandler(contactService),
		handlers.NewBookingHandler(bookingService),
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins())

	monitor.Start(ctx, time.Minute)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("main: failed to close redis", zap.Error(err))
		}
	}
	if mongoClient != nil {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Warn("main: failed to disconnect mongo", zap.Error(err))
		}
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
