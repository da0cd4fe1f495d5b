package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/adapters/catalog"
	"github.com/clynicx/portal-service/internal/adapters/handler"
	"github.com/clynicx/portal-service/internal/adapters/metrics"
	"github.com/clynicx/portal-service/internal/adapters/middleware"
	"github.com/clynicx/portal-service/internal/adapters/repository"
	"github.com/clynicx/portal-service/internal/adapters/slot"
	"github.com/clynicx/portal-service/internal/adapters/storage"
	"github.com/clynicx/portal-service/internal/config"
	"github.com/clynicx/portal-service/internal/core/ports"
	"github.com/clynicx/portal-service/internal/core/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var slots ports.SlotStore
	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		slots = slot.NewMemorySlot()
		logger.Warn("using in-memory session backend; sessions do not survive restarts")
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()

		// A down Redis is not fatal: pages answer with the loading state
		// until it comes back.
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("redis not reachable at startup", zap.Error(err))
		} else {
			logger.Info("connected to redis", zap.String("addr", cfg.RedisAddress))
		}
		slots = slot.NewRedisSlot(redisClient, cfg.SessionTTL, config.NewCircuitBreaker(config.BreakerRedisSession, logger))
	}

	var directory ports.ProfileDirectory
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		defer db.Close()
		directory = repository.NewSQLDirectory(db, config.NewCircuitBreaker(config.BreakerDirectory, logger))
	} else {
		directory = repository.NewMemoryDirectory()
		logger.Warn("DB_CONNECTION_STRING not set; signups are kept in memory")
	}

	var reports ports.ReportStorage
	if cfg.Minio.Enabled() {
		minioReports, err := storage.NewMinioReports(cfg.Minio)
		if err != nil {
			logger.Fatal("failed to init report storage", zap.Error(err))
		}
		reports = minioReports
	}

	appMetrics := metrics.New()
	clinical := catalog.New()

	authService := services.NewAuthService(
		directory,
		cfg.AuthLatency,
		services.ParseRoleInference(cfg.RoleInference),
		logger,
	)
	patientViews := services.NewPatientViews(clinical, reports)
	doctorViews := services.NewDoctorViews(clinical, time.Now)

	secure := cfg.Env == config.EnvProduction
	flashes := handler.NewFlashes(cfg.FlashSecret, secure, logger)

	router := handler.NewRouter(handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService, flashes, appMetrics, logger),
		Pages:         handler.NewPageHandler(patientViews, doctorViews, logger),
		Health:        handler.NewHealthHandler(slots, directory, cfg.Version, logger),
		Slots:         slots,
		OriginTokens:  middleware.NewOriginTokens(cfg.OriginPrivateKey, cfg.OriginPublicKey),
		SecureCookie:  secure,
		AuthRateLimit: cfg.AuthRateLimit,
		Metrics:       appMetrics,
		Logger:        logger,
	})

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
