package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/adapters/messaging"
	"github.com/clynicx/portal-service/internal/adapters/outbox"
	"github.com/clynicx/portal-service/internal/config"
)

func main() {
	cfg, err := config.LoadRelayConfig()
	if err != nil {
		log.Fatalf("relay: failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("relay: failed to init logger: %v", err)
	}
	defer logger.Sync()
	logger = logger.Named("relay")

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	broker, err := messaging.NewRabbitMQBroker(cfg.RabbitMQURL, cfg.ProfileQueueName, logger)
	if err != nil {
		logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
	}
	defer broker.Close()
	logger.Info("connected to rabbitmq", zap.String("queue", cfg.ProfileQueueName))

	worker := outbox.NewRelay(db, cfg.DatabaseURL, broker, logger)

	healthMux := http.NewServeMux()
	healthMux.HandleFunc("GET /health", probe(worker.IsHealthy))
	healthMux.HandleFunc("GET /health/live", probe(worker.IsHealthy))
	healthMux.HandleFunc("GET /health/ready", probe(worker.IsReady))

	healthServer := &http.Server{
		Addr:              cfg.HealthAddr,
		Handler:           healthMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting health server", zap.String("addr", cfg.HealthAddr))
		if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server error", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		if err := worker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.Error("worker failed, shutting down", zap.Error(err))
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down health server", zap.Error(err))
	}

	logger.Info("shutdown complete")
}

func probe(check func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, httpStatus := "UP", http.StatusOK
		if !check() {
			status, httpStatus = "DOWN", http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(httpStatus)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":    status,
			"component": "outbox-relay",
		})
	}
}
