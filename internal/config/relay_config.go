package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// RelayConfig configures the outbox relay. The relay needs the database
// and the broker; everything else has a default.
type RelayConfig struct {
	DatabaseURL      string
	RabbitMQURL      string
	ProfileQueueName string
	HealthAddr       string
	Env              string
	LogLevel         string
}

func LoadRelayConfig() (*RelayConfig, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_CONNECTION_STRING")
	if dbURL == "" {
		return nil, errors.New("DB_CONNECTION_STRING environment variable is required")
	}

	rabbitURL := os.Getenv("RABBITMQ_URL")
	if rabbitURL == "" {
		return nil, errors.New("RABBITMQ_URL environment variable is required")
	}

	return &RelayConfig{
		DatabaseURL:      dbURL,
		RabbitMQURL:      rabbitURL,
		ProfileQueueName: getEnv("PROFILE_QUEUE_NAME", "profiles"),
		HealthAddr:       getEnv("RELAY_HEALTH_ADDR", ":8090"),
		Env:              getEnv("APP_ENV", EnvDevelopment),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}, nil
}
