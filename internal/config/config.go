package config

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

type Config struct {
	Port           string
	Env            string
	Version        string
	LogLevel       string
	AllowedOrigins []string

	SessionBackend string
	RedisAddress   string
	RedisPassword  string
	SessionTTL     time.Duration

	// DatabaseURL is optional; without it signups live in memory.
	DatabaseURL string

	OriginPrivateKey *rsa.PrivateKey
	OriginPublicKey  *rsa.PublicKey
	FlashSecret      string

	AuthLatency   time.Duration
	RoleInference string
	// AuthRateLimit caps auth API calls per client IP per minute; zero
	// disables the limit.
	AuthRateLimit int

	Minio MinioConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	URLTTL    time.Duration
}

func (m MinioConfig) Enabled() bool {
	return m.Endpoint != "" && m.Bucket != ""
}

// Load reads the API configuration from the environment, after merging
// a .env file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", EnvDevelopment),
		Version:        getEnv("APP_VERSION", "unknown"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		SessionBackend: strings.ToLower(getEnv("SESSION_BACKEND", SessionBackendRedis)),
		RedisAddress:   getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		DatabaseURL:    os.Getenv("DB_CONNECTION_STRING"),
		FlashSecret:    os.Getenv("FLASH_SECRET"),
		RoleInference:  getEnv("ROLE_INFERENCE", "email"),
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    os.Getenv("MINIO_BUCKET"),
			Region:    getEnv("MINIO_REGION", "us-east-1"),
		},
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.AuthLatency, err = getDuration("AUTH_LATENCY", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.Minio.URLTTL, err = getDuration("REPORT_URL_TTL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Minio.UseSSL, err = getBool("MINIO_USE_SSL", false); err != nil {
		return nil, err
	}
	if cfg.AuthRateLimit, err = getInt("AUTH_RATE_LIMIT", 20); err != nil {
		return nil, err
	}

	switch cfg.SessionBackend {
	case SessionBackendRedis, SessionBackendMemory:
	default:
		return nil, fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q",
			SessionBackendRedis, SessionBackendMemory, cfg.SessionBackend)
	}

	if cfg.FlashSecret == "" {
		if cfg.Env == EnvProduction {
			return nil, errors.New("FLASH_SECRET environment variable is required")
		}
		cfg.FlashSecret = "clynicx-development-flash-secret"
	}

	if err := cfg.loadKeys(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadKeys reads the origin signing key pair. Outside production a
// missing pair is replaced by an ephemeral key, which logs every origin
// out on restart.
func (c *Config) loadKeys() error {
	privateKeyPath := getEnv("PRIVATE_KEY_PATH", "/etc/certs/private.pem")
	publicKeyPath := getEnv("PUBLIC_KEY_PATH", "/etc/certs/public.pem")

	privateKey, err := loadPrivateKey(privateKeyPath)
	if err == nil {
		var publicKey *rsa.PublicKey
		publicKey, err = loadPublicKey(publicKeyPath)
		if err == nil {
			c.OriginPrivateKey, c.OriginPublicKey = privateKey, publicKey
			return nil
		}
	}

	if c.Env == EnvProduction {
		return fmt.Errorf("failed to load origin signing keys: %w", err)
	}

	key, genErr := rsa.GenerateKey(rand.Reader, 2048)
	if genErr != nil {
		return fmt.Errorf("failed to generate ephemeral signing key: %w", genErr)
	}
	c.OriginPrivateKey, c.OriginPublicKey = key, &key.PublicKey
	return nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	keyData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPrivateKeyFromPEM(keyData)
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	keyData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPublicKeyFromPEM(keyData)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
