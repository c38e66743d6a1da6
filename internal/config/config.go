// Package config loads runtime settings from the environment through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds every setting the API needs at startup.
type Config struct {
	Env       string
	Port      string
	APIPrefix string
	LogLevel  string

	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	DatabaseDSN   string

	JWTSecret         string
	TokenTTL          time.Duration
	AdminAPIKeyToken  string
	PublicAPIKeyToken string

	RabbitMQURL  string
	ReceiptPath  string
	SeedProducts bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "platzi_store")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=platzi_store port=5432 sslmode=disable")
	v.SetDefault("TOKEN_TTL", "15m")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RECEIPT_PATH", "assets/receipt.pdf")
	v.SetDefault("SEED_PRODUCTS", false)
}

// LoadEnvFiles loads the given dotenv files into the process environment.
// Files that do not exist are skipped; variables already set win.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from v, which should already have defaults and
// AutomaticEnv applied, and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env:               v.GetString("APP_ENV"),
		Port:              v.GetString("APP_PORT"),
		APIPrefix:         v.GetString("API_PREFIX"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		StoreDriver:       strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:          v.GetString("MONGO_URI"),
		MongoDatabase:     v.GetString("MONGO_DATABASE"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		TokenTTL:          v.GetDuration("TOKEN_TTL"),
		AdminAPIKeyToken:  v.GetString("ADMIN_API_KEY_TOKEN"),
		PublicAPIKeyToken: v.GetString("PUBLIC_API_KEY_TOKEN"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		ReceiptPath:       v.GetString("RECEIPT_PATH"),
		SeedProducts:      v.GetBool("SEED_PRODUCTS"),
	}

	if cfg.Port != "" && !strings.Contains(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}

// IsDevelopment reports whether the API runs with development logging.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}
