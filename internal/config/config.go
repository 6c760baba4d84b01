package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Billing  BillingConfig
	Identity IdentityConfig
	Payment  PaymentConfig
	Realtime RealtimeConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// BillingConfig holds the hosted checkout provider settings
type BillingConfig struct {
	SecretKey      string
	PublishableKey string
	AppBaseURL     string
	Currency       string
}

// Configured reports whether a secret key is present.
func (c BillingConfig) Configured() bool {
	return c.SecretKey != ""
}

// IdentityConfig holds identity provider settings
type IdentityConfig struct {
	WebhookSecret string
	ClientID      string
	JWKSURL       string
}

// PaymentConfig holds the gateway secret used to check transaction signatures
type PaymentConfig struct {
	SignatureSecret string
}

// RealtimeConfig holds relay and location retention settings
type RealtimeConfig struct {
	Channel           string
	LocationRetention time.Duration
	PruneInterval     time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", ""),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "homeservice"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Billing: BillingConfig{
			SecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
			PublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
			AppBaseURL:     strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3000"), "/"),
			Currency:       strings.ToLower(getEnv("BILLING_CURRENCY", "inr")),
		},
		Identity: IdentityConfig{
			WebhookSecret: getEnv("CLERK_WEBHOOK_SECRET", ""),
			ClientID:      getEnv("CLERK_CLIENT_ID", ""),
			JWKSURL:       getEnv("CLERK_JWKS_URL", ""),
		},
		Payment: PaymentConfig{
			SignatureSecret: getEnv("PAYMENT_SIGNATURE_SECRET", ""),
		},
		Realtime: RealtimeConfig{
			Channel:           getEnv("REALTIME_CHANNEL", "realtime:events"),
			LocationRetention: getEnvAsDuration("LOCATION_RETENTION", 24*time.Hour),
			PruneInterval:     getEnvAsDuration("LOCATION_PRUNE_INTERVAL", 10*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
