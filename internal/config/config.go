package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Supabase project; the key signs and verifies bearer tokens
	SupabaseURL string
	SupabaseKey string

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Tokens issued by /auth/login
	JWTExpirationDur time.Duration

	// How long a request waits for the per-user write slot
	OperationTimeout time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables. It fails when the
// Supabase settings are missing, because no request could be authenticated.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("ENV", "development"),

		SupabaseURL: strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "postgres"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
	}

	if config.SupabaseURL == "" || config.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_KEY must be set")
	}

	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.OperationTimeout = getDuration("OPERATION_TIMEOUT", 15*time.Second)

	appConfig = config
	return config, nil
}

// Set installs cfg as the process configuration. Tests use it to avoid
// depending on the environment.
func Set(cfg *Config) {
	appConfig = cfg
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// TokenIssuer is the issuer claim expected on bearer tokens.
func (c *Config) TokenIssuer() string {
	return c.SupabaseURL + "/auth/v1"
}

// PostgresURL returns the connection URL used by both gorm and golang-migrate.
func (c *Config) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, fallback)
		return fallback
	}
	return d
}
