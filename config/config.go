package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Mail     MailConfig
	CV       CVConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type FirebaseConfig struct {
	CredentialsPath string
	DatabaseURL     string
	// WebAPIKey is the public client identifier used for the Identity
	// Toolkit password sign-in endpoint. Not a secret per Firebase's
	// security model.
	WebAPIKey string
}

type DatabaseConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MailConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	// RatePerMinute bounds contact submissions per client IP.
	RatePerMinute int
}

type CVConfig struct {
	// DefaultPath is the bundled resume served when settings/cvLink is empty.
	DefaultPath string
}

type AppConfig struct {
	Environment  string
	Version      string
	PollInterval time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: []string{getEnv("FRONTEND_ORIGIN", "http://localhost:5173")},
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			DatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
			WebAPIKey:       getEnv("FIREBASE_WEB_API_KEY", ""),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Mail: MailConfig{
			ServiceID:     getEnv("EMAILJS_SERVICE_ID", ""),
			TemplateID:    getEnv("EMAILJS_TEMPLATE_ID", ""),
			PublicKey:     getEnv("EMAILJS_PUBLIC_KEY", ""),
			RatePerMinute: getEnvAsInt("CONTACT_RATE_PER_MINUTE", 3),
		},
		CV: CVConfig{
			DefaultPath: getEnv("CV_DEFAULT_PATH", "assets/resume.pdf"),
		},
		App: AppConfig{
			Environment:  getEnv("APP_ENV", "development"),
			Version:      getEnv("APP_VERSION", "1.0.0"),
			PollInterval: time.Duration(getEnvAsInt("STORE_POLL_SECONDS", 5)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	if c.Firebase.DatabaseURL == "" {
		return fmt.Errorf("FIREBASE_DATABASE_URL is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
