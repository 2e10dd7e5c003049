package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port           string
	AllowedOrigins string
	Environment    string // development, staging, production
	StaticDir      string

	// Mail transport. When the credentials are absent the contact
	// endpoint answers 503 instead of the process refusing to start.
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	MailFrom      string
	NotifyAddress string

	// Optional shared store for tokens and rate windows. Empty means the
	// in-process stores are used.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load loads configuration from environment variables and validates for production
func Load() *Config {
	loadDotEnv()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		MailFrom:       getEnv("MAIL_FROM", ""),
		NotifyAddress:  getEnv("NOTIFY_ADDRESS", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	return cfg
}

// Validate checks configuration for security and correctness
func (c *Config) Validate() error {
	if c.MailFrom == "" {
		c.MailFrom = c.SMTPUsername
	}
	if c.NotifyAddress == "" {
		c.NotifyAddress = c.SMTPUsername
	}

	if c.IsProduction() {
		if c.AllowedOrigins == "" {
			return fmt.Errorf("ALLOWED_ORIGINS must be set in production")
		}
		if !c.MailConfigured() {
			log.Println("WARNING: mail credentials not set, contact form will answer 503")
		}
	}

	return nil
}

// MailConfigured reports whether the SMTP transport can be constructed.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != "" &&
		c.NotifyAddress != ""
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev" || c.Environment == ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
