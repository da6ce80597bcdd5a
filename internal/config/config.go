package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Contact submission modes.
const (
	ContactModeSimulate = "simulate"
	ContactModeStore    = "store"
)

type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Contact  ContactConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	Effects  EffectsConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type LoggingConfig struct {
	Level string
	File  string
}

type ContactConfig struct {
	Mode  string
	Delay time.Duration
}

type DatabaseConfig struct {
	Path            string
	RetentionMonths int
}

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

// Enabled reports whether credentials are present; without them no mail is sent.
func (s SMTPConfig) Enabled() bool {
	return s.User != "" && s.Pass != ""
}

type AdminConfig struct {
	Username string
	Password string
}

type EffectsConfig struct {
	DecodeInterval time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Contact: ContactConfig{
			Mode:  strings.ToLower(getEnv("CONTACT_MODE", ContactModeSimulate)),
			Delay: time.Duration(getEnvInt("CONTACT_DELAY_MS", 2000)) * time.Millisecond,
		},
		Database: DatabaseConfig{
			Path:            getEnv("DATABASE_PATH", "data/portfolio.db"),
			RetentionMonths: getEnvInt("VISITOR_RETENTION_MONTHS", 12),
		},
		SMTP: SMTPConfig{
			Host:    getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:    getEnv("SMTP_PORT", "587"),
			User:    getEnv("SMTP_USER", ""),
			Pass:    getEnv("SMTP_PASS", ""),
			ToEmail: getEnv("TO_EMAIL", "contact@pillar.ai"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Effects: EffectsConfig{
			DecodeInterval: time.Duration(getEnvInt("DECODE_INTERVAL_MS", 30)) * time.Millisecond,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	switch c.Contact.Mode {
	case ContactModeSimulate, ContactModeStore:
	default:
		return fmt.Errorf("CONTACT_MODE must be %q or %q, got %q", ContactModeSimulate, ContactModeStore, c.Contact.Mode)
	}
	if c.Contact.Delay < 0 {
		return fmt.Errorf("CONTACT_DELAY_MS must not be negative")
	}
	if c.Contact.Mode == ContactModeStore && c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required when CONTACT_MODE=store")
	}
	if c.Database.RetentionMonths <= 0 {
		return fmt.Errorf("VISITOR_RETENTION_MONTHS must be positive")
	}
	if c.Effects.DecodeInterval <= 0 {
		return fmt.Errorf("DECODE_INTERVAL_MS must be positive")
	}
	return nil
}

// StoreEnabled reports whether submissions and visitors are persisted.
func (c *Config) StoreEnabled() bool {
	return c.Contact.Mode == ContactModeStore
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
