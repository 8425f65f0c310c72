package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	StripeSecretKey                  string `mapstructure:"STRIPE_SECRET_KEY"`
	StripePublishableKey             string `mapstructure:"STRIPE_PUBLISHABLE_KEY"`
	JWTSecretKey                     string `mapstructure:"JWT_SECRET_KEY"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	StaticDir                        string `mapstructure:"STATIC_DIR"`
	AuthRequired                     bool   `mapstructure:"AUTH_REQUIRED"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	RabbitMQURL            string `mapstructure:"RABBITMQ_URL"`
	ReservationEventsQueue string `mapstructure:"RESERVATION_EVENTS_QUEUE"`

	SendGridAPIKey    string `mapstructure:"SENDGRID_API_KEY"`
	SendGridFromEmail string `mapstructure:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string `mapstructure:"SENDGRID_FROM_NAME"`

	DriftAuditSchedule string `mapstructure:"DRIFT_AUDIT_SCHEDULE"`

	PaymentAmount   int64  `mapstructure:"PAYMENT_AMOUNT"`
	PaymentCurrency string `mapstructure:"PAYMENT_CURRENCY"`
}

var envKeys = []string{
	"PORT", "GIN_MODE",
	"FIREBASE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS", "FIREBASE_SERVICE_ACCOUNT_JSON_BASE64",
	"STRIPE_SECRET_KEY", "STRIPE_PUBLISHABLE_KEY", "JWT_SECRET_KEY",
	"CLIENT_URL", "STATIC_DIR", "AUTH_REQUIRED",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL",
	"RABBITMQ_URL", "RESERVATION_EVENTS_QUEUE",
	"SENDGRID_API_KEY", "SENDGRID_FROM_EMAIL", "SENDGRID_FROM_NAME",
	"DRIFT_AUDIT_SCHEDULE",
	"PAYMENT_AMOUNT", "PAYMENT_CURRENCY",
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "3000")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "30s")
	v.SetDefault("RESERVATION_EVENTS_QUEUE", "reservation-events")
	v.SetDefault("SENDGRID_FROM_NAME", "Wuquf")
	v.SetDefault("PAYMENT_AMOUNT", 1999)
	v.SetDefault("PAYMENT_CURRENCY", "eur")

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.StripeSecretKey == "" {
		return errors.New("STRIPE_SECRET_KEY is required")
	}
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if c.PaymentAmount <= 0 {
		return errors.New("PAYMENT_AMOUNT must be positive")
	}
	if c.SendGridAPIKey != "" && c.SendGridFromEmail == "" {
		return errors.New("SENDGRID_FROM_EMAIL is required when SENDGRID_API_KEY is set")
	}
	return nil
}

// IsRelease reports whether gin should run in release mode.
func (c *Config) IsRelease() bool {
	return strings.EqualFold(c.GinMode, "release")
}
