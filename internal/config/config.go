package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"plantoes/internal/core"
)

type Config struct {
	// HTTP Server
	Port string

	// Sessions
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	// Abuse protection
	RateLimitPerMinute int

	// Billing defaults applied to fresh sessions
	DefaultHourlyRate string
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		SessionTTL:           getEnvDuration("SESSION_TTL", 12*time.Hour),
		SessionSweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),

		DefaultHourlyRate: getEnv("DEFAULT_HOURLY_RATE", "160"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", c.SessionTTL))
	} else if c.SessionTTL > 7*24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid session TTL %v: must be at most 7 days", c.SessionTTL))
	}

	if c.SessionSweepInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid session sweep interval %v: must be at least 1 second", c.SessionSweepInterval))
	} else if c.SessionSweepInterval > c.SessionTTL {
		errors = append(errors, fmt.Sprintf("invalid session sweep interval %v: must not exceed the session TTL %v", c.SessionSweepInterval, c.SessionTTL))
	}

	if c.RateLimitPerMinute < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1 request per minute", c.RateLimitPerMinute))
	} else if c.RateLimitPerMinute > 10000 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at most 10000 requests per minute", c.RateLimitPerMinute))
	}

	if _, err := core.ParseDecimalToCents(c.DefaultHourlyRate); err != nil {
		errors = append(errors, fmt.Sprintf("invalid default hourly rate '%s': %v", c.DefaultHourlyRate, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// DefaultBilling builds the billing configuration seeded into new sessions.
// Call Validate first; an unparseable rate falls back to zero here.
func (c *Config) DefaultBilling() core.BillingConfig {
	cents, err := core.ParseDecimalToCents(c.DefaultHourlyRate)
	if err != nil {
		cents = 0
	}
	return core.BillingConfig{HourlyRate: core.Money{Cents: cents}}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
