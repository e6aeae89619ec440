package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	defaultDeliveryProgressSchedule = "*/10 * * * * *"
	defaultLogLevel                 = "info"
)

type Config struct {
	// DeliveryProgressSchedule is a cron expression with a leading seconds field.
	DeliveryProgressSchedule string
	LogLevel                 string
}

// ConfigFromEnv reads the configuration from the environment, falling back to
// defaults for unset variables.
func ConfigFromEnv() Config {
	return Config{
		DeliveryProgressSchedule: envOrDefault("DELIVERY_PROGRESS_SCHEDULE", defaultDeliveryProgressSchedule),
		LogLevel:                 envOrDefault("LOG_LEVEL", defaultLogLevel),
	}
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
