package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	NatsURL      string
	NatsToken    string
	DatabaseURL  string
	LogLevel     string
	APIToken     string
	SlackToken   string
	SlackChannel string
	MaxBodyBytes int64
}

func Load() Config {
	return Config{
		Port:         envInt("TOOLBOX_PORT", 8760),
		NatsURL:      envStr("NATS_URL", ""),
		NatsToken:    envStr("NATS_TOKEN", ""),
		DatabaseURL:  envStr("DATABASE_URL", ""),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		APIToken:     envStr("TOOLBOX_API_TOKEN", ""),
		SlackToken:   envStr("SLACK_BOT_TOKEN", ""),
		SlackChannel: envStr("SLACK_INTAKE_CHANNEL", ""),
		MaxBodyBytes: int64(envInt("TOOLBOX_MAX_BODY_BYTES", 1<<20)),
	}
}

// LoadFile reads a dotenv file into the process environment. Variables that
// are already set to a non-empty value are left alone.
func LoadFile(path string) error {
	vals, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range vals {
		if os.Getenv(k) != "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	return nil
}

// IntakeEnabled reports whether submissions can be persisted.
func (c Config) IntakeEnabled() bool {
	return c.DatabaseURL != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
