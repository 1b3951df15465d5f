package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/korjavin/pantrychef/pkg/logger"
)

// Config holds all configuration for the application
type Config struct {
	// Telegram Bot configuration
	BotToken string
	// OwnerChatID restricts the bot to a single chat when non-zero
	OwnerChatID int64

	// OpenAI configuration; an empty key disables LLM parsing
	OpenAIAPIBase string
	OpenAIAPIKey  string
	OpenAIModel   string

	// Application configuration
	DataDir    string
	LogLevel   logger.Level
	GCInterval time.Duration
}

// LLMEnabled reports whether an OpenAI key was configured
func (c *Config) LLMEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	log := logger.New("config")

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn("Error loading .env file: %v", err)
	}

	cfg := &Config{}

	// Required configurations
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is required")
	}
	cfg.BotToken = botToken

	// Optional configurations with defaults
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIAPIBase = getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	cfg.DataDir = getEnvWithDefault("DATA_DIR", "./data")
	cfg.LogLevel = logger.ParseLevel(getEnvWithDefault("LOG_LEVEL", "info"))

	if owner := os.Getenv("OWNER_CHAT_ID"); owner != "" {
		id, err := strconv.ParseInt(owner, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("OWNER_CHAT_ID must be an integer: %w", err)
		}
		cfg.OwnerChatID = id
	}

	interval, err := time.ParseDuration(getEnvWithDefault("GC_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("GC_INTERVAL must be a duration: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("GC_INTERVAL must be positive, got %v", interval)
	}
	cfg.GCInterval = interval

	// Log configuration with sensitive data redacted
	logCfg := *cfg
	logCfg.BotToken = redact(logCfg.BotToken)
	logCfg.OpenAIAPIKey = redact(logCfg.OpenAIAPIKey)
	log.Info("Configuration loaded: %+v", logCfg)
	return cfg, nil
}

func redact(secret string) string {
	if len(secret) > 8 {
		return secret[:8] + "...REDACTED..."
	}
	if secret != "" {
		return "...REDACTED..."
	}
	return ""
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
