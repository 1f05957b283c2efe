// In file: cmd/gateway/config.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultModel = "gemini-2.5-flash"
	defaultPort  = "8000"
)

// AppConfig holds all configuration for the gateway, loaded once at startup
// and read-only afterwards.
type AppConfig struct {
	// GeminiAPIKey authenticates calls to the model provider. Required;
	// startup fails without it.
	GeminiAPIKey string
	// GeminiModel selects the model. Optional, defaults to defaultModel.
	GeminiModel string
	// ToolServiceURL is the base URL of the tool-execution service.
	// Checked lazily: requests that need a tool fail with a 500 when unset.
	ToolServiceURL string
	// JWTSecret signs session credentials. Checked lazily at issuance time.
	JWTSecret string
	// RedisAddr enables the direct-answer response cache when set.
	RedisAddr string
	// ToolsConfigPath points at an optional YAML file declaring extra
	// capabilities on top of the built-in catalog.
	ToolsConfigPath string
	// Port is the listen port, defaulting to defaultPort.
	Port string
}

// LoadConfig loads configuration from a .env file (local development only)
// and environment variables.
func LoadConfig() (*AppConfig, error) {
	// In Docker (GIN_MODE="release") configuration is provided directly as
	// environment variables; only local development uses a .env file.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("WARNING: No .env file found for local development.")
		}
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY / GOOGLE_API_KEY environment variable is not set")
	}

	cfg := &AppConfig{
		GeminiAPIKey:    apiKey,
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		ToolServiceURL:  os.Getenv("TOOL_SERVICE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		ToolsConfigPath: os.Getenv("TOOLS_CONFIG"),
		Port:            os.Getenv("PORT"),
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = defaultModel
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	// These two are deliberately not fatal here: requests that reach the
	// tool path report the missing piece as a configuration error.
	if cfg.ToolServiceURL == "" {
		log.Println("WARNING: TOOL_SERVICE_URL is not set; tool-mediated requests will fail.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set; credential issuance will fail.")
	}

	return cfg, nil
}
