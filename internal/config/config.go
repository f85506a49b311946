// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	// Path of the sqlite database file; ":memory:" is accepted.
	DBPath string

	// AI provider selection and credentials.
	AIProvider    string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OllamaHost    string
	OllamaModel   string

	// Upper bound on a single generation call, in seconds.
	AITimeoutSeconds int
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      env,
		DBPath:           getEnv("DB_PATH", "nuxt-chat.db"),
		AIProvider:       getEnv("AI_PROVIDER", "openai"),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OllamaHost:       getEnv("OLLAMA_HOST", "http://127.0.0.1:11434"),
		OllamaModel:      getEnv("OLLAMA_MODEL", "llama3.2"),
		AITimeoutSeconds: getEnvAsInt("AI_TIMEOUT_SECONDS", 60),
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.AIProvider == "openai" && cfg.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
		if cfg.AIProvider == "ollama" && cfg.OllamaHost == "" {
			missing = append(missing, "OLLAMA_HOST")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
