// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

// Baseline model identifiers used when the caller does not specify one.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultOllamaModel = "llama3.2"
)

type Config struct {
	Provider ProviderKind

	// OpenAI-compatible backend
	APIKey  string
	BaseURL string

	// Local ollama backend
	OllamaHost string

	// Default model when the caller passes none
	Model string

	// Performance configuration
	Timeout     time.Duration
	Temperature float32
	TopP        float32
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	case ProviderOllama:
		if c.OllamaHost == "" {
			return fmt.Errorf("OLLAMA_HOST is required")
		}
	default:
		return fmt.Errorf("unknown AI provider %q", c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// DefaultModel returns the configured default model, falling back to the
// provider's baseline identifier.
func (c *Config) DefaultModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderOllama {
		return DefaultOllamaModel
	}
	return DefaultOpenAIModel
}

func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Timeout:     60 * time.Second,
		Temperature: 0.1,
		TopP:        0.9,
	}
}
