// File: internal/services/ai/provider_test.go
package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate()) // openai without an API key

	cfg.APIKey = "sk-test"
	require.NoError(t, cfg.Validate())

	cfg.Timeout = 0
	require.Error(t, cfg.Validate())

	cfg = &Config{Provider: ProviderOllama, Timeout: time.Second}
	require.Error(t, cfg.Validate()) // ollama without a host

	cfg.OllamaHost = "http://127.0.0.1:11434"
	require.NoError(t, cfg.Validate())

	cfg.Provider = "bedrock"
	require.Error(t, cfg.Validate())
}

func TestConfigDefaultModel(t *testing.T) {
	cfg := &Config{Provider: ProviderOpenAI}
	require.Equal(t, DefaultOpenAIModel, cfg.DefaultModel())

	cfg.Provider = ProviderOllama
	require.Equal(t, DefaultOllamaModel, cfg.DefaultModel())

	cfg.Model = "mistral"
	require.Equal(t, "mistral", cfg.DefaultModel())
}

func TestNewProviderSelectsBackend(t *testing.T) {
	openaiCfg := DefaultConfig()
	openaiCfg.APIKey = "sk-test"
	p, err := NewProvider(openaiCfg)
	require.NoError(t, err)
	require.IsType(t, &OpenAIProvider{}, p)

	ollamaCfg := &Config{
		Provider:   ProviderOllama,
		OllamaHost: "http://127.0.0.1:11434",
		Timeout:    time.Second,
	}
	p, err = NewProvider(ollamaCfg)
	require.NoError(t, err)
	require.IsType(t, &OllamaProvider{}, p)
}

func TestNewProviderRejectsBadConfig(t *testing.T) {
	_, err := NewProvider(DefaultConfig())
	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	require.Equal(t, ErrTypeConfig, aiErr.Type)

	_, err = NewProvider(&Config{Provider: "bedrock", Timeout: time.Second})
	require.ErrorAs(t, err, &aiErr)
	require.Equal(t, ErrTypeConfig, aiErr.Type)
}

func TestNewOllamaProviderRejectsBadHost(t *testing.T) {
	_, err := NewOllamaProvider(&Config{
		Provider:   ProviderOllama,
		OllamaHost: "://not a url",
		Timeout:    time.Second,
	})
	var aiErr *AIError
	require.ErrorAs(t, err, &aiErr)
	require.Equal(t, ErrTypeConfig, aiErr.Type)
}
