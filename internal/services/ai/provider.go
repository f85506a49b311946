// File: internal/services/ai/provider.go
package ai

// NewProvider instantiates the backend named by the configuration.
func NewProvider(config *Config) (CompletionProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(config), nil
	case ProviderOllama:
		return NewOllamaProvider(config)
	default:
		return nil, NewConfigError("unknown AI provider: " + string(config.Provider))
	}
}
