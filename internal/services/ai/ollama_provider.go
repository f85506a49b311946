// File: internal/services/ai/ollama_provider.go
package ai

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jmorganca/ollama/api"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

// OllamaProvider talks to a locally hosted ollama server.
type OllamaProvider struct {
	config *Config
	client *api.Client
}

func NewOllamaProvider(config *Config) (*OllamaProvider, error) {
	base, err := url.Parse(config.OllamaHost)
	if err != nil {
		return nil, NewConfigError("invalid OLLAMA_HOST: " + err.Error())
	}
	return &OllamaProvider{
		config: config,
		client: api.NewClient(base, http.DefaultClient),
	}, nil
}

func (p *OllamaProvider) GenerateText(ctx context.Context, model string, messages []domain.ChatMessage) (string, error) {
	if model == "" {
		model = p.config.DefaultModel()
	}

	ollamaMessages := make([]api.Message, 0, len(messages))
	for _, msg := range messages {
		ollamaMessages = append(ollamaMessages, api.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    model,
		Messages: ollamaMessages,
		Stream:   &stream,
	}

	// Even with streaming disabled the client delivers the reply through
	// the callback; accumulate in case the server chunks anyway.
	var text string
	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		text += resp.Message.Content
		return nil
	})
	if err != nil {
		return "", NewProviderError("completion", "ollama chat request failed", err)
	}

	if text == "" {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Message:   "empty completion response",
			Model:     model,
		}
	}

	return text, nil
}
