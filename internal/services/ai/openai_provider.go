// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

// OpenAIProvider talks to a hosted OpenAI-compatible chat completion API.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (p *OpenAIProvider) GenerateText(ctx context.Context, model string, messages []domain.ChatMessage) (string, error) {
	if model == "" {
		model = p.config.DefaultModel()
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    chatMessages,
		Temperature: p.config.Temperature,
		TopP:        p.config.TopP,
	})
	if err != nil {
		return "", NewProviderError("completion", "failed to create completion", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Message:   "empty completion response",
			Model:     model,
		}
	}

	return resp.Choices[0].Message.Content, nil
}
