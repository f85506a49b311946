// File: internal/services/ai/interface.go
package ai

import (
	"context"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

// CompletionProvider is the capability a language-model backend must offer:
// turn an ordered message history into assistant text for a given model.
type CompletionProvider interface {
	GenerateText(ctx context.Context, model string, messages []domain.ChatMessage) (string, error)
}

// ProviderKind selects a concrete backend. Selection is explicit
// configuration, never runtime inspection of keys or URLs.
type ProviderKind string

const (
	ProviderOpenAI ProviderKind = "openai"
	ProviderOllama ProviderKind = "ollama"
)
