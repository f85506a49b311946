// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

// MessageRepository handles the append-only message sequence of a chat.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error)
	FindByChatID(ctx context.Context, chatID string) ([]domain.ChatMessage, error)
	FindLastByChatID(ctx context.Context, chatID string) (*domain.ChatMessage, error)
	DeleteByChatID(ctx context.Context, chatID string) error
	CountByChatID(ctx context.Context, chatID string) (int64, error)
}
