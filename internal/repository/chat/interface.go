// File: internal/repository/chat/interface.go
package chat

import (
	"context"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

// ChatUpdates carries a partial chat update. A nil field is left unchanged.
type ChatUpdates struct {
	Title     *string
	ProjectID *string
}

// ChatRepository handles chat data operations.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	FindByID(ctx context.Context, id string) (*domain.Chat, error)
	FindAll(ctx context.Context) ([]domain.Chat, error)
	Update(ctx context.Context, id string, updates ChatUpdates) (*domain.Chat, error)
	Delete(ctx context.Context, id string) (bool, error)
	TouchUpdatedAt(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
