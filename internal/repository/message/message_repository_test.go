// File: internal/repository/message/message_repository_test.go
package message_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/henghaopu/nuxt-chat/internal/domain"
	"github.com/henghaopu/nuxt-chat/internal/repository/message"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Chat{}, &domain.ChatMessage{}))
	return db
}

func TestMessageRepository_AppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := message.NewMessageRepository(newTestDB(t))

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &domain.ChatMessage{
			ChatID:  "chat-1",
			Role:    domain.RoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	messages, err := repo.FindByChatID(ctx, "chat-1")
	require.NoError(t, err)
	require.Len(t, messages, 5)
	for i, msg := range messages {
		require.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
	}
}

func TestMessageRepository_CreateGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := message.NewMessageRepository(newTestDB(t))

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		msg, err := repo.Create(ctx, &domain.ChatMessage{
			ChatID: "chat-1", Role: domain.RoleAssistant, Content: "reply",
		})
		require.NoError(t, err)
		require.False(t, seen[msg.ID])
		seen[msg.ID] = true
	}
}

func TestMessageRepository_CreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := message.NewMessageRepository(newTestDB(t))

	_, err := repo.Create(ctx, &domain.ChatMessage{ChatID: "", Role: domain.RoleUser, Content: "hi"})
	require.Error(t, err)

	_, err = repo.Create(ctx, &domain.ChatMessage{ChatID: "chat-1", Role: domain.RoleUser, Content: "   "})
	require.Error(t, err)

	_, err = repo.Create(ctx, &domain.ChatMessage{ChatID: "chat-1", Role: "system", Content: "hi"})
	require.Error(t, err)
}

func TestMessageRepository_FindLastByChatID(t *testing.T) {
	ctx := context.Background()
	repo := message.NewMessageRepository(newTestDB(t))

	last, err := repo.FindLastByChatID(ctx, "chat-1")
	require.NoError(t, err)
	require.Nil(t, last)

	_, err = repo.Create(ctx, &domain.ChatMessage{ChatID: "chat-1", Role: domain.RoleUser, Content: "first"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.ChatMessage{ChatID: "chat-1", Role: domain.RoleAssistant, Content: "second"})
	require.NoError(t, err)

	last, err = repo.FindLastByChatID(ctx, "chat-1")
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, "second", last.Content)
}

func TestMessageRepository_DeleteByChatID(t *testing.T) {
	ctx := context.Background()
	repo := message.NewMessageRepository(newTestDB(t))

	_, err := repo.Create(ctx, &domain.ChatMessage{ChatID: "chat-1", Role: domain.RoleUser, Content: "one"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.ChatMessage{ChatID: "chat-2", Role: domain.RoleUser, Content: "other"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByChatID(ctx, "chat-1"))

	count, err := repo.CountByChatID(ctx, "chat-1")
	require.NoError(t, err)
	require.Zero(t, count)

	// Other chats keep their messages.
	count, err = repo.CountByChatID(ctx, "chat-2")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
