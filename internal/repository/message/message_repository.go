// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Create appends a message to its chat's sequence. The repository generates
// the ID; Seq is assigned by the database and fixes the append order.
func (r *gormMessageRepository) Create(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	if err := r.validateMessageInput(msg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	msg.ID = uuid.NewString()

	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		log.Printf("[MessageRepository] Database error during message creation for chat %s: %v", msg.ChatID, err)
		return nil, errors.New("database error creating message")
	}

	return msg, nil
}

// FindByChatID returns the full history in creation order.
func (r *gormMessageRepository) FindByChatID(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	if chatID == "" {
		return nil, errors.New("invalid chat ID")
	}

	messages := []domain.ChatMessage{}
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("seq ASC").
		Find(&messages).Error

	if err != nil {
		log.Printf("[MessageRepository] Database error fetching messages for chat %s: %v", chatID, err)
		return nil, errors.New("database error fetching messages")
	}

	return messages, nil
}

// FindLastByChatID returns the most recent message, or nil when the chat has
// no messages yet.
func (r *gormMessageRepository) FindLastByChatID(ctx context.Context, chatID string) (*domain.ChatMessage, error) {
	if chatID == "" {
		return nil, errors.New("invalid chat ID")
	}

	var msg domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("seq DESC").
		First(&msg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("[MessageRepository] Database error fetching last message for chat %s: %v", chatID, err)
		return nil, errors.New("database error fetching last message")
	}

	return &msg, nil
}

// DeleteByChatID performs a bulk deletion of all messages in a chat.
func (r *gormMessageRepository) DeleteByChatID(ctx context.Context, chatID string) error {
	if chatID == "" {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&domain.ChatMessage{})
	if result.Error != nil {
		log.Printf("[MessageRepository] Database error deleting messages for chat %s: %v", chatID, result.Error)
		return errors.New("database error deleting messages by chat ID")
	}

	return nil
}

func (r *gormMessageRepository) CountByChatID(ctx context.Context, chatID string) (int64, error) {
	if chatID == "" {
		return 0, errors.New("invalid chat ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).Where("chat_id = ?", chatID).Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for chat %s: %v", chatID, err)
		return 0, errors.New("database error counting chat messages")
	}

	return count, nil
}

// ===== VALIDATION HELPERS =====

func (r *gormMessageRepository) validateMessageInput(msg *domain.ChatMessage) error {
	if msg == nil {
		return errors.New("message cannot be nil")
	}
	if msg.ChatID == "" {
		return errors.New("chat ID is required")
	}
	if strings.TrimSpace(msg.Content) == "" {
		return errors.New("message content cannot be empty")
	}
	if !domain.IsValidRole(msg.Role) {
		return errors.New("invalid message role")
	}
	return nil
}
