// File: internal/repository/chat/chat_repository.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

var ErrChatNotFound = errors.New("chat not found")

type gormChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

// Create stores a new chat. The repository owns identity: it generates the
// ID and lets the database stamp CreatedAt/UpdatedAt.
func (r *gormChatRepository) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	if err := r.validateChatInput(chat); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	chat.ID = uuid.NewString()
	if chat.Messages == nil {
		chat.Messages = []domain.ChatMessage{}
	}

	if err := r.db.WithContext(ctx).Create(chat).Error; err != nil {
		log.Printf("[ChatRepository] Database error during chat creation: %v", err)
		return nil, errors.New("database error creating chat")
	}

	return chat, nil
}

func (r *gormChatRepository) FindByID(ctx context.Context, id string) (*domain.Chat, error) {
	if id == "" {
		return nil, errors.New("invalid chat ID")
	}

	var chat domain.Chat
	err := r.db.WithContext(ctx).First(&chat, "id = ?", id).Error
	return r.handleFindError(err, &chat, "FindByID")
}

// FindAll returns every chat sorted by most recently updated first. Message
// histories are not loaded here; the service layer attaches the summary
// projection.
func (r *gormChatRepository) FindAll(ctx context.Context) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := r.db.WithContext(ctx).
		Order("updated_at DESC, id DESC").
		Find(&chats).Error

	if err != nil {
		log.Printf("[ChatRepository] Database error fetching chats: %v", err)
		return nil, errors.New("database error fetching chats")
	}

	return chats, nil
}

// Update applies a partial update. Omitted fields are left unchanged;
// UpdatedAt is refreshed regardless of which fields are present.
func (r *gormChatRepository) Update(ctx context.Context, id string, updates ChatUpdates) (*domain.Chat, error) {
	if id == "" {
		return nil, errors.New("invalid chat ID")
	}

	fields := map[string]interface{}{"updated_at": time.Now()}
	if updates.Title != nil {
		if err := r.validateChatTitle(*updates.Title); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
		fields["title"] = *updates.Title
	}
	if updates.ProjectID != nil {
		fields["project_id"] = *updates.ProjectID
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Chat{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		log.Printf("[ChatRepository] Database error updating chat %s: %v", id, result.Error)
		return nil, errors.New("database error updating chat")
	}
	if result.RowsAffected == 0 {
		return nil, ErrChatNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes a chat and cascades to its messages. The bool reports
// whether a chat was found, mirroring the store contract.
func (r *gormChatRepository) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.New("invalid chat ID")
	}

	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", id).Delete(&domain.ChatMessage{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Chat{})
		if result.Error != nil {
			return result.Error
		}
		found = result.RowsAffected > 0
		return nil
	})

	if err != nil {
		log.Printf("[ChatRepository] Database error deleting chat %s: %v", id, err)
		return false, errors.New("database error deleting chat")
	}

	return found, nil
}

// TouchUpdatedAt refreshes a chat's UpdatedAt without changing anything
// else. Used when the message list mutates underneath the chat.
func (r *gormChatRepository) TouchUpdatedAt(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("invalid chat ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Chat{}).
		Where("id = ?", id).
		Update("updated_at", time.Now())

	if result.Error != nil {
		log.Printf("[ChatRepository] Database error updating timestamp for chat %s: %v", id, result.Error)
		return errors.New("database error updating chat timestamp")
	}
	if result.RowsAffected == 0 {
		return ErrChatNotFound
	}

	return nil
}

func (r *gormChatRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.New("invalid chat ID")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Chat{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		log.Printf("[ChatRepository] Database error checking chat existence for %s: %v", id, err)
		return false, errors.New("database error checking chat existence")
	}

	return count > 0, nil
}

// ===== VALIDATION HELPERS =====

func (r *gormChatRepository) validateChatInput(chat *domain.Chat) error {
	if chat == nil {
		return errors.New("chat cannot be nil")
	}
	return r.validateChatTitle(chat.Title)
}

func (r *gormChatRepository) validateChatTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title cannot be empty")
	}
	if len(title) > 200 {
		return errors.New("title must be 200 characters or less")
	}
	return nil
}

// ===== ERROR HANDLING HELPERS =====

func (r *gormChatRepository) handleFindError(err error, chat *domain.Chat, operation string) (*domain.Chat, error) {
	if err == nil {
		return chat, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChatNotFound
	}

	log.Printf("[ChatRepository] %s database error: %v", operation, err)
	return nil, errors.New("database query failed")
}
