// File: internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/henghaopu/nuxt-chat/internal/domain"
	"github.com/henghaopu/nuxt-chat/internal/repository/chat"
	"github.com/henghaopu/nuxt-chat/internal/repository/message"
	"github.com/henghaopu/nuxt-chat/internal/repository/project"
	"github.com/henghaopu/nuxt-chat/internal/services/ai"
)

// titleInstruction is appended to the history when generating a chat title.
const titleInstruction = "Summarize this conversation in a short title of five words or fewer. Respond with the title only, without quotes or punctuation."

// defaultGenerationTimeout bounds every provider call. A timeout surfaces as
// a generation failure, never as a hung request.
const defaultGenerationTimeout = 60 * time.Second

// MessageExchange is the result of responding to an inbound message.
// AIMessage is nil when no assistant reply was generated, either because the
// inbound role was not "user" or because generation failed after the user
// message was already persisted. Callers must branch on it.
type MessageExchange struct {
	UserMessage *domain.ChatMessage `json:"userMessage"`
	AIMessage   *domain.ChatMessage `json:"aiMessage,omitempty"`
}

// ChatService orchestrates the chat store, the project store and the model
// provider. It reads history, calls the provider and persists results; it
// never spans the provider call with a store transaction.
type ChatService struct {
	chatRepo    chat.ChatRepository
	messageRepo message.MessageRepository
	projectRepo project.ProjectRepository
	provider    ai.CompletionProvider
	model       string
	timeout     time.Duration
	logger      Logger
}

func NewChatService(
	chatRepo chat.ChatRepository,
	messageRepo message.MessageRepository,
	projectRepo project.ProjectRepository,
	provider ai.CompletionProvider,
	logger Logger,
) (*ChatService, error) {
	if chatRepo == nil || messageRepo == nil || projectRepo == nil {
		return nil, &ChatError{Type: ErrTypeConfig, Operation: "init", Message: "all repositories are required"}
	}
	if provider == nil {
		return nil, &ChatError{Type: ErrTypeConfig, Operation: "init", Message: "completion provider is required"}
	}
	if logger == nil {
		logger = NewProductionLogger("chat_service")
	}
	return &ChatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		projectRepo: projectRepo,
		provider:    provider,
		timeout:     defaultGenerationTimeout,
		logger:      logger,
	}, nil
}

// SetModel overrides the provider's baseline model identifier.
func (s *ChatService) SetModel(model string) {
	s.model = model
}

// SetGenerationTimeout overrides the bound on provider calls.
func (s *ChatService) SetGenerationTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// ===== CHAT STORE OPERATIONS =====

// CreateChat creates an empty chat. Title defaults to "New Chat"; the
// returned view has the project resolved when a projectID was given.
func (s *ChatService) CreateChat(ctx context.Context, title string, projectID *string) (*domain.PopulatedChat, error) {
	if title == "" {
		title = domain.DefaultChatTitle
	}

	newChat := &domain.Chat{
		Title:     title,
		ProjectID: projectID,
		Messages:  []domain.ChatMessage{},
	}
	created, err := s.chatRepo.Create(ctx, newChat)
	if err != nil {
		return nil, err
	}

	return s.populate(ctx, created), nil
}

// GetChatByID returns the populated view of a chat with its full message
// history and resolved project.
func (s *ChatService) GetChatByID(ctx context.Context, id string) (*domain.PopulatedChat, error) {
	found, err := s.chatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByChatID(ctx, id)
	if err != nil {
		return nil, err
	}
	found.Messages = messages

	return s.populate(ctx, found), nil
}

// GetAllChats returns every chat sorted by most recent activity. Each entry
// carries at most its last message: a summary projection for listing views,
// not the full history.
func (s *ChatService) GetAllChats(ctx context.Context) ([]domain.Chat, error) {
	chats, err := s.chatRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range chats {
		last, err := s.messageRepo.FindLastByChatID(ctx, chats[i].ID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			chats[i].Messages = []domain.ChatMessage{*last}
		} else {
			chats[i].Messages = []domain.ChatMessage{}
		}
	}

	return chats, nil
}

// UpdateChat applies a partial update to title and/or project reference.
func (s *ChatService) UpdateChat(ctx context.Context, id string, updates chat.ChatUpdates) (*domain.Chat, error) {
	updated, err := s.chatRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if updated.Messages == nil {
		updated.Messages = []domain.ChatMessage{}
	}
	return updated, nil
}

// DeleteChat removes a chat and all of its messages.
func (s *ChatService) DeleteChat(ctx context.Context, id string) (bool, error) {
	return s.chatRepo.Delete(ctx, id)
}

// GetChatMessages returns the full, unprojected history of a chat.
func (s *ChatService) GetChatMessages(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	exists, err := s.chatRepo.ExistsByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, chat.ErrChatNotFound
	}

	return s.messageRepo.FindByChatID(ctx, chatID)
}

// CreateMessage appends a message to a chat and bumps the chat's UpdatedAt.
func (s *ChatService) CreateMessage(ctx context.Context, chatID, role, content string) (*domain.ChatMessage, error) {
	exists, err := s.chatRepo.ExistsByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, chat.ErrChatNotFound
	}

	msg, err := s.messageRepo.Create(ctx, &domain.ChatMessage{
		ChatID:  chatID,
		Role:    role,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	if err := s.chatRepo.TouchUpdatedAt(ctx, chatID); err != nil {
		s.logger.Warn("failed to bump chat timestamp after append", "chat_id", chatID, "error", err.Error())
	}

	return msg, nil
}

// ClearChatMessages removes every message in a chat and bumps UpdatedAt.
// The bool reports whether the chat was found.
func (s *ChatService) ClearChatMessages(ctx context.Context, chatID string) (bool, error) {
	exists, err := s.chatRepo.ExistsByID(ctx, chatID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.messageRepo.DeleteByChatID(ctx, chatID); err != nil {
		return false, err
	}
	if err := s.chatRepo.TouchUpdatedAt(ctx, chatID); err != nil {
		return false, err
	}

	return true, nil
}

// ===== AI ORCHESTRATION =====

// GenerateResponse produces assistant text for an ordered history. An empty
// history is a caller defect and fails with ErrEmptyHistory.
func (s *ChatService) GenerateResponse(ctx context.Context, history []domain.ChatMessage) (string, error) {
	if len(history) == 0 {
		return "", ErrEmptyHistory
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.provider.GenerateText(ctx, s.model, history)
	if err != nil {
		return "", NewGenerationError("generate_response", "provider call failed", "", err)
	}

	return strings.TrimSpace(text), nil
}

// GenerateTitle produces a short title for a history. Title generation is
// advisory, so an empty history yields the default title instead of failing.
func (s *ChatService) GenerateTitle(ctx context.Context, history []domain.ChatMessage) (string, error) {
	if len(history) == 0 {
		return domain.DefaultChatTitle, nil
	}

	prompt := make([]domain.ChatMessage, 0, len(history)+1)
	prompt = append(prompt, history...)
	prompt = append(prompt, domain.ChatMessage{
		Role:    domain.RoleUser,
		Content: titleInstruction,
	})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.provider.GenerateText(ctx, s.model, prompt)
	if err != nil {
		return "", NewGenerationError("generate_title", "provider call failed", "", err)
	}

	title := strings.Trim(strings.TrimSpace(text), `"`)
	if title == "" {
		title = domain.DefaultChatTitle
	}
	return title, nil
}

// RespondToNewMessage persists the inbound message and, for user messages,
// generates and persists an assistant reply over the updated history.
// Generation failure never rolls back the user's message: the exchange is
// returned with a nil AIMessage and the failure is logged.
func (s *ChatService) RespondToNewMessage(ctx context.Context, chatID, role, content string) (*MessageExchange, error) {
	userMessage, err := s.CreateMessage(ctx, chatID, role, content)
	if err != nil {
		return nil, err
	}

	exchange := &MessageExchange{UserMessage: userMessage}
	if role != domain.RoleUser {
		return exchange, nil
	}

	history, err := s.messageRepo.FindByChatID(ctx, chatID)
	if err != nil {
		s.logger.Error("failed to load history for response generation", "chat_id", chatID, "error", err.Error())
		return exchange, nil
	}

	reply, err := s.GenerateResponse(ctx, history)
	if err != nil {
		s.logger.Error("failed to generate AI response", "chat_id", chatID, "error", err.Error())
		return exchange, nil
	}

	aiMessage, err := s.CreateMessage(ctx, chatID, domain.RoleAssistant, reply)
	if err != nil {
		s.logger.Error("failed to persist AI response", "chat_id", chatID, "error", err.Error())
		return exchange, nil
	}

	exchange.AIMessage = aiMessage
	return exchange, nil
}

// GenerateAssistantMessage generates a reply over a chat's existing history
// and persists it. Unlike RespondToNewMessage there is no antecedent
// mutation, so generation failure is surfaced to the caller.
func (s *ChatService) GenerateAssistantMessage(ctx context.Context, chatID string) (*domain.ChatMessage, error) {
	history, err := s.GetChatMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	reply, err := s.GenerateResponse(ctx, history)
	if err != nil {
		return nil, err
	}

	return s.CreateMessage(ctx, chatID, domain.RoleAssistant, reply)
}

// GenerateChatTitle generates a title from a chat's history and stores it,
// returning the updated chat.
func (s *ChatService) GenerateChatTitle(ctx context.Context, chatID string) (*domain.Chat, error) {
	history, err := s.GetChatMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	title, err := s.GenerateTitle(ctx, history)
	if err != nil {
		return nil, err
	}

	return s.UpdateChat(ctx, chatID, chat.ChatUpdates{Title: &title})
}

// populate resolves a chat's project reference. A dangling reference is
// tolerated and resolves to no project.
func (s *ChatService) populate(ctx context.Context, c *domain.Chat) *domain.PopulatedChat {
	if c.Messages == nil {
		c.Messages = []domain.ChatMessage{}
	}
	populated := &domain.PopulatedChat{Chat: *c}

	if c.ProjectID != nil && *c.ProjectID != "" {
		proj, err := s.projectRepo.FindByID(ctx, *c.ProjectID)
		if err == nil {
			populated.Project = proj
		} else if !errors.Is(err, project.ErrProjectNotFound) {
			s.logger.Warn("failed to resolve project for chat", "chat_id", c.ID, "error", err.Error())
		}
	}

	return populated
}
