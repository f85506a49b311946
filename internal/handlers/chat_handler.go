// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/henghaopu/nuxt-chat/internal/domain"
	"github.com/henghaopu/nuxt-chat/internal/repository/chat"
	"github.com/henghaopu/nuxt-chat/internal/services"
)

type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(cs *services.ChatService) (*ChatHandler, error) {
	if cs == nil {
		return nil, errors.New("chat service is required")
	}
	return &ChatHandler{ChatService: cs}, nil
}

// GetAllChats returns every chat, most recently active first, carrying only
// the last message of each (the listing summary projection).
func (h *ChatHandler) GetAllChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.ChatService.GetAllChats(r.Context())
	if err != nil {
		writeError(w, "Could not retrieve chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

// CreateChat creates a new chat. Both fields must be present in the body;
// an empty title falls back to the default and an empty projectId means no
// project.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     *string `json:"title"`
		ProjectID *string `json:"projectId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == nil || req.ProjectID == nil {
		writeError(w, "Missing required fields: title and projectId", http.StatusBadRequest)
		return
	}

	var projectID *string
	if *req.ProjectID != "" {
		projectID = req.ProjectID
	}

	created, err := h.ChatService.CreateChat(r.Context(), *req.Title, projectID)
	if err != nil {
		writeError(w, "Could not create chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetChatByID returns the populated chat view. A missing chat passes
// through as a JSON null body rather than an HTTP error.
func (h *ChatHandler) GetChatByID(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	found, err := h.ChatService.GetChatByID(r.Context(), chatID)
	if errors.Is(err, chat.ErrChatNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeError(w, "Could not retrieve chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// UpdateChat applies a partial update to title and/or projectId.
func (h *ChatHandler) UpdateChat(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	var req struct {
		Title     *string `json:"title"`
		ProjectID *string `json:"projectId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	updated, err := h.ChatService.UpdateChat(r.Context(), chatID, chat.ChatUpdates{
		Title:     req.Title,
		ProjectID: req.ProjectID,
	})
	if errors.Is(err, chat.ErrChatNotFound) {
		writeError(w, "Chat not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, "Could not update chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteChat removes a chat and all of its messages.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	found, err := h.ChatService.DeleteChat(r.Context(), chatID)
	if err != nil {
		writeError(w, "Could not delete chat", http.StatusInternalServerError)
		return
	}
	if !found {
		writeError(w, "Chat not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateChatTitle generates a title from the chat's history, stores it and
// returns the updated chat.
func (h *ChatHandler) GenerateChatTitle(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	updated, err := h.ChatService.GenerateChatTitle(r.Context(), chatID)
	if errors.Is(err, chat.ErrChatNotFound) {
		writeError(w, "Chat not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, "Could not generate chat title", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// GetChatMessages returns the full message history of a chat.
func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	messages, err := h.ChatService.GetChatMessages(r.Context(), chatID)
	if errors.Is(err, chat.ErrChatNotFound) {
		writeError(w, "Chat not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, "Could not retrieve messages", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// CreateMessage appends a message to a chat. A user message additionally
// triggers an assistant reply; if generation fails the user message is still
// returned on its own.
func (h *ChatHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	var req struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Role == "" || req.Content == "" {
		writeError(w, "Missing required fields: role and content", http.StatusBadRequest)
		return
	}
	if !domain.IsValidRole(req.Role) {
		writeError(w, "Invalid role", http.StatusBadRequest)
		return
	}

	exchange, err := h.ChatService.RespondToNewMessage(r.Context(), chatID, req.Role, req.Content)
	if errors.Is(err, chat.ErrChatNotFound) {
		writeError(w, "Chat not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, "Could not create message", http.StatusInternalServerError)
		return
	}

	if req.Role != domain.RoleUser {
		writeJSON(w, http.StatusCreated, map[string]interface{}{"message": exchange.UserMessage})
		return
	}
	writeJSON(w, http.StatusCreated, exchange)
}

// GenerateMessage is the RPC-style endpoint: generate an assistant reply
// over the chat's existing history and persist it.
func (h *ChatHandler) GenerateMessage(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	msg, err := h.ChatService.GenerateAssistantMessage(r.Context(), chatID)
	if errors.Is(err, chat.ErrChatNotFound) {
		writeError(w, "Chat not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, services.ErrEmptyHistory) {
		writeError(w, "Chat has no messages to respond to", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, "Could not generate response", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// ClearChatMessages removes every message in a chat.
func (h *ChatHandler) ClearChatMessages(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["id"]

	found, err := h.ChatService.ClearChatMessages(r.Context(), chatID)
	if err != nil {
		writeError(w, "Could not clear messages", http.StatusInternalServerError)
		return
	}
	if !found {
		writeError(w, "Chat not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
