// File: internal/domain/chat.go
package domain

import "time"

// DefaultChatTitle is used when a chat is created without a title and as the
// fallback when title generation has no history to work with.
const DefaultChatTitle = "New Chat"

// Chat represents a single conversation thread. ProjectID is an optional
// reference to a Project; it is not enforced with a foreign key, so a chat
// may outlive its project and the reference then resolves to "no project"
// on read.
type Chat struct {
	ID        string        `json:"id" gorm:"primarykey"`
	Title     string        `json:"title" gorm:"not null"`
	ProjectID *string       `json:"projectId,omitempty"`
	Messages  []ChatMessage `json:"messages" gorm:"foreignKey:ChatID"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// PopulatedChat is the read-side composite of a chat with its resolved
// project. It is never persisted.
type PopulatedChat struct {
	Chat
	Project *Project `json:"project,omitempty"`
}
