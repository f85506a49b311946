// File: internal/domain/message.go
package domain

import "time"

// Message roles. Messages are authored either by the end user or by the
// language model.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single turn within a chat. Messages are
// append-only: once created they are never edited or individually deleted,
// only cleared in bulk.
type ChatMessage struct {
	ID     string `json:"id" gorm:"uniqueIndex;not null"`
	ChatID string `json:"-" gorm:"index;not null"`
	// Seq is a monotonic append counter and the storage primary key.
	// Ordering by Seq equals creation order even when two appends land on
	// the same clock tick.
	Seq       int64     `json:"-" gorm:"primarykey;autoIncrement"`
	Content   string    `json:"content" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsValidRole reports whether role is one of the supported message roles.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAssistant
}
