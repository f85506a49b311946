// File: internal/domain/project.go
package domain

import "time"

// Project is a named grouping container for chats.
type Project struct {
	ID        string    `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
