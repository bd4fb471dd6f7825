// models/message.go
package models

import "time"

type Message struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string    `gorm:"not null;size:36;index" json:"project_id"`
	UserID    string    `gorm:"not null;size:36" json:"user_id"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) Validate() error {
	if m.ProjectID == "" {
		return required("project_id")
	}
	if m.UserID == "" {
		return required("user_id")
	}
	if m.Content == "" {
		return required("content")
	}
	return nil
}
