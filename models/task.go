// models/task.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type Task struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	Title          string         `gorm:"not null;size:200" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Status         TaskStatus     `gorm:"not null;size:20;index" json:"status"`
	Priority       Priority       `gorm:"not null;size:20;index" json:"priority"`
	ProjectID      string         `gorm:"not null;size:36;index" json:"project_id"`
	AssigneeID     *string        `gorm:"size:36;index" json:"assignee_id,omitempty"`
	CreatorID      string         `gorm:"size:36" json:"creator_id"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	EstimatedHours *float64       `json:"estimated_hours,omitempty"`
	ActualHours    float64        `gorm:"default:0" json:"actual_hours"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// Validate checks required fields and enum membership. The referenced
// project is deliberately not resolved; a task with a dangling project_id
// is accepted and rendered with a fallback label by the client.
func (t *Task) Validate() error {
	if t.Title == "" {
		return required("title")
	}
	if !t.Status.Valid() {
		return invalidEnum("status", string(t.Status))
	}
	if !t.Priority.Valid() {
		return invalidEnum("priority", string(t.Priority))
	}
	if t.ProjectID == "" {
		return required("project_id")
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		return invalid("estimated_hours", "must be non-negative")
	}
	if t.ActualHours < 0 {
		return invalid("actual_hours", "must be non-negative")
	}
	return nil
}
