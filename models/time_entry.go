// models/time_entry.go
package models

import "time"

type TimeEntry struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID      string    `gorm:"not null;size:36;index" json:"task_id"`
	UserID      string    `gorm:"not null;size:36;index" json:"user_id"`
	Hours       float64   `gorm:"not null" json:"hours"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

func (e *TimeEntry) Validate() error {
	if e.TaskID == "" {
		return required("task_id")
	}
	if e.UserID == "" {
		return required("user_id")
	}
	if e.Hours <= 0 {
		return invalid("hours", "must be positive")
	}
	if e.Date.IsZero() {
		return required("date")
	}
	return nil
}
