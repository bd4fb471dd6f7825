// models/project.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type Project struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"not null;size:200" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Status      ProjectStatus  `gorm:"not null;size:20;index" json:"status"`
	Priority    Priority       `gorm:"not null;size:20;index" json:"priority"`
	StartDate   time.Time      `gorm:"not null" json:"start_date"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	Progress    int            `gorm:"default:0" json:"progress"`
	Budget      *float64       `json:"budget,omitempty"`
	TeamID      string         `gorm:"size:36;index" json:"team_id"`
	ManagerID   string         `gorm:"size:36;index" json:"manager_id"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// Validate rejects a missing required field or an enum value outside its
// closed set. It performs no referential checks and no range clamping;
// progress stays whatever the caller supplied.
func (p *Project) Validate() error {
	if p.Name == "" {
		return required("name")
	}
	if !p.Status.Valid() {
		return invalidEnum("status", string(p.Status))
	}
	if !p.Priority.Valid() {
		return invalidEnum("priority", string(p.Priority))
	}
	if p.StartDate.IsZero() {
		return required("start_date")
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return invalid("end_date", "must not precede start_date")
	}
	if p.Budget != nil && *p.Budget < 0 {
		return invalid("budget", "must be non-negative")
	}
	return nil
}
