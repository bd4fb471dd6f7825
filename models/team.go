// models/team.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type Team struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"not null;size:100" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	ManagerID   string         `gorm:"size:36;index" json:"manager_id"`
	Members     []TeamMember   `gorm:"foreignKey:TeamID" json:"members"`
	Projects    pq.StringArray `gorm:"type:text[]" json:"projects"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

// Validate checks required fields, member roles, and that no user appears
// twice in the member list. Member order is preserved as supplied.
func (t *Team) Validate() error {
	if t.Name == "" {
		return required("name")
	}
	seen := make(map[string]bool, len(t.Members))
	for _, m := range t.Members {
		if m.UserID == "" {
			return required("members.user_id")
		}
		if !m.Role.Valid() {
			return invalidEnum("members.role", string(m.Role))
		}
		if seen[m.UserID] {
			return invalid("members", "duplicate user_id "+m.UserID)
		}
		seen[m.UserID] = true
	}
	return nil
}
