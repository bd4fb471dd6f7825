// models/team_member.go
package models

import "time"

type TeamMember struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	TeamID   string    `gorm:"not null;size:36;index" json:"-"`
	UserID   string    `gorm:"not null;size:36;index" json:"user_id"`
	Role     TeamRole  `gorm:"not null;size:20;default:'member'" json:"role"`
	JoinedAt time.Time `gorm:"not null" json:"joined_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
