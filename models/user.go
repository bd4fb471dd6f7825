// models/user.go
package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Role      UserRole  `gorm:"not null;size:20;default:'member'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Validate() error {
	if u.Email == "" {
		return required("email")
	}
	if u.Name == "" {
		return required("name")
	}
	if !u.Role.Valid() {
		return invalidEnum("role", string(u.Role))
	}
	return nil
}
