package entity

import (
	"time"

	"github.com/sangkips/temple-billing/internal/domain/enum"
)

// User is a counter staff member or administrator
type User struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Username  string        `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Password  string        `gorm:"size:255;not null" json:"-"`
	Role      enum.UserRole `gorm:"not null;default:0" json:"role"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == enum.UserRoleAdmin
}
